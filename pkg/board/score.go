package board

import "fmt"

// Score is a signed move or position score in centi-pawns, Red-relative:
// positive favors Red, negative favors Black. Per MaterialValue, one
// side's non-king army (2 rooks, 2 cannons, 2 horses, 2 guards, 2 bishops,
// 5 pawns) is worth 5000, so Score comfortably spans the material and mate
// range within MinScore/MaxScore. 16 bits.
type Score int16

const (
	MinScore Score = -30000
	MaxScore Score = 30000
)

func (s Score) String() string {
	return fmt.Sprintf("%.2f", float64(s)/100)
}
