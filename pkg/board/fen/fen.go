// Package fen contains utilities for reading and writing positions in a
// FEN-like Xiangqi position string format.
package fen

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/flyinggeneral/xiangqi/pkg/board"
)

// Initial is the standard Xiangqi starting position.
const Initial = "rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABNR w - - 0 1"

// Decode parses a position string: a layout (ten slash-separated ranks,
// rendered top-to-bottom from Black's back rank), an active color, and a
// remainder the core ignores. It never returns a half-constructed board.
func Decode(str string) (*board.Position, error) {
	parts := strings.Fields(strings.TrimSpace(str))
	if len(parts) < 2 {
		return nil, fmt.Errorf("invalid position string: %q", str)
	}

	var placements []board.Placement

	ranks := strings.Split(parts[0], "/")
	if len(ranks) != int(board.NumRanks) {
		return nil, fmt.Errorf("invalid number of ranks in position string: %q", str)
	}

	for r, row := range ranks {
		f := board.ZeroFile
		for _, ch := range row {
			switch {
			case unicode.IsDigit(ch):
				f += board.File(ch - '0')
			case unicode.IsLetter(ch):
				piece, ok := board.ParsePiece(ch)
				if !ok {
					return nil, fmt.Errorf("invalid piece %q in position string: %q", ch, str)
				}
				if !f.IsValid() {
					return nil, fmt.Errorf("rank overflow in position string: %q", str)
				}
				placements = append(placements, board.Placement{
					Square: board.NewSquare(f, board.Rank(r)),
					Piece:  piece,
				})
				f++
			default:
				return nil, fmt.Errorf("invalid character %q in position string: %q", ch, str)
			}
		}
		if f != board.NumFiles {
			return nil, fmt.Errorf("invalid number of files in rank %d: %q", r, str)
		}
	}

	turn, ok := parseColor(parts[1])
	if !ok {
		return nil, fmt.Errorf("invalid active color in position string: %q", str)
	}

	return board.NewPosition(placements, turn)
}

// Encode renders pos as a position string, with the remainder fields
// emitted as the core-ignored placeholder "- - 0 1".
func Encode(pos *board.Position) string {
	var sb strings.Builder
	for r := board.ZeroRank; r < board.NumRanks; r++ {
		blanks := 0
		for f := board.ZeroFile; f < board.NumFiles; f++ {
			pc := pos.PieceAt(board.NewSquare(f, r))
			if pc == board.Empty {
				blanks++
				continue
			}
			if blanks > 0 {
				sb.WriteString(fmt.Sprint(blanks))
				blanks = 0
			}
			sb.WriteString(pc.String())
		}
		if blanks > 0 {
			sb.WriteString(fmt.Sprint(blanks))
		}
		if r != board.NumRanks-1 {
			sb.WriteRune('/')
		}
	}

	return fmt.Sprintf("%v %v - - 0 1", sb.String(), printColor(pos.Turn()))
}

func parseColor(str string) (board.Color, bool) {
	switch str {
	case "w", "W":
		return board.Red, true
	case "b", "B":
		return board.Black, true
	default:
		return 0, false
	}
}

func printColor(c board.Color) string {
	if c == board.Red {
		return "w"
	}
	return "b"
}
