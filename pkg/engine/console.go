package engine

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/flyinggeneral/xiangqi/pkg/board"
	"github.com/flyinggeneral/xiangqi/pkg/board/fen"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/iox"
)

// ConsoleProtocolName identifies the plain-text debugging protocol handled
// by ConsoleDriver.
const ConsoleProtocolName = "console"

// ConsoleDriver is a minimal line-oriented front end for Engine: it accepts
// "position", "go", "stop" and "quit" commands plus bare move strings, and
// prints the board after every position change.
type ConsoleDriver struct {
	iox.AsyncCloser

	e   *Engine
	out chan<- string
}

// NewConsoleDriver starts processing in lines from in, writing responses to
// the returned channel until "quit" is received or in is closed.
func NewConsoleDriver(ctx context.Context, e *Engine, in <-chan string) (*ConsoleDriver, <-chan string) {
	out := make(chan string, 100)
	d := &ConsoleDriver{
		AsyncCloser: iox.NewAsyncCloser(),
		e:           e,
		out:         out,
	}
	go d.process(ctx, in)
	return d, out
}

func (d *ConsoleDriver) process(ctx context.Context, in <-chan string) {
	defer d.Close()
	defer close(d.out)

	logw.Infof(ctx, "Console protocol initialized")

	d.out <- fmt.Sprintf("engine %v", d.e.Name())
	d.printBoard()

	for line := range in {
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		switch cmd {
		case "position", "pos":
			// position [<fen>] [moves <m1> <m2> ...]

			layout := fen.Initial
			var history []board.Move

			i := 0
			if i < len(args) && args[i] != "moves" && args[i] != "startpos" {
				layout = strings.Join(args[0:min(6, len(args))], " ")
				i = min(6, len(args))
			} else if i < len(args) && args[i] == "startpos" {
				i++
			}
			if i < len(args) && args[i] == "moves" {
				for _, token := range args[i+1:] {
					mv, err := board.ParseMove(token)
					if err != nil {
						d.out <- fmt.Sprintf("invalid move: %v", token)
						continue
					}
					history = append(history, mv)
				}
			}

			if err := d.e.SetPosition(layout, history); err != nil {
				d.out <- fmt.Sprintf("invalid position: %v", err)
				continue
			}
			d.printBoard()

		case "print", "p":
			d.printBoard()

		case "go":
			opt := Options{DepthLimit: 6}
			if len(args) >= 2 && args[0] == "depth" {
				if n, err := strconv.Atoi(args[1]); err == nil {
					opt.DepthLimit = n
				}
			}

			result := d.e.Search(ctx, opt)
			d.out <- fmt.Sprintf("bestmove %v score %v depth %v nodes %v", result.Move, result.Score, result.Depth, result.Nodes)

		case "stop":
			// No effect against an in-flight "go": both run on this same
			// goroutine, so Stop only cancels a search issued from elsewhere.
			d.e.Stop()

		case "quit", "exit", "q":
			return

		default:
			mv, err := board.ParseMove(cmd)
			if err != nil {
				d.out <- fmt.Sprintf("unrecognized command: %v", cmd)
				continue
			}
			if err := d.e.MakeMove(mv); err != nil {
				d.out <- fmt.Sprintf("illegal move: %v", cmd)
				continue
			}
			d.printBoard()
		}
	}

	logw.Infof(ctx, "Input stream closed")
}

const (
	files      = "    a   b   c   d   e   f   g   h   i"
	horizontal = "  ------------------------------------"
	vertical   = " | "
)

func (d *ConsoleDriver) printBoard() {
	pos, err := fen.Decode(d.e.Position())
	if err != nil {
		d.out <- fmt.Sprintf("invalid position: %v", err)
		return
	}

	d.out <- ""
	d.out <- files
	d.out <- horizontal
	for r := board.Rank(0); r < board.NumRanks; r++ {
		var sb strings.Builder
		sb.WriteString(fmt.Sprintf("%d", 9-r.V()))
		sb.WriteString(vertical)
		for f := board.File(0); f < board.NumFiles; f++ {
			sq := board.NewSquare(f, r)
			sb.WriteString(pos.PieceAt(sq).String())
			sb.WriteString(vertical)
		}
		d.out <- sb.String()
		d.out <- horizontal
	}
	d.out <- files
	d.out <- ""
	d.out <- fmt.Sprintf("fen: %v", d.e.Position())
	if result := d.e.Result(); result != board.Undecided {
		d.out <- fmt.Sprintf("result: %v", result)
	}
	d.out <- ""
}
