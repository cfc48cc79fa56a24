package main

import (
	"context"
	"flag"

	"github.com/flyinggeneral/xiangqi/pkg/engine"
	"github.com/seekerror/logw"
)

var (
	hash = flag.Int("hash", 64, "Transposition table size in MB")
	book = flag.String("book", "", "Opening book file (binary, optional)")
)

func main() {
	flag.Parse()
	ctx := context.Background()

	e := engine.New(*hash)
	if *book != "" {
		b, err := engine.LoadBook(*book)
		if err != nil {
			logw.Warningf(ctx, "Opening book '%v' not loaded, proceeding without it: %v", *book, err)
		} else {
			e.UseBook(b)
		}
	}

	in := engine.ReadStdinLines(ctx)
	driver, out := engine.NewConsoleDriver(ctx, e, in)
	go engine.WriteStdoutLines(ctx, out)

	<-driver.Closed()
}
