package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	stack "github.com/grindlemire/go-stack"
	"github.com/grindlemire/go-stack/internal/canvas"
)

// terminalSize reports the size of the terminal on stdout.
// Replaced in tests.
var terminalSize = func() (int, int, error) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0, 0, errors.New("stdout is not a terminal")
	}
	return term.GetSize(fd)
}

// runDraw implements the draw subcommand.
func runDraw(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("draw", flag.ContinueOnError)
	var size sizeFlags
	fs.IntVar(&size.width, "w", -1, "width to draw at")
	fs.IntVar(&size.height, "h", -1, "height to draw at")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("draw takes exactly one scene file")
	}

	doc, root, err := loadScene(fs.Arg(0))
	if err != nil {
		return err
	}

	// Scene size first, then the terminal, then the root's preferred size.
	w, h := doc.Size(root)
	if tw, th, err := terminalSize(); err == nil {
		if doc.Width == nil {
			w = tw
		}
		if doc.Height == nil {
			h = th
		}
	}
	w, h = size.apply(w, h)

	stack.Calculate(root, w, h)
	c := canvas.New(w, h)
	canvas.DrawTree(c, root)
	_, err = fmt.Fprintln(out, c.String())
	return err
}
