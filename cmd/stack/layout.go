package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"runtime"

	"golang.org/x/sync/errgroup"

	stack "github.com/grindlemire/go-stack"
)

// nodeBounds is one node's computed rectangle. Containers also carry their
// stacking policy and direction.
type nodeBounds struct {
	Path      string           `json:"path"`
	X         int              `json:"x"`
	Y         int              `json:"y"`
	Width     int              `json:"width"`
	Height    int              `json:"height"`
	Visible   bool             `json:"visible"`
	Policy    *stack.Policy    `json:"policy,omitempty"`
	Direction *stack.Direction `json:"direction,omitempty"`
}

// sceneBounds is the layout of one scene file.
type sceneBounds struct {
	File   string       `json:"file"`
	Width  int          `json:"width"`
	Height int          `json:"height"`
	Nodes  []nodeBounds `json:"nodes"`
}

// runLayout implements the layout subcommand.
// Files are loaded and laid out concurrently; output keeps argument order.
func runLayout(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("layout", flag.ContinueOnError)
	var size sizeFlags
	fs.IntVar(&size.width, "w", -1, "width to lay out to (default: scene width)")
	fs.IntVar(&size.height, "h", -1, "height to lay out to (default: scene height)")
	asJSON := fs.Bool("json", false, "print JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	files := fs.Args()
	if len(files) == 0 {
		return errors.New("no scene files given")
	}

	results := make([]sceneBounds, len(files))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, file := range files {
		g.Go(func() error {
			res, err := layoutFile(file, size)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if *asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	for i, res := range results {
		if len(results) > 1 {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "# %s %dx%d\n", res.File, res.Width, res.Height)
		}
		for _, n := range res.Nodes {
			fmt.Fprintf(out, "%s %d %d %d %d", n.Path, n.X, n.Y, n.Width, n.Height)
			if !n.Visible {
				fmt.Fprint(out, " hidden")
			}
			fmt.Fprintln(out)
		}
	}
	return nil
}

// layoutFile loads one scene and collects the bounds of every node.
func layoutFile(file string, size sizeFlags) (sceneBounds, error) {
	doc, root, err := loadScene(file)
	if err != nil {
		return sceneBounds{}, err
	}
	w, h := size.apply(doc.Size(root))
	stack.Calculate(root, w, h)

	res := sceneBounds{File: file, Width: w, Height: h}
	stack.Walk(root, func(n *stack.Node, _ int) bool {
		b := n.Bounds()
		nb := nodeBounds{
			Path:    n.Path(),
			X:       b.X,
			Y:       b.Y,
			Width:   b.Width,
			Height:  b.Height,
			Visible: n.Visible(),
		}
		if l := n.Layout(); l != nil {
			policy, dir := l.Policy(), l.Direction()
			nb.Policy, nb.Direction = &policy, &dir
		}
		res.Nodes = append(res.Nodes, nb)
		return true
	})
	return res, nil
}
