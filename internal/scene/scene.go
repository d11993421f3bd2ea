// Package scene reads declarative stack arrangements from TOML or YAML
// documents and builds them into node trees.
package scene

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	stack "github.com/grindlemire/go-stack"
)

// Format identifies a document encoding.
type Format string

const (
	TOML Format = "toml"
	YAML Format = "yaml"
)

// ErrUnknownFormat is returned when a document's encoding cannot be
// determined from its name.
var ErrUnknownFormat = errors.New("unknown scene format")

// FormatOf returns the format implied by the file extension of path.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
}

// Document is a complete scene: an optional canvas size and the root node.
type Document struct {
	Width  *int `toml:"width" yaml:"width"`
	Height *int `toml:"height" yaml:"height"`
	Root   Node `toml:"root" yaml:"root"`
}

// Node describes one node. A node with a policy is a container; its sizes
// come from its children, so only leaves may set min, preferred and max.
type Node struct {
	Name      string            `toml:"name" yaml:"name"`
	Policy    *stack.Policy     `toml:"policy" yaml:"policy"`
	Direction *stack.Direction  `toml:"direction" yaml:"direction"`
	Border    stack.BorderStyle `toml:"border" yaml:"border"`
	Insets    []int             `toml:"insets" yaml:"insets"`
	Min       []int             `toml:"min" yaml:"min"`
	Preferred []int             `toml:"preferred" yaml:"preferred"`
	Max       []int             `toml:"max" yaml:"max"`
	Align     float64           `toml:"align" yaml:"align"`
	Hidden    bool              `toml:"hidden" yaml:"hidden"`
	Children  []Node            `toml:"children" yaml:"children"`
}

// ParseError reports a document that could not be decoded or built.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("scene %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Load reads and decodes the scene at path.
func Load(path string) (*Document, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene %s: %w", path, err)
	}
	doc, err := Decode(data, format)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return doc, nil
}

// Decode parses data in the given format. Unknown keys are rejected.
func Decode(data []byte, format Format) (*Document, error) {
	var doc Document
	switch format {
	case TOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, err
		}
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return &doc, nil
}

// Size returns the canvas size for the built root. Missing dimensions fall
// back to the root's preferred size.
func (d *Document) Size(root *stack.Node) (width, height int) {
	pref := root.PreferredSize()
	width, height = pref.Width, pref.Height
	if d.Width != nil {
		width = *d.Width
	}
	if d.Height != nil {
		height = *d.Height
	}
	return width, height
}

// Build validates the document and builds its node tree.
func (d *Document) Build() (*stack.Node, error) {
	if d.Width != nil && *d.Width < 0 {
		return nil, fmt.Errorf("width must not be negative, got %d", *d.Width)
	}
	if d.Height != nil && *d.Height < 0 {
		return nil, fmt.Errorf("height must not be negative, got %d", *d.Height)
	}
	return d.Root.build(nodeLabel(d.Root.Name, "#0"))
}

func (n *Node) build(path string) (*stack.Node, error) {
	insets, err := edgesOf(n.Insets)
	if err != nil {
		return nil, fmt.Errorf("%s: insets: %w", path, err)
	}
	if n.Align < 0 || n.Align > 1 {
		return nil, fmt.Errorf("%s: align must be within [0, 1], got %v", path, n.Align)
	}

	opts := []stack.Option{
		stack.WithName(n.Name),
		stack.WithAlignment(n.Align),
		stack.WithInsets(insets),
		stack.WithBorder(n.Border),
	}
	if n.Hidden {
		opts = append(opts, stack.WithHidden())
	}

	if n.Policy == nil {
		return n.buildLeaf(path, opts)
	}

	if len(n.Min) > 0 || len(n.Preferred) > 0 || len(n.Max) > 0 {
		return nil, fmt.Errorf("%s: min, preferred and max apply only to leaves", path)
	}
	dir := stack.Column
	if n.Direction != nil {
		dir = *n.Direction
	}
	node := stack.New(append(opts, stack.WithStack(*n.Policy, dir))...)

	for i := range n.Children {
		child := &n.Children[i]
		built, err := child.build(path + "/" + nodeLabel(child.Name, fmt.Sprintf("#%d", i)))
		if err != nil {
			return nil, err
		}
		node.AddChild(built)
	}
	return node, nil
}

func (n *Node) buildLeaf(path string, opts []stack.Option) (*stack.Node, error) {
	if len(n.Children) > 0 {
		return nil, fmt.Errorf("%s: children require a policy", path)
	}
	if n.Direction != nil {
		return nil, fmt.Errorf("%s: direction requires a policy", path)
	}

	minSize, err := sizeOf(n.Min, stack.Size{})
	if err != nil {
		return nil, fmt.Errorf("%s: min: %w", path, err)
	}
	prefSize, err := sizeOf(n.Preferred, minSize)
	if err != nil {
		return nil, fmt.Errorf("%s: preferred: %w", path, err)
	}
	maxSize, err := sizeOf(n.Max, stack.Size{Width: stack.Unbounded, Height: stack.Unbounded})
	if err != nil {
		return nil, fmt.Errorf("%s: max: %w", path, err)
	}

	return stack.New(append(opts,
		stack.WithMinSize(minSize.Width, minSize.Height),
		stack.WithPreferredSize(prefSize.Width, prefSize.Height),
		stack.WithMaxSize(maxSize.Width, maxSize.Height),
	)...), nil
}

func nodeLabel(name, fallback string) string {
	if name == "" {
		return fallback
	}
	return name
}

// sizeOf converts a [width, height] pair. An empty pair yields def.
func sizeOf(v []int, def stack.Size) (stack.Size, error) {
	switch len(v) {
	case 0:
		return def, nil
	case 2:
		if v[0] < 0 || v[1] < 0 {
			return stack.Size{}, fmt.Errorf("dimensions must not be negative, got %v", v)
		}
		return stack.Size{Width: v[0], Height: v[1]}, nil
	}
	return stack.Size{}, fmt.Errorf("want [width, height], got %d values", len(v))
}

// edgesOf converts either a single value applied to every side or four
// values in top, right, bottom, left order.
func edgesOf(v []int) (stack.Edges, error) {
	for _, n := range v {
		if n < 0 {
			return stack.Edges{}, fmt.Errorf("values must not be negative, got %v", v)
		}
	}
	switch len(v) {
	case 0:
		return stack.Edges{}, nil
	case 1:
		return stack.EdgeAll(v[0]), nil
	case 4:
		return stack.EdgeTRBL(v[0], v[1], v[2], v[3]), nil
	}
	return stack.Edges{}, fmt.Errorf("want 1 or 4 values, got %d", len(v))
}
