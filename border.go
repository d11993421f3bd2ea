package stack

import "fmt"

// BorderStyle represents different styles of box borders.
// Any border other than BorderNone takes one cell on each side of a node.
type BorderStyle int

const (
	// BorderNone indicates no border should be drawn.
	BorderNone BorderStyle = iota
	// BorderSingle uses single-line box-drawing characters (─, │, ┌, etc.)
	BorderSingle
	// BorderDouble uses double-line box-drawing characters (═, ║, ╔, etc.)
	BorderDouble
	// BorderRounded uses rounded corner characters (─, │, ╭, ╮, ╰, ╯)
	BorderRounded
	// BorderThick uses thick/heavy box-drawing characters (━, ┃, ┏, etc.)
	BorderThick
)

var borderNames = [...]string{
	BorderNone:    "none",
	BorderSingle:  "single",
	BorderDouble:  "double",
	BorderRounded: "rounded",
	BorderThick:   "thick",
}

// String returns the border name.
func (b BorderStyle) String() string {
	if b >= 0 && int(b) < len(borderNames) {
		return borderNames[b]
	}
	return fmt.Sprintf("BorderStyle(%d)", int(b))
}

// ParseBorder returns the BorderStyle named by s. The empty string is BorderNone.
func ParseBorder(s string) (BorderStyle, error) {
	if s == "" {
		return BorderNone, nil
	}
	for i, name := range borderNames {
		if name == s {
			return BorderStyle(i), nil
		}
	}
	return BorderNone, fmt.Errorf("unknown border style %q", s)
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseBorder.
func (b *BorderStyle) UnmarshalText(text []byte) error {
	parsed, err := ParseBorder(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// edges returns the space the border takes on each side.
func (b BorderStyle) edges() Edges {
	if b == BorderNone {
		return Edges{}
	}
	return EdgeAll(1)
}
