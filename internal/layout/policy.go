package layout

import "fmt"

// Policy selects how a Stack uses the space along its primary axis.
type Policy uint8

const (
	FromStart Policy = iota // Preferred extents packed against the leading edge
	FromEnd                 // Preferred extents packed against the trailing edge
	Fill                    // Allocation distributed by flexibility
)

var policyNames = [...]string{
	FromStart: "from-start",
	FromEnd:   "from-end",
	Fill:      "fill",
}

// String returns the policy identifier ("from-start", "from-end" or "fill").
func (p Policy) String() string {
	if int(p) < len(policyNames) {
		return policyNames[p]
	}
	return fmt.Sprintf("Policy(%d)", p)
}

// ParsePolicy returns the Policy named by s.
func ParsePolicy(s string) (Policy, error) {
	for i, name := range policyNames {
		if name == s {
			return Policy(i), nil
		}
	}
	return 0, fmt.Errorf("unknown stack policy %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (p Policy) MarshalText() ([]byte, error) {
	if int(p) >= len(policyNames) {
		return nil, fmt.Errorf("unknown stack policy %d", p)
	}
	return []byte(policyNames[p]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Policy) UnmarshalText(text []byte) error {
	parsed, err := ParsePolicy(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Direction specifies the primary axis along which elements are stacked.
type Direction uint8

const (
	Row    Direction = iota // Elements stacked left-to-right
	Column                  // Elements stacked top-to-bottom
)

// String returns "row" or "column".
func (d Direction) String() string {
	switch d {
	case Row:
		return "row"
	case Column:
		return "column"
	default:
		return fmt.Sprintf("Direction(%d)", d)
	}
}

// ParseDirection returns the Direction named by s.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "row":
		return Row, nil
	case "column":
		return Column, nil
	default:
		return 0, fmt.Errorf("unknown stack direction %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	switch d {
	case Row, Column:
		return []byte(d.String()), nil
	}
	return nil, fmt.Errorf("unknown stack direction %d", d)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Axis selects the primary (stacking) or cross (perpendicular) axis of a Stack.
type Axis uint8

const (
	Primary Axis = iota
	Cross
)
