package types

import "fmt"

// OrderMode selects how a folder listing is sorted before manual reordering
type OrderMode string

const (
	// OrderName sorts by basename, case-insensitive
	OrderName OrderMode = "name"
	// OrderModified sorts oldest first by modification time
	OrderModified OrderMode = "mtime"
	// OrderNatural sorts by basename with digit runs compared as numbers
	OrderNatural OrderMode = "natural"
)

// OrderModes lists every supported mode in display order
var OrderModes = []OrderMode{OrderName, OrderModified, OrderNatural}

// Label returns the name shown in the user interfaces
func (m OrderMode) Label() string {
	switch m {
	case OrderModified:
		return "Modified"
	case OrderNatural:
		return "Natural"
	default:
		return "Name"
	}
}

// Next cycles to the following mode
func (m OrderMode) Next() OrderMode {
	for i, mode := range OrderModes {
		if mode == m {
			return OrderModes[(i+1)%len(OrderModes)]
		}
	}
	return OrderName
}

// ParseOrderMode accepts a mode name or its label
func ParseOrderMode(s string) (OrderMode, error) {
	for _, mode := range OrderModes {
		if s == string(mode) || s == mode.Label() {
			return mode, nil
		}
	}
	if s == "modified" {
		return OrderModified, nil
	}
	return "", fmt.Errorf("unknown order %q (want name, mtime or natural)", s)
}

// Direction is the way a selected block moves
type Direction int

const (
	Up Direction = iota
	Down
)

func (d Direction) String() string {
	if d == Down {
		return "down"
	}
	return "up"
}

// ParseDirection accepts "up" or "down"
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	}
	return Up, fmt.Errorf("unknown direction %q (want up or down)", s)
}

// Span is the half-open index range [Start, End) a moved block occupies
type Span struct {
	Start int
	End   int
}

// Len returns the number of positions covered
func (s Span) Len() int {
	return s.End - s.Start
}

// Contains reports whether i falls inside the span
func (s Span) Contains(i int) bool {
	return i >= s.Start && i < s.End
}
