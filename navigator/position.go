package navigator

// Position is the state of the cursor over the active sequence.
type Position int

const (
	Empty Position = iota
	AtStart
	Middle
	AtEnd
)

func (p Position) String() string {
	switch p {
	case AtStart:
		return "start"
	case Middle:
		return "middle"
	case AtEnd:
		return "end"
	default:
		return "empty"
	}
}

func positionOf(cursor, length int) Position {
	switch {
	case length == 0:
		return Empty
	case cursor >= length-1:
		return AtEnd
	case cursor == 0:
		return AtStart
	default:
		return Middle
	}
}
