package types

// Wrist identifies which hand a sample belongs to.
type Wrist int

const (
	WristLeft Wrist = iota
	WristRight
)

func (w Wrist) String() string {
	switch w {
	case WristLeft:
		return "LEFT"
	case WristRight:
		return "RIGHT"
	default:
		return "UNKNOWN"
	}
}

// Axis identifies one spatial coordinate of a wrist sample.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return "unknown"
	}
}

// Sample is a single wrist position delivered by the external capture layer,
// one per hand per frame. Timestamp is seconds since the capture epoch and
// Confidence is the tracker's landmark confidence in [0, 1].
type Sample struct {
	X          float64
	Y          float64
	Z          float64
	Confidence float64
	Timestamp  float64
}

// Coordinate returns the sample's value on the given axis.
func (s Sample) Coordinate(axis Axis) float64 {
	switch axis {
	case AxisX:
		return s.X
	case AxisY:
		return s.Y
	default:
		return s.Z
	}
}
