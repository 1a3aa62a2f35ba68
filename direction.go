package packedtree

// Axis names one of the three volume axes.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	}
	return "Invalid"
}

// Direction names one of the six cell faces. Top/Bottom lie on the y axis,
// West/East on x, North/South on z.
type Direction uint8

const (
	Top Direction = iota
	Bottom
	West
	East
	North
	South
)

// Directions returns all six directions in declaration order.
func Directions() [6]Direction {
	return [6]Direction{Top, Bottom, West, East, North, South}
}

// Cycle returns all six directions in declaration order starting from the
// direction after d, wrapping around so d itself comes last.
func (d Direction) Cycle() [6]Direction {
	var out [6]Direction
	for i := range out {
		out[i] = Direction((int(d) + 1 + i) % 6)
	}
	return out
}

// Axis returns the axis the direction lies on.
func (d Direction) Axis() Axis {
	switch d {
	case Top, Bottom:
		return AxisY
	case West, East:
		return AxisX
	default:
		return AxisZ
	}
}

// Normal returns the unit vector pointing out of the face.
func (d Direction) Normal() [3]float32 {
	switch d {
	case Top:
		return [3]float32{0, 1, 0}
	case Bottom:
		return [3]float32{0, -1, 0}
	case West:
		return [3]float32{-1, 0, 0}
	case East:
		return [3]float32{1, 0, 0}
	case North:
		return [3]float32{0, 0, 1}
	default:
		return [3]float32{0, 0, -1}
	}
}

// Offset returns the integer grid step toward the neighbouring cell across
// the face.
func (d Direction) Offset() [3]int {
	n := d.Normal()
	return [3]int{int(n[0]), int(n[1]), int(n[2])}
}

func (d Direction) String() string {
	switch d {
	case Top:
		return "Top"
	case Bottom:
		return "Bottom"
	case West:
		return "West"
	case East:
		return "East"
	case North:
		return "North"
	case South:
		return "South"
	}
	return "Invalid"
}
