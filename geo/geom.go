package geo

import (
	"math"
)

//*******************************************
// planar geometry
//*******************************************

// Coord is a planar position in meters, [0] is x and [1] is y.
type Coord [2]float64

func (self Coord) X() float64 {
	return self[0]
}

func (self Coord) Y() float64 {
	return self[1]
}

func Distance(a, b Coord) float64 {
	dx := b[0] - a[0]
	dy := b[1] - a[1]
	return math.Sqrt(dx*dx + dy*dy)
}

//*******************************************
// bearings
//*******************************************

// Bearing returns the compass bearing from a to b in degrees [0, 360).
//
// 0 deg points along the positive y-axis ("north"), angles grow
// clockwise, hence atan2(dx, dy) and not the mathematical convention.
func Bearing(a, b Coord) float64 {
	dx := b[0] - a[0]
	dy := b[1] - a[1]
	deg := math.Atan2(dx, dy) * 180 / math.Pi
	return math.Mod(deg+360, 360)
}

// TurnAngle returns the signed difference between two bearings
// normalized to (-180, 180]. Negative values turn left, positive right.
func TurnAngle(from, to float64) float64 {
	diff := math.Mod(to-from+360, 360)
	if diff > 180 {
		diff -= 360
	}
	return diff
}

// CompassLabel maps a bearing to one of the eight compass directions.
func CompassLabel(bearing float64) string {
	labels := []string{"north", "north-east", "east", "south-east", "south", "south-west", "west", "north-west"}
	index := int(math.Mod(bearing+22.5, 360) / 45)
	return labels[index]
}
