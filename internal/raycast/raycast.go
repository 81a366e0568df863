// Package raycast traverses a wall grid with a Digital Differential Analyzer
// and reports the perpendicular distance to the first wall along a ray.
package raycast

import "math"

// Grid is a read-only view of an occupancy grid.
type Grid interface {
	Width() int
	Height() int
	IsWall(x, y int) bool
}

// WallType identifies which face of a cell a ray struck.
type WallType uint8

const (
	North WallType = iota // struck while stepping towards -y
	South                 // struck while stepping towards +y
	West                  // struck while stepping towards -x
	East                  // struck while stepping towards +x
)

// String returns the face name.
func (w WallType) String() string {
	switch w {
	case North:
		return "north"
	case South:
		return "south"
	case West:
		return "west"
	case East:
		return "east"
	default:
		return "unknown"
	}
}

// IsEastWest reports whether the face was hit by a step along the x axis.
func (w WallType) IsEastWest() bool {
	return w == West || w == East
}

// Result describes the outcome of a single ray.
type Result struct {
	Distance float64 // perpendicular distance, clamped to the max distance
	WallType WallType
	HitX     float64
	HitY     float64
}

// noCrossing stands in for the step length along an axis the ray never crosses.
const noCrossing = 1e30

// Cast walks the ray starting at (originX, originY) with the given angle
// through grid until it enters a wall cell or leaves the grid.
// The origin must lie inside the grid and maxDistance must be positive.
// A ray that leaves the grid reports maxDistance.
func Cast(originX, originY, angle float64, grid Grid, maxDistance float64) Result {
	dirX := math.Cos(angle)
	dirY := math.Sin(angle)

	mapX := int(originX)
	mapY := int(originY)

	deltaX, deltaY := noCrossing, noCrossing
	if dirX != 0 {
		deltaX = math.Abs(1 / dirX)
	}
	if dirY != 0 {
		deltaY = math.Abs(1 / dirY)
	}

	var stepX, stepY int
	var sideX, sideY float64
	if dirX < 0 {
		stepX = -1
		sideX = (originX - float64(mapX)) * deltaX
	} else {
		stepX = 1
		sideX = (float64(mapX) + 1 - originX) * deltaX
	}
	if dirY < 0 {
		stepY = -1
		sideY = (originY - float64(mapY)) * deltaY
	} else {
		stepY = 1
		sideY = (float64(mapY) + 1 - originY) * deltaY
	}

	steppedX := true
	hit := false
	for {
		if sideX < sideY {
			sideX += deltaX
			mapX += stepX
			steppedX = true
		} else {
			sideY += deltaY
			mapY += stepY
			steppedX = false
		}

		if mapX < 0 || mapY < 0 || mapX >= grid.Width() || mapY >= grid.Height() {
			break
		}
		if grid.IsWall(mapX, mapY) {
			hit = true
			break
		}
	}

	distance := maxDistance
	if hit {
		if steppedX {
			distance = sideX - deltaX
		} else {
			distance = sideY - deltaY
		}
		distance = math.Min(distance, maxDistance)
	}

	return Result{
		Distance: distance,
		WallType: faceOf(steppedX, stepX, stepY),
		HitX:     originX + dirX*distance,
		HitY:     originY + dirY*distance,
	}
}

func faceOf(steppedX bool, stepX, stepY int) WallType {
	if steppedX {
		if stepX > 0 {
			return East
		}
		return West
	}
	if stepY > 0 {
		return South
	}
	return North
}
