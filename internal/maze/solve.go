package maze

import "github.com/kamstrup/intmap"

var orthogonal = []Point{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

func (m *Maze) key(p Point) int {
	return p.Y*m.width + p.X
}

// Connected reports whether b can be reached from a through passages.
func (m *Maze) Connected(a, b Point) bool {
	return m.Solve(a, b) != nil
}

// Solve returns the shortest orthogonal path from start to end, inclusive of
// both ends, or nil when either end is a wall or no path exists.
func (m *Maze) Solve(start, end Point) []Point {
	if m.IsWall(start.X, start.Y) || m.IsWall(end.X, end.Y) {
		return nil
	}

	cameFrom := intmap.New[int, Point](m.width * m.height / 2)
	cameFrom.Put(m.key(start), start)
	queue := []Point{start}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		if curr == end {
			return m.tracePath(cameFrom, start, end)
		}

		for _, d := range orthogonal {
			next := Point{curr.X + d.X, curr.Y + d.Y}
			if m.IsWall(next.X, next.Y) {
				continue
			}
			if _, seen := cameFrom.Get(m.key(next)); seen {
				continue
			}
			cameFrom.Put(m.key(next), curr)
			queue = append(queue, next)
		}
	}
	return nil
}

func (m *Maze) tracePath(cameFrom *intmap.Map[int, Point], start, end Point) []Point {
	var reversed []Point
	for curr := end; curr != start; {
		reversed = append(reversed, curr)
		curr, _ = cameFrom.Get(m.key(curr))
	}
	reversed = append(reversed, start)

	path := make([]Point, len(reversed))
	for i, p := range reversed {
		path[len(reversed)-1-i] = p
	}
	return path
}
