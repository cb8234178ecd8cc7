package game

import "math"

// Unreachable marks cells no opponent cell can reach.
const Unreachable = math.MaxInt32

// DistanceMap holds, per cell, the 4-directional step count to the nearest
// opponent cell. Indexed [y][x].
type DistanceMap [][]int

func (d DistanceMap) At(x, y int) (int, bool) {
	if y < 0 || y >= len(d) || x < 0 || x >= len(d[y]) {
		return 0, false
	}
	return d[y][x], true
}

var neighbours = [4][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}

// BuildDistanceMap runs a multi-source BFS seeded with every cell owned by
// opp. Occupancy does not block traversal.
func BuildDistanceMap(b Board, opp Player) DistanceMap {
	dist := make(DistanceMap, b.Height)
	for y := range dist {
		dist[y] = make([]int, b.Width)
		for x := range dist[y] {
			dist[y][x] = Unreachable
		}
	}

	queue := make([]Pos, 0, b.Width*b.Height)
	for _, p := range Territory(b, opp) {
		dist[p.Y][p.X] = 0
		queue = append(queue, p)
	}

	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		next := dist[cur.Y][cur.X] + 1
		for _, d := range neighbours {
			nx, ny := cur.X+d[0], cur.Y+d[1]
			if nx < 0 || ny < 0 || nx >= b.Width || ny >= b.Height {
				continue
			}
			if dist[ny][nx] > next {
				dist[ny][nx] = next
				queue = append(queue, Pos{X: nx, Y: ny})
			}
		}
	}
	return dist
}
