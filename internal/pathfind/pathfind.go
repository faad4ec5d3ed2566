// Package pathfind computes the shortest route between two units on the field.
//
// Movement is 8-directional and every step costs the same, so a breadth-first
// search yields a minimum-step path. Cells held by other living units are
// obstacles; the attacker's own cell and the target's cell never are.
package pathfind

import (
	"github.com/vovakirdan/heroes-battle/internal/army"
	"github.com/vovakirdan/heroes-battle/internal/core"
)

// offsets is the fixed neighbour expansion order: orthogonal first, then diagonal.
var offsets = [8][2]int{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1},
	{-1, -1}, {-1, 1}, {1, -1}, {1, 1},
}

// Finder searches paths on one field.
type Finder struct {
	Field core.Field
}

// NewFinder creates a path finder for the given field.
func NewFinder(f core.Field) *Finder {
	return &Finder{Field: f}
}

// FindPath returns the cells from the attacker to the target, both inclusive,
// in traversal order. An empty result means no route exists.
func (f *Finder) FindPath(attacker, target *army.Unit, units []*army.Unit) []core.Coord {
	src, dst := attacker.Pos(), target.Pos()
	if !f.Field.InBounds(src) || !f.Field.InBounds(dst) {
		return nil
	}

	obstacles := army.Occupancy(f.Field, units)
	obstacles.Clear(src)
	obstacles.Clear(dst)

	return f.Search(src, dst, obstacles)
}

// Search runs the breadth-first search from src to dst over the obstacle map.
// Cells outside the field are never neighbours.
func (f *Finder) Search(src, dst core.Coord, obstacles *core.Grid) []core.Coord {
	if !f.Field.InBounds(src) || !f.Field.InBounds(dst) {
		return nil
	}

	w := f.Field.Width
	index := func(c core.Coord) int { return c.Y*w + c.X }

	visited := make([]bool, f.Field.Cells())
	parent := make([]int, f.Field.Cells())
	for i := range parent {
		parent[i] = -1
	}

	queue := make([]core.Coord, 0, f.Field.Cells())
	queue = append(queue, src)
	visited[index(src)] = true

	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		if cur.Equal(dst) {
			break
		}

		for _, o := range offsets {
			next := cur.Add(o[0], o[1])
			if !f.Field.InBounds(next) {
				continue
			}
			i := index(next)
			if visited[i] || obstacles.Occupied(next) {
				continue
			}
			visited[i] = true
			parent[i] = index(cur)
			queue = append(queue, next)
		}
	}

	if !visited[index(dst)] {
		return nil
	}
	return reconstruct(index(dst), parent, w)
}

// reconstruct walks parent links back from the destination and reverses them.
func reconstruct(dst int, parent []int, w int) []core.Coord {
	var path []core.Coord
	for i := dst; i != -1; i = parent[i] {
		path = append(path, core.C(i%w, i/w))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Steps returns the number of moves in a path, or -1 for an empty path.
func Steps(path []core.Coord) int {
	return len(path) - 1
}
