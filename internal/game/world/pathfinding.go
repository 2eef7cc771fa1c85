package world

import (
	"container/heap"
)

// Walkable is a square grid of walkable and blocked cells.
// *maze.Layout satisfies it.
type Walkable interface {
	Size() int
	IsWalkable(x, y int) bool
}

// PathNode represents a node in the A* search.
type PathNode struct {
	X, Y   int // Cell coordinates
	G      int // Cost from start
	H      int // Heuristic (estimated cost to goal)
	F      int // Total cost (G + H)
	Parent *PathNode
	Index  int // Index in heap
}

// PathHeap implements a priority queue for A* pathfinding.
type PathHeap []*PathNode

func (h PathHeap) Len() int { return len(h) }
func (h PathHeap) Less(i, j int) bool {
	if h[i].F == h[j].F {
		return h[i].H < h[j].H
	}
	return h[i].F < h[j].F
}
func (h PathHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].Index = i
	h[j].Index = j
}

func (h *PathHeap) Push(x interface{}) {
	n := len(*h)
	node := x.(*PathNode)
	node.Index = n
	*h = append(*h, node)
}

func (h *PathHeap) Pop() interface{} {
	old := *h
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	node.Index = -1
	*h = old[0 : n-1]
	return node
}

// PathFinder finds routes through the open cells of a grid.
type PathFinder struct {
	grid Walkable
	size int
}

// NewPathFinder creates a new pathfinder.
func NewPathFinder(grid Walkable) *PathFinder {
	if grid == nil {
		return nil
	}
	return &PathFinder{
		grid: grid,
		size: grid.Size(),
	}
}

// The maze is orthogonal: diagonal neighbours of open cells are always
// wall corners, so only the four axis moves are searched.
var pathDirections = [4][2]int{
	{0, -1}, // N
	{1, 0},  // E
	{0, 1},  // S
	{-1, 0}, // W
}

// FindPath finds a path from start to goal using A*.
// Returns nil if no path exists.
func (pf *PathFinder) FindPath(startX, startY, goalX, goalY int) [][2]int {
	if pf == nil || pf.grid == nil {
		return nil
	}

	if !pf.grid.IsWalkable(startX, startY) || !pf.grid.IsWalkable(goalX, goalY) {
		return nil
	}

	openSet := &PathHeap{}
	heap.Init(openSet)

	closedSet := make(map[int]bool)
	nodeMap := make(map[int]*PathNode)

	startNode := &PathNode{
		X: startX,
		Y: startY,
		H: heuristic(startX, startY, goalX, goalY),
	}
	startNode.F = startNode.H
	heap.Push(openSet, startNode)
	nodeMap[pf.key(startX, startY)] = startNode

	maxIterations := pf.size * pf.size // Prevent infinite loops
	iterations := 0

	for openSet.Len() > 0 && iterations < maxIterations {
		iterations++

		current := heap.Pop(openSet).(*PathNode)
		if current.X == goalX && current.Y == goalY {
			return reconstructPath(current)
		}

		closedSet[pf.key(current.X, current.Y)] = true

		for _, dir := range pathDirections {
			nx, ny := current.X+dir[0], current.Y+dir[1]
			if !pf.grid.IsWalkable(nx, ny) || closedSet[pf.key(nx, ny)] {
				continue
			}

			g := current.G + 1

			neighbor, exists := nodeMap[pf.key(nx, ny)]
			if !exists {
				neighbor = &PathNode{
					X:      nx,
					Y:      ny,
					G:      g,
					H:      heuristic(nx, ny, goalX, goalY),
					Parent: current,
				}
				neighbor.F = neighbor.G + neighbor.H
				nodeMap[pf.key(nx, ny)] = neighbor
				heap.Push(openSet, neighbor)
			} else if g < neighbor.G {
				neighbor.G = g
				neighbor.F = neighbor.G + neighbor.H
				neighbor.Parent = current
				heap.Fix(openSet, neighbor.Index)
			}
		}
	}

	return nil
}

// heuristic is the Manhattan distance, exact for 4-way movement without walls.
func heuristic(x1, y1, x2, y2 int) int {
	return abs(x2-x1) + abs(y2-y1)
}

func (pf *PathFinder) key(x, y int) int {
	return y*pf.size + x
}

func reconstructPath(node *PathNode) [][2]int {
	var path [][2]int
	for node != nil {
		path = append(path, [2]int{node.X, node.Y})
		node = node.Parent
	}
	// Reverse path (it's built from goal to start)
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
