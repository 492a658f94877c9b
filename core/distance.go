// Package core - the distance and energy model shared by all traversal
// policies.
//
// Manhattan distance is chosen over Euclidean deliberately: it is cheaper per
// evaluation and avoids a square root in the hottest inner loop, the
// edge-selection weight computed once per candidate edge per step per agent.
package core

// Distance returns the Manhattan distance |dx| + |dy| between two nodes.
//
// Complexity: O(1).
func Distance(a, b *Node) float64 {
	dx := a.x - b.x
	if dx < 0 {
		dx = -dx
	}
	dy := a.y - b.y
	if dy < 0 {
		dy = -dy
	}

	return dx + dy
}

// RequiredEnergy returns the cost of traversing the edge a → b while already
// carrying `carried` units of accumulated load:
//
//	(carried + 1) * Distance(a, b)
//
// This couples tour cost to the order nodes are visited in - it is a
// load-penalized tour cost, not plain path length, and the coupling must be
// preserved by every cost evaluation.
//
// Complexity: O(1).
func RequiredEnergy(a, b *Node, carried int64) float64 {
	return float64(carried+1) * Distance(a, b)
}
