// Package effects holds the helpers a web front end can call to move the
// "No" button and to fire a particle burst. Both are independent of the
// prompt loop.
package effects

import "math/rand"

// Margin keeps teleported positions this far from every edge.
const Margin = 60.0

// TeleportPosition picks a point inside the width x height box, inset by
// Margin on all sides. The same (width, height, seed) always yields the same
// point. Boxes narrower than twice the margin collapse to a one unit range
// starting at Margin.
func TeleportPosition(width, height float64, seed int64) (x, y float64) {
	minX, maxX := Margin, width-Margin
	minY, maxY := Margin, height-Margin
	if maxX <= minX {
		maxX = minX + 1
	}
	if maxY <= minY {
		maxY = minY + 1
	}

	rng := rand.New(rand.NewSource(seed))
	x = minX + rng.Float64()*(maxX-minX)
	y = minY + rng.Float64()*(maxY-minY)
	return x, y
}
