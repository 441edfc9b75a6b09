package renderer

import (
	"sort"

	"github.com/Faultbox/lowpoly-house/internal/engine/lighting"
	"github.com/Faultbox/lowpoly-house/internal/engine/scene"
	"github.com/Faultbox/lowpoly-house/pkg/math"
)

// helperColor is the shadow camera helper's line color.
var helperColor = [3]float32{1, 0.67, 0}

// DrawOrder returns opaque nodes in scene order followed by transparent
// nodes sorted back to front from the eye.
func DrawOrder(nodes []*scene.Node, eye math.Vec3) []*scene.Node {
	out := make([]*scene.Node, 0, len(nodes))
	var transparent []*scene.Node
	for _, n := range nodes {
		if n.Material.Transparent {
			transparent = append(transparent, n)
		} else {
			out = append(out, n)
		}
	}
	sort.SliceStable(transparent, func(i, j int) bool {
		di := transparent[i].Position.Sub(eye).Length()
		dj := transparent[j].Position.Sub(eye).Length()
		return di > dj
	})
	return append(out, transparent...)
}

// clearColor is the solid background color, or black behind an image.
func clearColor(bg lighting.Background) lighting.Color {
	if bg.Kind == lighting.BackgroundSolid {
		return bg.Color
	}
	return lighting.Color{}
}

// DrawableSize scales a window size by the display's pixel ratio, capped at
// maxRatio so high density displays do not render more pixels than needed.
func DrawableSize(width, height int32, pixelRatio, maxRatio float32) (int32, int32) {
	ratio := pixelRatio
	if ratio <= 0 {
		ratio = 1
	}
	if maxRatio > 0 && ratio > maxRatio {
		ratio = maxRatio
	}
	return max(int32(float32(width)*ratio), 1), max(int32(float32(height)*ratio), 1)
}
