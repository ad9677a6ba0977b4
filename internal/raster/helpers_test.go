package raster

import "github.com/bigzano/noisekit/vecmath"

func noiseVec(x, y float64) vecmath.Vec2[float64] {
	return vecmath.V2(x, y)
}
