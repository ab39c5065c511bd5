// Package collisions provides planar convex hulls, point-in-polygon tests,
// foot footprint collision avoidance and closest-point queries between 3D
// segments.
package collisions
