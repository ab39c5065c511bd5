// Package interpolation builds joint-space and Cartesian trajectories
// sampled at a fixed controller period.
//
// Available interpolators:
//
//   - [Linear], [LinearVector]:  constant-velocity ramps
//   - [Smooth], [SmoothVector]:  minimum-jerk quintic profiles
//   - [Articular]:               clamped cubic spline through joint knots
//   - [Cartesian]:               clamped cubic spline of transform logarithms
//   - [Bezier], [BezierKeys]:    cubic Bezier segments between timeline keys
//
// [FinalTime], [JointFinalTime] and [CartesianFinalTime] compute durations
// that respect velocity limits and land on a multiple of the period.
//
// Interpolators with state are not safe for concurrent use.
package interpolation
