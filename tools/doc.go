// Package tools provides conversions between the representations in package
// types and the rigid-body helpers built on top of them: SE(3) logarithm and
// exponential, change of reference frame, transform interpolation, axis
// projections and angle averaging.
package tools
