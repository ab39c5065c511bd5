// Package dubins computes turn-straight-turn paths with a fixed turning radius
// from the origin pose (0, 0, 0) to a target pose.
//
// A path is described by three checkpoints: the end of the first arc, the end
// of the straight segment and the target itself. The heading stored in each
// checkpoint is unwrapped so that consecutive differences give the signed
// rotation of each arc: positive for a left turn, negative for a right turn.
package dubins
