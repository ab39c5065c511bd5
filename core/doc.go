// Package core provides shared numeric helpers and configuration options
// used by the geometry, interpolation and control packages.
package core
