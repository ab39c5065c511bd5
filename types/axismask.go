package types

import "strings"

// AxisMask selects a subset of the six cartesian axes.
type AxisMask uint8

const (
	AxisMaskNone AxisMask = 0
	AxisMaskX    AxisMask = 1
	AxisMaskY    AxisMask = 2
	AxisMaskXY   AxisMask = 3
	AxisMaskZ    AxisMask = 4
	AxisMaskVel  AxisMask = 7
	AxisMaskWX   AxisMask = 8
	AxisMaskWY   AxisMask = 16
	AxisMaskWZ   AxisMask = 32
	AxisMaskWYWZ AxisMask = 48
	AxisMaskRot  AxisMask = 56
	AxisMaskAll  AxisMask = 63
)

var axisNames = [...]string{"X", "Y", "Z", "WX", "WY", "WZ"}

// Has reports whether every axis of o is set in m.
func (m AxisMask) Has(o AxisMask) bool { return m&o == o }

// String lists the selected axes, for example "X|Y|WZ".
func (m AxisMask) String() string {
	if m&AxisMaskAll == 0 {
		return "NONE"
	}

	var parts []string
	for i, name := range axisNames {
		if m&(1<<i) != 0 {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, "|")
}
