package types

import "math"

// Pixel is an integer image coordinate.
type Pixel struct {
	X, Y int
}

// OccupancyMapParams describes a square occupancy grid image laid over the
// metric plane. Image rows grow towards negative metric y.
type OccupancyMapParams struct {
	Size                         int
	MetersPerPixel               float64
	OriginOffset                 Position2D
	ObstacleProbabilityThreshold float64
}

// NewOccupancyMapParams centers a size x size map on center.
func NewOccupancyMapParams(size int, metersPerPixel float64, center Position2D, obstacleThreshold float64) OccupancyMapParams {
	half := float64(size) / 2 * metersPerPixel
	return OccupancyMapParams{
		Size:                         size,
		MetersPerPixel:               metersPerPixel,
		OriginOffset:                 Position2D{X: center.X - half, Y: center.Y + half},
		ObstacleProbabilityThreshold: obstacleThreshold,
	}
}

// MetricSize is the side length of the map in meters.
func (m OccupancyMapParams) MetricSize() float64 { return float64(m.Size) * m.MetersPerPixel }

// PixelFromPosition returns the pixel containing p.
func (m OccupancyMapParams) PixelFromPosition(p Position2D) Pixel {
	return pixelFromOffsetAndScale(p, m.MetersPerPixel, m.OriginOffset)
}

// PositionFromPixel returns the metric position of pixel px.
func (m OccupancyMapParams) PositionFromPixel(px Pixel) Position2D {
	return Position2D{
		X: float64(px.X)*m.MetersPerPixel + m.OriginOffset.X,
		Y: -float64(px.Y)*m.MetersPerPixel + m.OriginOffset.Y,
	}
}

// DeltaPixelFromDeltaPosition converts a metric displacement to pixels.
func (m OccupancyMapParams) DeltaPixelFromDeltaPosition(d Position2D) Pixel {
	return pixelFromOffsetAndScale(d, m.MetersPerPixel, Position2D{})
}

// IsNear compares the metric parameters within eps and the sizes exactly.
func (m OccupancyMapParams) IsNear(o OccupancyMapParams, eps float64) bool {
	return m.Size == o.Size &&
		near(m.MetersPerPixel, o.MetersPerPixel, eps) &&
		m.OriginOffset.IsNear(o.OriginOffset, eps) &&
		near(m.ObstacleProbabilityThreshold, o.ObstacleProbabilityThreshold, eps)
}

func pixelFromOffsetAndScale(p Position2D, metersPerPixel float64, offset Position2D) Pixel {
	k := 1 / metersPerPixel
	return Pixel{
		X: roundToInt((p.X - offset.X) * k),
		Y: roundToInt(-(p.Y - offset.Y) * k),
	}
}

// roundToInt rounds half away from zero.
func roundToInt(x float64) int { return int(math.Round(x)) }
