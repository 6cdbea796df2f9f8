package georelate

import "github.com/ctessum/geom"

// boundsEpsilon pads the dataspace on each side to avoid boundary
// partition-id rounding errors, matching spec.md §3.
const boundsEpsilon = 1e-8

// DataspaceMetadata holds the global bounds and per-dimension extents
// that the uniform grid index is built from. Both datasets being joined
// must share one DataspaceMetadata so that their partition ids line up.
type DataspaceMetadata struct {
	XMin, YMin, XMax, YMax float64
	XExtent, YExtent       float64
	MaxExtent              float64
}

// newDataspaceMetadata builds a DataspaceMetadata from a raw bounds
// rectangle, padding by boundsEpsilon on every side.
func newDataspaceMetadata(b *geom.Bounds) *DataspaceMetadata {
	d := &DataspaceMetadata{
		XMin: b.Min.X - boundsEpsilon,
		YMin: b.Min.Y - boundsEpsilon,
		XMax: b.Max.X + boundsEpsilon,
		YMax: b.Max.Y + boundsEpsilon,
	}
	d.XExtent = d.XMax - d.XMin
	d.YExtent = d.YMax - d.YMin
	d.MaxExtent = d.XExtent
	if d.YExtent > d.MaxExtent {
		d.MaxExtent = d.YExtent
	}
	return d
}

// unifyDataspace returns the DataspaceMetadata covering both a and b,
// used once both datasets' own bounds are known (spec.md §4.1: "When
// both datasets are loaded, dataspace metadata is unified").
func unifyDataspace(a, b *geom.Bounds) *DataspaceMetadata {
	u := a.Copy()
	u.Extend(b)
	return newDataspaceMetadata(u)
}

// cellSize returns the width and height of one grid cell for a given
// number of partitions per dimension.
func (d *DataspaceMetadata) cellSize(partitionsPerDim int) (dx, dy float64) {
	return d.XExtent / float64(partitionsPerDim), d.YExtent / float64(partitionsPerDim)
}
