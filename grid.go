package georelate

import (
	"math"

	"github.com/ctessum/geom"
)

// Partition is one cell of the uniform grid, addressed by
// i + j*partitionsPerDim. Contents holds references into the owning
// Dataset's object map; a shape may be replicated across several
// partitions when its MBR spans more than one cell.
type Partition struct {
	ID       int32
	Contents []*Shape
}

// UniformGridIndex maps partition id to Partition, sparse: only
// partitions that actually hold a shape are materialized. partitionOrder
// preserves first-insertion order so evaluation can iterate
// deterministically regardless of map iteration order.
type UniformGridIndex struct {
	partitions     map[int32]*Partition
	partitionOrder []int32
}

// NewUniformGridIndex creates an empty index.
func NewUniformGridIndex() *UniformGridIndex {
	return &UniformGridIndex{partitions: make(map[int32]*Partition)}
}

// Get returns the Partition for id, or nil if it is empty.
func (idx *UniformGridIndex) Get(id int32) *Partition {
	return idx.partitions[id]
}

// Partitions returns the non-empty partitions in insertion order.
func (idx *UniformGridIndex) Partitions() []*Partition {
	out := make([]*Partition, len(idx.partitionOrder))
	for i, id := range idx.partitionOrder {
		out[i] = idx.partitions[id]
	}
	return out
}

// insert adds s to partition id, creating the partition if necessary.
func (idx *UniformGridIndex) insert(id int32, s *Shape) {
	p, ok := idx.partitions[id]
	if !ok {
		p = &Partition{ID: id}
		idx.partitions[id] = p
		idx.partitionOrder = append(idx.partitionOrder, id)
	}
	p.Contents = append(p.Contents, s)
}

// partitionID packs row-major grid coordinates into a single id, per
// spec.md §4.2: id = i + j*P.
func partitionID(i, j, partitionsPerDim int) int32 {
	return int32(i + j*partitionsPerDim)
}

// partitionCoords maps a dataspace coordinate to its grid row/column.
func partitionCoords(x, y float64, ds *DataspaceMetadata, partitionsPerDim int) (i, j int) {
	dx, dy := ds.cellSize(partitionsPerDim)
	i = int(math.Floor((x - ds.XMin) / dx))
	j = int(math.Floor((y - ds.YMin) / dy))
	return i, j
}

// partitionsForMBR computes every partition id the inclusive rectangle
// [iMin..iMax] x [jMin..jMax] covers for b, and validates that the
// corner ids are in range, per spec.md §4.2.
func partitionsForMBR(b *geom.Bounds, ds *DataspaceMetadata, partitionsPerDim int) ([]int32, error) {
	iMin, jMin := partitionCoords(b.Min.X, b.Min.Y, ds, partitionsPerDim)
	iMax, jMax := partitionCoords(b.Max.X, b.Max.Y, ds, partitionsPerDim)

	maxID := int32(partitionsPerDim * partitionsPerDim)
	start := partitionID(iMin, jMin, partitionsPerDim)
	last := partitionID(iMax, jMax, partitionsPerDim)
	if start < 0 || start >= maxID {
		return nil, newErr(StatusInvalidPartition, "start partition %d out of range [0,%d)", start, maxID)
	}
	if last < 0 || last >= maxID {
		return nil, newErr(StatusInvalidPartition, "last partition %d out of range [0,%d): MBR(%g,%g,%g,%g)",
			last, maxID, b.Min.X, b.Min.Y, b.Max.X, b.Max.Y)
	}

	ids := make([]int32, 0, (iMax-iMin+1)*(jMax-jMin+1))
	for i := iMin; i <= iMax; i++ {
		for j := jMin; j <= jMax; j++ {
			ids = append(ids, partitionID(i, j, partitionsPerDim))
		}
	}
	return ids, nil
}
