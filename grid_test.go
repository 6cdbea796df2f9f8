package georelate

import (
	"testing"

	"github.com/ctessum/geom"
)

func testDataspace() *DataspaceMetadata {
	return newDataspaceMetadata(&geom.Bounds{
		Min: geom.Point{X: 0, Y: 0},
		Max: geom.Point{X: 100, Y: 100},
	})
}

func TestPartitionID(t *testing.T) {
	cases := []struct {
		i, j, p int
		want    int32
	}{
		{0, 0, 10, 0},
		{5, 0, 10, 5},
		{0, 1, 10, 10},
		{9, 9, 10, 99},
	}
	for _, c := range cases {
		if got := partitionID(c.i, c.j, c.p); got != c.want {
			t.Errorf("partitionID(%d,%d,%d) = %d, want %d", c.i, c.j, c.p, got, c.want)
		}
	}
}

func TestPartitionsForMBR(t *testing.T) {
	ds := testDataspace()
	b := &geom.Bounds{Min: geom.Point{X: 5, Y: 5}, Max: geom.Point{X: 5, Y: 5}}
	ids, err := partitionsForMBR(b, ds, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ids) != 1 {
		t.Fatalf("expected single-cell point to hit exactly one partition, got %v", ids)
	}
	maxID := int32(100)
	for _, id := range ids {
		if id < 0 || id >= maxID {
			t.Errorf("partition id %d out of range [0,%d)", id, maxID)
		}
	}
}

func TestPartitionsForMBRSpansMultipleCells(t *testing.T) {
	ds := testDataspace()
	b := &geom.Bounds{Min: geom.Point{X: 1, Y: 1}, Max: geom.Point{X: 25, Y: 1}}
	ids, err := partitionsForMBR(b, ds, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ids) < 2 {
		t.Errorf("expected MBR spanning several columns to cover multiple partitions, got %v", ids)
	}
}

func TestUniformGridIndexInsertionOrder(t *testing.T) {
	idx := NewUniformGridIndex()
	s1 := NewPointShape(1, 1)
	s2 := NewPointShape(2, 2)
	idx.insert(5, s1)
	idx.insert(3, s2)
	idx.insert(5, s2)

	order := idx.Partitions()
	if len(order) != 2 || order[0].ID != 5 || order[1].ID != 3 {
		t.Fatalf("unexpected partition order: %+v", order)
	}
	if len(idx.Get(5).Contents) != 2 {
		t.Errorf("expected partition 5 to hold 2 shapes, got %d", len(idx.Get(5).Contents))
	}
}
