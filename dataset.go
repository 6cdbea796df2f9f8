package georelate

import (
	"bufio"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/ctessum/geom"
	"github.com/sirupsen/logrus"
)

// Dataset is one loaded, tab-delimited input file: its raw rows parsed
// into Shapes, indexed by record id and by uniform-grid partition.
// Grounded on original_source/src/index/create.cpp's two-pass loader
// (bounds pass, then index pass) and spatialmodel-inmap's convention of
// keeping I/O state on a plain struct rather than an interface.
type Dataset struct {
	Path        string
	Nickname    string
	Description string
	WKTColIdx   int
	NameColIdx  int
	OtherColIdx int // FIPS column, or -1 if the dataset has none

	Bounds  *geom.Bounds
	Objects map[uint64]*Shape
	Index   *UniformGridIndex
}

// NewDataset constructs a Dataset description; Load still needs to be
// called before Objects/Index/Bounds are populated. Shape kind is not a
// dataset-level setting: per spec.md §4.1, each row's kind is read from
// its own WKT prefix, so a single dataset file may mix shape kinds.
func NewDataset(path, nickname, description string, wktColIdx, nameColIdx, otherColIdx int) *Dataset {
	return &Dataset{
		Path:        path,
		Nickname:    nickname,
		Description: description,
		WKTColIdx:   wktColIdx,
		NameColIdx:  nameColIdx,
		OtherColIdx: otherColIdx,
		Objects:     make(map[uint64]*Shape),
	}
}

// computeBounds performs the first pass over the file: parse every row's
// WKT column and accumulate the dataset-local MBR. Rows whose geometry
// does not parse are skipped as recoverable errors (matching the
// original's DBERR_INVALID_GEOMETRY "just ignore" branch) and logged at
// debug level.
func (d *Dataset) computeBounds() error {
	f, err := os.Open(d.Path)
	if err != nil {
		return newErr(StatusFileOpen, "dataset %s: failed to open %s: %v", d.Nickname, d.Path, err)
	}
	defer f.Close()

	xMin, yMin := math.Inf(1), math.Inf(1)
	xMax, yMax := math.Inf(-1), math.Inf(-1)
	var anyValid bool

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	lineNo := 0
	for sc.Scan() {
		cols := strings.Split(sc.Text(), "\t")
		lineNo++
		if d.WKTColIdx >= len(cols) {
			continue
		}
		shape, err := parseWKT(cols[d.WKTColIdx])
		if err != nil {
			logrus.WithFields(logrus.Fields{"dataset": d.Nickname, "line": lineNo}).Debug("georelate: skipping row with invalid geometry")
			continue
		}
		anyValid = true
		xMin = math.Min(xMin, shape.MBR.Min.X)
		yMin = math.Min(yMin, shape.MBR.Min.Y)
		xMax = math.Max(xMax, shape.MBR.Max.X)
		yMax = math.Max(yMax, shape.MBR.Max.Y)
	}
	if err := sc.Err(); err != nil {
		return newErr(StatusFileOpen, "dataset %s: read error: %v", d.Nickname, err)
	}
	if !anyValid {
		return newErr(StatusInvalidGeometry, "dataset %s: no valid geometry objects found in %s", d.Nickname, d.Path)
	}
	d.Bounds = &geom.Bounds{Min: geom.Point{X: xMin, Y: yMin}, Max: geom.Point{X: xMax, Y: yMax}}
	return nil
}

// index performs the second pass: parse every row again, assign a record
// id (its 0-based line number), compose its display name, compute its
// uniform-grid partitions against the shared dataspace, and store it in
// Objects and Index.
func (d *Dataset) index(dataspace *DataspaceMetadata, partitionsPerDim int) error {
	f, err := os.Open(d.Path)
	if err != nil {
		return newErr(StatusFileOpen, "dataset %s: failed to open %s: %v", d.Nickname, d.Path, err)
	}
	defer f.Close()

	d.Index = NewUniformGridIndex()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	var recID uint64
	for sc.Scan() {
		cols := strings.Split(sc.Text(), "\t")
		if d.WKTColIdx >= len(cols) {
			recID++
			continue
		}
		shape, err := parseWKT(cols[d.WKTColIdx])
		if err != nil {
			recID++
			continue
		}
		shape.RecID = recID
		shape.Name = d.composeName(cols)

		ids, err := partitionsForMBR(shape.MBR, dataspace, partitionsPerDim)
		if err != nil {
			return err
		}
		shape.setPartitions(ids)
		for _, id := range ids {
			d.Index.insert(id, shape)
		}
		d.Objects[recID] = shape
		recID++
	}
	if err := sc.Err(); err != nil {
		return newErr(StatusFileOpen, "dataset %s: read error: %v", d.Nickname, err)
	}
	return nil
}

// composeName builds an object's display name as "<description>
// <name column>", optionally appended with a FIPS-derived state name
// when OtherColIdx is configured, per spec.md §3.
func (d *Dataset) composeName(cols []string) string {
	name := d.Description
	if d.NameColIdx >= 0 && d.NameColIdx < len(cols) {
		name = name + " " + cols[d.NameColIdx]
	}
	if d.OtherColIdx >= 0 && d.OtherColIdx < len(cols) {
		if fp, err := strconv.Atoi(strings.TrimSpace(cols[d.OtherColIdx])); err == nil {
			name = name + ", " + stateFPToStateName(fp)
		}
	}
	return name
}

// Load runs the bounds pass only; call UnifyAndIndex once both of a
// join's datasets have been loaded to compute their shared dataspace and
// run the index pass on each.
func (d *Dataset) Load() error {
	return d.computeBounds()
}

// UnifyAndIndex unifies r's and s's per-dataset bounds into one
// DataspaceMetadata (spec.md §4.1: "both must use identical cell
// borders") and runs the index pass on each against it.
func UnifyAndIndex(r, s *Dataset, partitionsPerDim int) (*DataspaceMetadata, error) {
	ds := unifyDataspace(r.Bounds, s.Bounds)
	if err := r.index(ds, partitionsPerDim); err != nil {
		return nil, err
	}
	if err := s.index(ds, partitionsPerDim); err != nil {
		return nil, err
	}
	return ds, nil
}
