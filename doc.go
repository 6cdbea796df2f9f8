/*
Package georelate computes pairwise spatial relations between two datasets
of 2D geometric entities (points, linestrings, axis-aligned rectangles,
polygons, and multipolygons) and renders the results as natural-language
text.

The pipeline loads both datasets into a uniform grid spatial index
(Dataset, UniformGridIndex), enumerates candidate pairs sharing a grid
partition with reference-point duplicate elimination (Join), classifies
each pair's minimum bounding rectangles (MBRCase), refines the
topological relation with a DE-9IM mask match (DE9IM, TopologyRelation),
computes a cardinal direction and common intersection area where
applicable (CardinalDirection), and renders the result in one of three
document shapes (DocumentType).
*/
package georelate

// Version identifies this build of the package for diagnostic output.
const Version = "1.0.0"
