package georelate

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// JoinConfig configures one spatial join evaluation run.
type JoinConfig struct {
	PartitionsPerDim int
	Workers          int
	DocType          DocumentType
	SelfJoin         bool
}

// JoinResult carries the rendered output of a join, in the shape its
// DocType calls for.
type JoinResult struct {
	DocType    DocumentType
	Sentences  string              // populated for DocSentences
	Order      []string            // populated for paragraph modes
	Paragraphs map[string]string   // populated for paragraph modes
}

// pairPartitionID returns the partition id of the lower-left corner of
// the intersection MBR of r and s, the reference point spec.md §4.3
// uses to deduplicate a pair replicated across several shared
// partitions: a pair is only evaluated in the one partition containing
// this point.
func pairPartitionID(r, s *Shape, ds *DataspaceMetadata, partitionsPerDim int) int32 {
	cx := r.MBR.Min.X
	if s.MBR.Min.X > cx {
		cx = s.MBR.Min.X
	}
	cy := r.MBR.Min.Y
	if s.MBR.Min.Y > cy {
		cy = s.MBR.Min.Y
	}
	i, j := partitionCoords(cx, cy, ds, partitionsPerDim)
	return partitionID(i, j, partitionsPerDim)
}

// evaluatePair runs a candidate pair through the MBR dispatcher, DE-9IM
// refiner, and direction/area computer, returning its topological
// relation and, when applicable, a cardinal direction.
func evaluatePair(r, s *Shape) (rel TopologyRelation, dir CardinalDirection) {
	if mbrDisjointFast(r, s) {
		return RelDisjoint, cardinalDirection(r, s)
	}
	mbrCase := classifyMBR(r, s)
	rel = refine(r, s, mbrCase)
	if rel == RelMeet || rel == RelDisjoint {
		dir = cardinalDirection(r, s)
	}
	return rel, dir
}

// Join evaluates every candidate pair between dataset R's and dataset
// S's uniform grid indices and renders the result per cfg.DocType.
// Partition-parallel evaluation follows spec.md §5: a fixed worker pool
// of size cfg.Workers processes R's partition list via a static strided
// split, grounded on spatialmodel-inmap's run.go Calculations; workers
// share read-only shape/index state and own private output buffers,
// merged once after the parallel region ends. golang.org/x/sync/errgroup
// supplies the cooperative first-error-wins cancellation spec.md §5
// calls for, a concern the teacher's own WaitGroup-based pool does not
// need since its calculators never fail.
func Join(ctx context.Context, r, s *Dataset, ds *DataspaceMetadata, cfg JoinConfig) (*JoinResult, error) {
	partitions := r.Index.Partitions()
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	sentenceBufs := make([]*sentenceBuffer, workers)
	shards := make([]paragraphShard, workers)
	for w := 0; w < workers; w++ {
		sentenceBufs[w] = &sentenceBuffer{workerID: w}
		shards[w] = newParagraphShard()
	}

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			buf := sentenceBufs[w]
			shard := shards[w]
			for pi := w; pi < len(partitions); pi += workers {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}
				if err := evaluatePartition(partitions[pi], s, ds, cfg, buf, shard); err != nil {
					return err
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &JoinResult{DocType: cfg.DocType}
	if cfg.DocType == DocSentences {
		result.Sentences = flushSentenceBuffers(sentenceBufs)
		return result, nil
	}
	result.Order, result.Paragraphs = mergeParagraphShards(shards)
	return result, nil
}

// evaluatePartition walks one of R's partitions, pairing every R object
// it holds against every S object sharing the same partition id,
// deduplicating with the reference-point test, and rendering each
// surviving pair into buf/shard per cfg.DocType.
func evaluatePartition(p *Partition, s *Dataset, ds *DataspaceMetadata, cfg JoinConfig, buf *sentenceBuffer, shard paragraphShard) error {
	sPartition := s.Index.Get(p.ID)
	if sPartition == nil {
		return nil
	}
	for _, r := range p.Contents {
		for _, sObj := range sPartition.Contents {
			if pairPartitionID(r, sObj, ds, cfg.PartitionsPerDim) != p.ID {
				continue
			}
			renderPair(r, sObj, cfg, buf, shard)
		}
	}
	return nil
}

// renderPair evaluates one deduplicated pair and writes its rendered
// text into buf (sentences mode) or shard (paragraph modes), per
// spec.md §4.7.
func renderPair(r, s *Shape, cfg JoinConfig, buf *sentenceBuffer, shard paragraphShard) {
	rel, dir := evaluatePair(r, s)

	switch cfg.DocType {
	case DocSentences:
		buf.writeString(renderSentence(r, s, rel))

	case DocParagraphs:
		shard.append(r.Name, renderParagraphLeg(r, s, rel, dir))
		if !cfg.SelfJoin {
			shard.append(s.Name, renderParagraphLeg(s, r, rel.swapped(), dir.opposite()))
		}

	case DocParagraphsCompressed:
		if cfg.SelfJoin && rel == RelEqual {
			return
		}
		area := commonAreaKm2(r, s, rel)
		shard.append(r.Name, renderCompressed(r, s, rel, dir, area))
		if !cfg.SelfJoin {
			shard.append(s.Name, renderCompressed(s, r, rel.swapped(), dir.opposite(), area))
		}
	}
}
