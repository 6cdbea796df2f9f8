package georelate

import (
	"sort"
	"strings"
)

// sentenceBuffer is one worker's accumulated sentences-mode output,
// flushed in worker-id order once evaluation completes (spec.md §5).
type sentenceBuffer struct {
	workerID int
	b        strings.Builder
}

func (b *sentenceBuffer) writeString(s string) {
	if s != "" {
		b.b.WriteString(s)
	}
}

// flushSentenceBuffers concatenates a set of per-worker buffers in
// worker-id order into the final sentences-mode output text.
func flushSentenceBuffers(buffers []*sentenceBuffer) string {
	var out strings.Builder
	for _, buf := range buffers {
		out.WriteString(buf.b.String())
		if buf.b.Len() > 0 {
			out.WriteByte('\n')
		}
	}
	return out.String()
}

// paragraphShard is one worker's partial entity-to-text accumulation for
// paragraph modes. Workers never share a map, so no lock is needed while
// evaluation runs; shards are merged once, after the parallel region
// ends, per spec.md §5's preference for sharded aggregation over a
// mutex-guarded map.
type paragraphShard map[string]*strings.Builder

func newParagraphShard() paragraphShard {
	return make(paragraphShard)
}

func (p paragraphShard) append(entity, text string) {
	if text == "" {
		return
	}
	b, ok := p[entity]
	if !ok {
		b = &strings.Builder{}
		p[entity] = b
	}
	b.WriteString(text)
}

// mergeParagraphShards combines every worker's shard into one ordered
// entity-to-text map, concatenating text for entities touched by more
// than one worker. Entity order follows first-touched order across
// shards in the order given; within one shard, entities are taken in
// name order (a shard does not record the order of its appends).
func mergeParagraphShards(shards []paragraphShard) (order []string, text map[string]string) {
	text = make(map[string]string)
	seen := make(map[string]bool)
	for _, shard := range shards {
		entities := make([]string, 0, len(shard))
		for entity := range shard {
			entities = append(entities, entity)
		}
		sort.Strings(entities)
		for _, entity := range entities {
			if !seen[entity] {
				seen[entity] = true
				order = append(order, entity)
			}
			text[entity] += shard[entity].String()
		}
	}
	return order, text
}
