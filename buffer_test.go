package georelate

import "testing"

func TestFlushSentenceBuffersOrderAndSkipsEmpty(t *testing.T) {
	b0 := &sentenceBuffer{workerID: 0}
	b0.writeString("first.")
	b1 := &sentenceBuffer{workerID: 1}
	b2 := &sentenceBuffer{workerID: 2}
	b2.writeString("third.")

	got := flushSentenceBuffers([]*sentenceBuffer{b0, b1, b2})
	want := "first.\nthird.\n"
	if got != want {
		t.Errorf("flushSentenceBuffers = %q, want %q", got, want)
	}
}

func TestSentenceBufferWriteStringIgnoresEmpty(t *testing.T) {
	b := &sentenceBuffer{}
	b.writeString("")
	if b.b.Len() != 0 {
		t.Error("expected empty string not to be appended")
	}
}

func TestParagraphShardAppendIgnoresEmpty(t *testing.T) {
	shard := newParagraphShard()
	shard.append("R", "")
	if _, ok := shard["R"]; ok {
		t.Error("expected an empty text not to create an entry")
	}
	shard.append("R", "hello ")
	shard.append("R", "world")
	if got := shard["R"].String(); got != "hello world" {
		t.Errorf("shard[R] = %q, want %q", got, "hello world")
	}
}

func TestMergeParagraphShardsOrderAndConcatenation(t *testing.T) {
	s0 := newParagraphShard()
	s0.append("R", "r-text-0 ")
	s0.append("S", "s-text-0 ")

	s1 := newParagraphShard()
	s1.append("R", "r-text-1")
	s1.append("T", "t-text-1")

	order, text := mergeParagraphShards([]paragraphShard{s0, s1})

	wantOrder := []string{"R", "S", "T"}
	if len(order) != len(wantOrder) {
		t.Fatalf("order = %v, want %v", order, wantOrder)
	}
	for i, e := range wantOrder {
		if order[i] != e {
			t.Errorf("order[%d] = %q, want %q", i, order[i], e)
		}
	}
	if text["R"] != "r-text-0 r-text-1" {
		t.Errorf("text[R] = %q, want concatenation across shards", text["R"])
	}
	if text["S"] != "s-text-0 " {
		t.Errorf("text[S] = %q", text["S"])
	}
}
