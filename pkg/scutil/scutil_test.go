package scutil

import (
	"math"
	"testing"
)

func TestChunkList(t *testing.T) {
	chunks := ChunkList([]int{1, 2, 3, 4, 5}, 2)
	if len(chunks) != 3 {
		t.Fatalf("expected 3 chunks, got %d", len(chunks))
	}
	if len(chunks[0]) != 2 || len(chunks[2]) != 1 {
		t.Errorf("unexpected chunk shapes: %v", chunks)
	}
}

func TestChunkList_Empty(t *testing.T) {
	if chunks := ChunkList([]int{}, 10); chunks != nil {
		t.Errorf("expected nil for empty input, got %v", chunks)
	}
}

func TestIndexBy_LaterWins(t *testing.T) {
	type row struct {
		ID   string
		Name string
	}
	rows := []row{{"a", "first"}, {"a", "second"}}
	indexed := IndexBy(rows, func(r row) string { return r.ID })
	if indexed["a"].Name != "second" {
		t.Errorf("expected later duplicate to win, got %q", indexed["a"].Name)
	}
}

func TestIndexByStrict_RejectsDuplicates(t *testing.T) {
	type row struct{ ID string }
	rows := []row{{"a"}, {"a"}}
	_, ok := IndexByStrict(rows, func(r row) string { return r.ID })
	if ok {
		t.Error("expected IndexByStrict to reject a duplicate key")
	}
}

func TestFloatInfToString_RoundTrip(t *testing.T) {
	if got := FloatInfToString(math.Inf(1)); got != "Infinity" {
		t.Errorf("expected %q, got %v", "Infinity", got)
	}
	if got := FloatInfToString(math.Inf(-1)); got != "-Infinity" {
		t.Errorf("expected %q, got %v", "-Infinity", got)
	}
	if got := FloatInfToString(1.5); got != 1.5 {
		t.Errorf("expected 1.5 unchanged, got %v", got)
	}
	if got := StringToFloatInf("Infinity"); !math.IsInf(got, 1) {
		t.Errorf("expected +Inf, got %v", got)
	}
	if got := StringToFloatInf("-Infinity"); !math.IsInf(got, -1) {
		t.Errorf("expected -Inf, got %v", got)
	}
}

func TestCanonicalJSON_StableAcrossMapOrdering(t *testing.T) {
	a := map[string]interface{}{"b": 1, "a": 2, "c": 3}
	b := map[string]interface{}{"c": 3, "a": 2, "b": 1}
	if CanonicalJSON(a) != CanonicalJSON(b) {
		t.Errorf("expected identical canonical JSON regardless of map construction order")
	}
}

func TestJSONHash_DiffersOnContentChange(t *testing.T) {
	h1 := JSONHash(map[string]interface{}{"price": 1.0})
	h2 := JSONHash(map[string]interface{}{"price": 2.0})
	if h1 == h2 {
		t.Error("expected different hashes for different content")
	}
	h3 := JSONHash(map[string]interface{}{"price": 1.0})
	if h1 != h3 {
		t.Error("expected identical hashes for identical content")
	}
}
