package vocab

import (
	"reflect"
	"testing"
)

func TestNewStore(t *testing.T) {
	s := New([]string{"ȹu", "ʘa", "kə", "mni"}, []string{"mni", "ȹu"})
	for _, g := range []string{"ȹu", "ʘa", "kə", "mni"} {
		if !s.IsActive(g) {
			t.Errorf("%q should be active", g)
		}
	}
	if s.IsActive("α") {
		t.Error("α should not be active")
	}
	if !s.Knows("mni") || s.Knows("kə") {
		t.Errorf("vocabulary = %v; want [mni ȹu]", s.Vocabulary())
	}
}

func TestReleaseTeachesAndActivates(t *testing.T) {
	s := New(nil, nil)
	if !s.Release("ʘa") {
		t.Fatal("first Release should report a new glyph")
	}
	if s.Release("ʘa") {
		t.Error("second Release of the same glyph should report false")
	}
	if !s.IsActive("ʘa") || !s.Knows("ʘa") {
		t.Error("released glyph must be both active and known")
	}
}

func TestTeachDoesNotActivate(t *testing.T) {
	s := New(nil, nil)
	if !s.Teach("kə") {
		t.Fatal("first Teach should report a new glyph")
	}
	if s.Teach("kə") {
		t.Error("repeat Teach should report false")
	}
	if s.IsActive("kə") {
		t.Error("Teach must not activate a glyph")
	}
}

func TestReplaceActiveKeepsVocabulary(t *testing.T) {
	s := New([]string{"ȹu", "mni"}, []string{"mni", "ȹu"})
	s.Teach("kə")
	before := s.VocabularySize()

	s.ReplaceActive([]string{"α", "β"})

	if s.IsActive("mni") {
		t.Error("old active glyphs must be gone after ReplaceActive")
	}
	if !reflect.DeepEqual(s.Active(), []string{"α", "β"}) {
		t.Errorf("Active = %v; want [α β]", s.Active())
	}
	if s.VocabularySize() != before {
		t.Errorf("vocabulary size changed across level transition: %d -> %d", before, s.VocabularySize())
	}
}

func TestVocabularyMonotonic(t *testing.T) {
	s := New([]string{"a"}, []string{"a"})
	ops := []func(){
		func() { s.Teach("b") },
		func() { s.Release("c") },
		func() { s.ReplaceActive([]string{"x"}) },
		func() { s.Teach("b") },
		func() { s.Release("a") },
		func() { s.ReplaceActive(nil) },
	}
	prev := s.VocabularySize()
	for i, op := range ops {
		op()
		if n := s.VocabularySize(); n < prev {
			t.Fatalf("op %d shrank vocabulary: %d -> %d", i, prev, n)
		} else {
			prev = n
		}
	}
}

func TestSnapshotIsCopy(t *testing.T) {
	s := New([]string{"a"}, []string{"a"})
	snap := s.Snapshot()
	snap.Active[0] = "mutated"
	if !s.IsActive("a") || s.Active()[0] != "a" {
		t.Error("mutating a snapshot must not affect the store")
	}
}
