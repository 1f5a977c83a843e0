// Package vocab tracks which glyphs the current level accepts and which
// glyphs the player has learned.
package vocab

// Store owns the two glyph sets. The active set is replaced wholesale on
// level transition and otherwise only grows through Release; the player's
// vocabulary never shrinks.
type Store struct {
	active     glyphSet
	vocabulary glyphSet
}

// Snapshot is a read-only copy of the store for collaborators.
type Snapshot struct {
	Active     []string
	Vocabulary []string
}

// New returns a store with the given active glyphs and initial vocabulary.
func New(active, vocabulary []string) *Store {
	s := &Store{}
	for _, g := range active {
		s.active.add(g)
	}
	for _, g := range vocabulary {
		s.vocabulary.add(g)
	}
	return s
}

// IsActive reports whether glyph is currently accepted as input.
func (s *Store) IsActive(glyph string) bool { return s.active.has(glyph) }

// Knows reports whether the player has learned glyph.
func (s *Store) Knows(glyph string) bool { return s.vocabulary.has(glyph) }

// Release makes glyph acceptable and teaches it. It reports whether the
// glyph was newly activated.
func (s *Store) Release(glyph string) bool {
	s.vocabulary.add(glyph)
	return s.active.add(glyph)
}

// Teach adds glyph to the player's vocabulary and reports whether it was new.
func (s *Store) Teach(glyph string) bool {
	return s.vocabulary.add(glyph)
}

// ReplaceActive swaps in a new active set, as happens when a level loads.
func (s *Store) ReplaceActive(glyphs []string) {
	s.active = glyphSet{}
	for _, g := range glyphs {
		s.active.add(g)
	}
}

// Active returns the active glyphs in the order they became active.
func (s *Store) Active() []string { return s.active.list() }

// Vocabulary returns the learned glyphs in the order they were learned.
func (s *Store) Vocabulary() []string { return s.vocabulary.list() }

// VocabularySize returns the number of learned glyphs.
func (s *Store) VocabularySize() int { return len(s.vocabulary.order) }

// Snapshot copies both sets.
func (s *Store) Snapshot() Snapshot {
	return Snapshot{Active: s.Active(), Vocabulary: s.Vocabulary()}
}

// glyphSet is an insertion-ordered set.
type glyphSet struct {
	index map[string]bool
	order []string
}

func (g *glyphSet) add(glyph string) bool {
	if g.index == nil {
		g.index = make(map[string]bool)
	}
	if g.index[glyph] {
		return false
	}
	g.index[glyph] = true
	g.order = append(g.order, glyph)
	return true
}

func (g *glyphSet) has(glyph string) bool { return g.index[glyph] }

func (g *glyphSet) list() []string {
	return append([]string(nil), g.order...)
}
