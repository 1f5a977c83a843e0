package system

import "slices"

// PackBuffer holds the player's most recent pack-level glyphs.
type PackBuffer struct {
	size   int
	glyphs []string
}

// NewPackBuffer returns an empty buffer holding at most size glyphs.
func NewPackBuffer(size int) *PackBuffer {
	return &PackBuffer{size: size}
}

// Push appends glyph, dropping the oldest entry when full.
func (b *PackBuffer) Push(glyph string) {
	b.glyphs = append(b.glyphs, glyph)
	if over := len(b.glyphs) - b.size; over > 0 {
		b.glyphs = b.glyphs[over:]
	}
}

// Len returns the number of buffered glyphs.
func (b *PackBuffer) Len() int { return len(b.glyphs) }

// Glyphs returns a copy of the buffer, oldest first.
func (b *PackBuffer) Glyphs() []string { return slices.Clone(b.glyphs) }

// Reset empties the buffer.
func (b *PackBuffer) Reset() { b.glyphs = nil }

// MatchPackPatterns returns every pattern that ends the buffer, in pattern
// order.
func MatchPackPatterns(buffer []string, patterns [][]string) [][]string {
	var out [][]string
	for _, p := range patterns {
		if len(p) == 0 || len(p) > len(buffer) {
			continue
		}
		if slices.Equal(buffer[len(buffer)-len(p):], p) {
			out = append(out, p)
		}
	}
	return out
}
