package system

// EchoMemory is the ordered log of accepted glyphs for a level.
type EchoMemory struct {
	glyphs []string
}

// Append records an accepted glyph.
func (m *EchoMemory) Append(glyph string) { m.glyphs = append(m.glyphs, glyph) }

// Len returns the echo count.
func (m *EchoMemory) Len() int { return len(m.glyphs) }

// Window returns a copy of the last n echoes, oldest first.
func (m *EchoMemory) Window(n int) []string {
	start := max(len(m.glyphs)-n, 0)
	return append([]string(nil), m.glyphs[start:]...)
}

// Previous returns the echo before the most recent one.
func (m *EchoMemory) Previous() (string, bool) {
	if len(m.glyphs) < 2 {
		return "", false
	}
	return m.glyphs[len(m.glyphs)-2], true
}

// Reset forgets every echo.
func (m *EchoMemory) Reset() { m.glyphs = nil }
