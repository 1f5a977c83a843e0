package system

// Progress is the snapshot a gate is checked against.
type Progress struct {
	EchoCount int
	Score     float64
	PackCount int
}

// Gate is a level's win condition. The score bound is strict.
type Gate struct {
	MinEchoes int
	MinScore  float64
	MinPacks  int
}

var (
	ForestGate = Gate{MinEchoes: 20, MinScore: 0.9}
	PackGate   = Gate{MinEchoes: 40, MinScore: 0.85, MinPacks: 6}
)

// Check reports whether p satisfies the gate.
func (g Gate) Check(p Progress) bool {
	return p.EchoCount >= g.MinEchoes && p.Score > g.MinScore && p.PackCount >= g.MinPacks
}
