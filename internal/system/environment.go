package system

import (
	"whispergrove/assets"
	"whispergrove/internal/sink"
)

// Environment is the set of labels derived from the current score. Labels
// are a pure function of their inputs and are never stored.
type Environment struct {
	Labels []sink.Label
	Mood   string
}

// Value returns the label called name, or "".
func (e Environment) Value(name string) string {
	for _, l := range e.Labels {
		if l.Name == name {
			return l.Value
		}
	}
	return ""
}

// ForestEnvironment derives the grove's root network, canopy, and mood.
func ForestEnvironment(score float64) Environment {
	var root, canopy, mood string
	switch {
	case score > 0.8:
		root = "Awake"
	case score > 0.5:
		root = "Stirring"
	default:
		root = "Dormant"
	}
	switch {
	case score > 0.7:
		canopy = "Luminous"
	case score > 0.3:
		canopy = "Aetheric"
	default:
		canopy = "Withered"
	}
	switch {
	case score > 0.9:
		mood = "Transcendent"
	case score > 0.7:
		mood = "Attuned"
	case score > 0.5:
		mood = "Learning"
	case score > 0.3:
		mood = "Curious"
	default:
		mood = "Disoriented"
	}
	return Environment{
		Labels: []sink.Label{
			{Name: "rootNet", Value: root},
			{Name: "canopy", Value: canopy},
			{Name: "mood", Value: mood},
		},
		Mood: mood,
	}
}

// PlainsEnvironment derives the plains' light, wind, pack density, and mood.
func PlainsEnvironment(score float64, packs int) Environment {
	var light, wind, mood string
	switch {
	case score > 0.8:
		light = "Radiant"
	case score > 0.5:
		light = "Morning"
	default:
		light = "Dawn"
	}
	switch {
	case score > 0.7:
		wind = "Howling"
	case score > 0.3:
		wind = "Gusting"
	default:
		wind = "Whispering"
	}
	switch {
	case score > 0.85:
		mood = "Collective"
	case score > 0.6:
		mood = "Attuned"
	case score > 0.3:
		mood = "Gathering"
	default:
		mood = "Awakening"
	}
	return Environment{
		Labels: []sink.Label{
			{Name: "plains", Value: "Vast"},
			{Name: "light", Value: light},
			{Name: "wind", Value: wind},
			{Name: "packDensity", Value: densityLabel(packs)},
			{Name: "mood", Value: mood},
		},
		Mood: mood,
	}
}

func densityLabel(packs int) string {
	d := min(float64(packs)/10, 1)
	switch {
	case d >= 1:
		return "Teeming"
	case d >= 0.6:
		return "Crowded"
	case d >= 0.3:
		return "Scattered"
	default:
		return "Sparse"
	}
}

// Lore returns the first lore step whose thresholds are met.
func Lore(steps []assets.LoreStep, echoes int, score float64) string {
	for _, s := range steps {
		if echoes < s.MinEchoes {
			continue
		}
		if s.MinScore > 0 && score <= s.MinScore {
			continue
		}
		return s.Text
	}
	return ""
}
