package game

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// RunLog records statistics gathered during one session.
type RunLog struct {
	SessionID       string         `json:"session_id"`
	Player          string         `json:"player,omitempty"`
	Started         time.Time      `json:"started"`
	Ended           time.Time      `json:"ended"`
	LevelsCompleted []string       `json:"levels_completed"`
	FinalLevel      string         `json:"final_level"`
	FinalHarmonics  float64        `json:"final_harmonics"`
	Echoes          int            `json:"echoes"`
	Rejected        int            `json:"rejected"`
	Packs           int            `json:"packs,omitempty"`
	Glyphs          map[string]int `json:"glyphs"` // glyph → accepted count
	Vocabulary      []string       `json:"vocabulary"`
	Active          []string       `json:"active"`
}

// SaveRunLog appends the session as a single JSON line to runs.jsonl in dir.
func SaveRunLog(dir string, log RunLog) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create run log dir: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(dir, "runs.jsonl"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open run log: %w", err)
	}
	defer f.Close()

	data, err := json.Marshal(log)
	if err != nil {
		return fmt.Errorf("encode run log: %w", err)
	}
	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write run log: %w", err)
	}
	return nil
}
