package saver

import (
	"encoding/json"
	"os"
	"path/filepath"

	"btc-signals/internal/model"
)

// SnapshotFile is the latest-scores document, fully overwritten each cycle.
const SnapshotFile = "latest.json"

type snapshot struct {
	UTC    string             `json:"utc"`
	RunID  string             `json:"run_id"`
	Scores map[string]float64 `json:"scores"`
}

// WriteSnapshot overwrites the latest-snapshot document atomically
// (temp file + rename), so a crash mid-write never leaves a torn snapshot.
func WriteSnapshot(path string, res model.ScoreResult) error {
	snap := snapshot{
		UTC:   res.Timestamp.UTC().Format(timeLayout),
		RunID: res.RunID,
		Scores: map[string]float64{
			"Score_ETF":       round6(res.ScoreETF),
			"Score_Stables":   round6(res.ScoreStables),
			"Score_Stress":    round6(res.ScoreStress),
			"Score_Gewichtet": round6(res.ScoreWeighted),
		},
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".latest-*.json")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
