package saver

import (
	"encoding/json"
	"os"
	"path/filepath"

	"btc-signals/internal/model"
)

// JSONSaver writes one indented JSON document per run.
type JSONSaver struct {
	Pair string
}

func (JSONSaver) Extension() string { return "json" }

func (s JSONSaver) Save(res model.ScoreResult, dir string) error {
	path := filepath.Join(dir, runFileName(res.Timestamp, "json"))
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(newScoreRow(res, s.Pair))
}
