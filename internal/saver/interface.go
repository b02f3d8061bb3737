package saver

import (
	"strings"

	"btc-signals/internal/model"
)

// ScoreSaver persists one cycle's ScoreResult to the history store under dir.
// High-level code injects the implementation; the cycle runner only depends on
// this interface.
type ScoreSaver interface {
	Save(res model.ScoreResult, dir string) error
	Extension() string
}

// NewScoreSaver creates an implementation by format (csv, json, parquet).
// Returns nil if the format is not supported. pair labels the instrument in
// the emitted rows (the downstream dashboard filters on it).
func NewScoreSaver(format, pair string) ScoreSaver {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "csv":
		return CSVSaver{Pair: pair}
	case "json":
		return JSONSaver{Pair: pair}
	case "parquet":
		return ParquetSaver{Pair: pair}
	default:
		return nil
	}
}
