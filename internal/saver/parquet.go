package saver

import (
	"path/filepath"

	"github.com/parquet-go/parquet-go"

	"btc-signals/internal/model"
)

// ParquetSaver writes one single-row Parquet file per run.
type ParquetSaver struct {
	Pair string
}

func (ParquetSaver) Extension() string { return "parquet" }

func (s ParquetSaver) Save(res model.ScoreResult, dir string) error {
	path := filepath.Join(dir, runFileName(res.Timestamp, "parquet"))
	return parquet.WriteFile(path, []scoreRow{newScoreRow(res, s.Pair)})
}
