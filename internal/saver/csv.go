package saver

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"

	"btc-signals/internal/model"
)

// HistoryFileCSV is the append-only row store the dashboard tails.
const HistoryFileCSV = "signals.csv"

// CSVSaver appends one row per cycle to signals.csv, writing the header when
// the file is first created.
type CSVSaver struct {
	Pair string
}

func (CSVSaver) Extension() string { return "csv" }

func (s CSVSaver) Save(res model.ScoreResult, dir string) error {
	path := filepath.Join(dir, HistoryFileCSV)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	// Header goes in only when the opened file is empty; deciding from the
	// handle avoids a stat/open race and misreading stat errors as "exists".
	info, err := f.Stat()
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := w.Write(columns); err != nil {
			return err
		}
	}
	row := newScoreRow(res, s.Pair)
	if err := w.Write([]string{
		row.Timestamp,
		row.Pair,
		row.Action,
		strconv.FormatInt(row.Leverage, 10),
		fixed6(row.Confidence),
		row.Note,
		fixed6(row.ScoreETF),
		fixed6(row.ScoreStables),
		fixed6(row.ScoreStress),
		fixed6(row.ScoreWeighted),
	}); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

func fixed6(f float64) string { return strconv.FormatFloat(f, 'f', 6, 64) }
