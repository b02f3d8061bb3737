package saver

import (
	"math"
	"time"

	"btc-signals/internal/model"
)

// Column contract consumed by the downstream dashboard. Order and names must
// not change.
var columns = []string{
	"timestamp", "pair", "action", "leverage", "confidence", "note",
	"Score_ETF", "Score_Stables", "Score_Stress", "Score_Gewichtet",
}

const (
	actionHold = "hold"
	noteSource = "coingecko-auto"
	timeLayout = "2006-01-02T15:04:05Z"
)

// scoreRow is one persisted history record, shared by the json and parquet
// savers (the csv saver renders the same fields positionally).
type scoreRow struct {
	Timestamp     string  `json:"timestamp" parquet:"timestamp"`
	Pair          string  `json:"pair" parquet:"pair"`
	Action        string  `json:"action" parquet:"action"`
	Leverage      int64   `json:"leverage" parquet:"leverage"`
	Confidence    float64 `json:"confidence" parquet:"confidence"`
	Note          string  `json:"note" parquet:"note"`
	ScoreETF      float64 `json:"Score_ETF" parquet:"Score_ETF"`
	ScoreStables  float64 `json:"Score_Stables" parquet:"Score_Stables"`
	ScoreStress   float64 `json:"Score_Stress" parquet:"Score_Stress"`
	ScoreWeighted float64 `json:"Score_Gewichtet" parquet:"Score_Gewichtet"`
}

func newScoreRow(res model.ScoreResult, pair string) scoreRow {
	return scoreRow{
		Timestamp:     res.Timestamp.UTC().Format(timeLayout),
		Pair:          pair,
		Action:        actionHold,
		Leverage:      0,
		Confidence:    round6(res.ScoreWeighted),
		Note:          noteSource,
		ScoreETF:      round6(res.ScoreETF),
		ScoreStables:  round6(res.ScoreStables),
		ScoreStress:   round6(res.ScoreStress),
		ScoreWeighted: round6(res.ScoreWeighted),
	}
}

// runFileName names per-run history files: signals_20060102T150405Z.{ext}.
func runFileName(ts time.Time, ext string) string {
	return "signals_" + ts.UTC().Format("20060102T150405Z") + "." + ext
}

// round6 rounds to the 6-decimal fixed precision of the output contract.
func round6(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}
