package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/san-kum/freefall/internal/dynamo"
)

type SeriesData struct {
	Model      string             `json:"model"`
	Terminated string             `json:"terminated"`
	Steps      int                `json:"steps"`
	Samples    int                `json:"samples"`
	Time       []float64          `json:"time"`
	Position   []float64          `json:"position"`
	Velocity   []float64          `json:"velocity"`
	NetForce   []float64          `json:"net_force"`
	Metrics    map[string]float64 `json:"metrics"`
}

func NewSeriesData(res *dynamo.Result) SeriesData {
	return SeriesData{
		Model:      res.Model,
		Terminated: string(res.Terminated),
		Steps:      res.Steps,
		Samples:    res.Series.Len(),
		Time:       res.Series.Time,
		Position:   res.Series.Position,
		Velocity:   res.Series.Velocity,
		NetForce:   res.Series.NetForce,
		Metrics:    res.Metrics,
	}
}

func WriteJSON(w io.Writer, results []*dynamo.Result) error {
	data := make([]SeriesData, len(results))
	for i, res := range results {
		data[i] = NewSeriesData(res)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// WriteCSV writes one row per sample, prefixed by the model name.
func WriteCSV(w io.Writer, results []*dynamo.Result) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"model", "time", "position", "velocity", "net_force"}); err != nil {
		return err
	}

	for _, res := range results {
		for i := 0; i < res.Series.Len(); i++ {
			s := res.Series.At(i)
			row := []string{
				res.Model,
				strconv.FormatFloat(s.Time, 'f', 3, 64),
				strconv.FormatFloat(s.Position, 'f', 6, 64),
				strconv.FormatFloat(s.Velocity, 'f', 6, 64),
				strconv.FormatFloat(s.NetForce, 'f', 6, 64),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

// Write dispatches on format: "json", "csv" or "none".
func Write(w io.Writer, results []*dynamo.Result, format string) error {
	switch format {
	case "json":
		return WriteJSON(w, results)
	case "csv":
		return WriteCSV(w, results)
	case "none", "":
		return nil
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
