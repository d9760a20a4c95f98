package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rs/xid"

	"github.com/inference-sim/waitlist-sim/sim/report"
	"github.com/inference-sim/waitlist-sim/sim/waitlist"
)

// runOutput is the JSON document written by --output.
type runOutput struct {
	RunID        string                       `json:"run_id"`
	GeneratedAt  time.Time                    `json:"generated_at"`
	Seed         int64                        `json:"seed"`
	Result       *waitlist.Result             `json:"result"`
	Waits        report.WaitStats             `json:"waits"`
	Bands        []report.Band                `json:"wait_bands"`
	Replications *waitlist.ReplicationSummary `json:"replications,omitempty"`
}

func newRunOutput(seed int64, res *waitlist.Result, bands []report.Band, reps *waitlist.ReplicationSummary) runOutput {
	return runOutput{
		RunID:        xid.New().String(),
		GeneratedAt:  time.Now().UTC(),
		Seed:         seed,
		Result:       res,
		Waits:        report.SummarizeWaits(res.Metrics.WaitingTimes),
		Bands:        bands,
		Replications: reps,
	}
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func writeQueueCSV(path string, m *waitlist.RunMetrics, cal *report.Calendar) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, closeErr)
		}
	}()
	return report.WriteQueueCSV(file, m, cal)
}
