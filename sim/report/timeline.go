package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/inference-sim/waitlist-sim/sim/waitlist"
)

// WriteQueueCSV writes one row per queue sample with a header row. When cal
// is non-nil a date column is added.
func WriteQueueCSV(w io.Writer, m *waitlist.RunMetrics, cal *Calendar) error {
	writer := csv.NewWriter(w)

	header := []string{"week", "queue_length", "arrivals"}
	if cal != nil {
		header = append(header, "date")
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("writing queue csv header: %w", err)
	}

	arrivals := make(map[float64]int, len(m.WeeklyArrivals))
	for _, a := range m.WeeklyArrivals {
		arrivals[a.Time] = a.Count
	}
	for _, s := range m.QueueLengthSamples {
		row := []string{
			strconv.FormatFloat(s.Time, 'f', -1, 64),
			strconv.Itoa(s.Length),
			strconv.Itoa(arrivals[s.Time]),
		}
		if cal != nil {
			row = append(row, cal.Date(s.Time).Format(time.DateOnly))
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("writing queue csv row for week %g: %w", s.Time, err)
		}
	}
	writer.Flush()
	return writer.Error()
}
