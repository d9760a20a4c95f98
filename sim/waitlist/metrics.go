// Tracks the per-run series and the derived end-of-run summary.

package waitlist

// QueueSample is one weekly observation of the wait queue.
type QueueSample struct {
	Time   float64 `json:"week"`
	Length int     `json:"length"`
}

// ArrivalSample is the size of one weekly stochastic batch.
type ArrivalSample struct {
	Time  float64 `json:"week"`
	Count int     `json:"count"`
}

// RunMetrics holds everything a run records. Processes only append to it;
// it is read once the clock has stopped.
type RunMetrics struct {
	WaitingTimes       []float64        `json:"waiting_times_weeks"` // one entry per patient seen
	QueueLengthSamples []QueueSample    `json:"queue_length_samples"`
	PatientsSeen       []PatientRecord  `json:"patients_seen"` // snapshots taken when seen
	Patients           []*PatientRecord `json:"patients"`      // every patient, in creation order
	WeeklyArrivals     []ArrivalSample  `json:"weekly_arrivals"`
}

// NewRunMetrics returns empty metrics.
func NewRunMetrics() *RunMetrics {
	return &RunMetrics{
		WaitingTimes:       make([]float64, 0),
		QueueLengthSamples: make([]QueueSample, 0),
		PatientsSeen:       make([]PatientRecord, 0),
		Patients:           make([]*PatientRecord, 0),
		WeeklyArrivals:     make([]ArrivalSample, 0),
	}
}

func (m *RunMetrics) recordSeen(r PatientRecord) {
	m.WaitingTimes = append(m.WaitingTimes, r.WaitTime)
	m.PatientsSeen = append(m.PatientsSeen, r)
}

// MeanWait returns the mean wait of the patients seen, or 0 if none were.
func (m *RunMetrics) MeanWait() float64 {
	if len(m.WaitingTimes) == 0 {
		return 0
	}
	total := 0.0
	for _, w := range m.WaitingTimes {
		total += w
	}
	return total / float64(len(m.WaitingTimes))
}

// StillWaiting returns the records of patients not yet seen.
func (m *RunMetrics) StillWaiting() []*PatientRecord {
	var out []*PatientRecord
	for _, r := range m.Patients {
		if r.Status == StatusWaiting {
			out = append(out, r)
		}
	}
	return out
}

// Summary holds the derived end-of-run values.
type Summary struct {
	HorizonWeeks     float64 `json:"horizon_weeks"`
	FinalQueueLength int     `json:"final_queue_length"`
	PatientsSeen     int     `json:"patients_seen"`
	MeanWaitWeeks    float64 `json:"mean_wait_weeks"`
	StillWaiting     int     `json:"still_waiting"`
	InService        int     `json:"in_service"` // clinicians busy when the clock stopped
	BacklogPatients  int     `json:"backlog_patients"`
	ArrivedPatients  int     `json:"arrived_patients"`
	PeakClinicians   int     `json:"peak_clinicians"`
	EventsProcessed  int     `json:"events_processed"`
}
