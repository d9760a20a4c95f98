package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/waitlist-sim/sim"
	"github.com/inference-sim/waitlist-sim/sim/report"
	"github.com/inference-sim/waitlist-sim/sim/trace"
	"github.com/inference-sim/waitlist-sim/sim/waitlist"
)

// runOptions holds the values bound to the run command's flags.
type runOptions struct {
	scenario   string // Built-in preset the config starts from
	configPath string // YAML scenario file layered over the preset
	envFile    string // .env file supplying WAITLIST_<FLAG> defaults

	patients        float64 // Mean new referrals per week
	clinicians      int     // Number of clinicians
	rate            float64 // Patients each clinician sees per week
	durationYears   int     // Horizon in years
	durationWeeks   float64 // Horizon in weeks, overrides years when > 0
	initialWaitlist int     // Patients already waiting at week 0
	arrivalCV       float64 // Coefficient of variation of weekly arrivals

	seed         int64 // Seed for arrival draws
	replications int   // Independent runs under the same seed
	logLevel     string
	traceLevel   string

	outputPath     string // JSON result file
	queueCSVPath   string // Weekly queue timeline CSV
	calendarStart  string // First calendar date, YYYY-MM-DD
	weekStartCron  string // Cron expression opening each simulated week
	bandThresholds []float64
	includeBacklog bool
}

func newRunCmd() *cobra.Command {
	return bindRunCmd(&runOptions{})
}

// bindRunCmd builds the run command with its flags bound to opts.
func bindRunCmd(opts *runOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the waitlist simulation",
		Run: func(cmd *cobra.Command, args []string) {
			if err := applyEnvFile(cmd, opts.envFile); err != nil {
				logrus.Fatalf("%v", err)
			}
			level, err := logrus.ParseLevel(opts.logLevel)
			if err != nil {
				logrus.Fatalf("Invalid log level: %s", opts.logLevel)
			}
			logrus.SetLevel(level)

			if err := opts.execute(cmd, os.Stdout); err != nil {
				logrus.Fatalf("%v", err)
			}
		},
	}
	opts.register(cmd)
	return cmd
}

func (o *runOptions) register(cmd *cobra.Command) {
	def := waitlist.DefaultConfig()
	f := cmd.Flags()

	f.StringVar(&o.scenario, "scenario", "default", "Built-in scenario preset (see `waitlist-sim scenarios`)")
	f.StringVar(&o.configPath, "config", "", "YAML scenario file; explicit flags override its values")
	f.StringVar(&o.envFile, "env-file", "", "Path to a .env file with WAITLIST_<FLAG> defaults")

	// Clinic model
	f.Float64Var(&o.patients, "patients", def.Patients, "Average number of new patients per week")
	f.IntVar(&o.clinicians, "clinicians", def.Clinicians, "Number of clinicians")
	f.Float64Var(&o.rate, "patients-per-clinician-per-week", def.PatientsPerClinicianPerWeek, "Patients each clinician sees per week")
	f.IntVar(&o.durationYears, "duration-years", def.DurationYears, "Simulation horizon in years")
	f.Float64Var(&o.durationWeeks, "duration-weeks", def.DurationWeeks, "Simulation horizon in weeks (overrides --duration-years when > 0)")
	f.IntVar(&o.initialWaitlist, "initial-waitlist", def.InitialWaitlist, "Patients already waiting at week 0")
	f.Float64Var(&o.arrivalCV, "arrival-cv", def.ArrivalCV, "Coefficient of variation of weekly arrivals")

	// Run control
	f.Int64Var(&o.seed, "seed", 42, "Seed for weekly arrival draws")
	f.IntVar(&o.replications, "replications", 1, "Number of independent replications")
	f.StringVar(&o.logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
	f.StringVar(&o.traceLevel, "trace-level", string(trace.TraceLevelNone), "Decision trace level (none, decisions)")

	// Output
	f.StringVar(&o.outputPath, "output", "", "Write the full result as JSON to this file")
	f.StringVar(&o.queueCSVPath, "queue-csv", "", "Write the weekly queue timeline as CSV to this file")
	f.StringVar(&o.calendarStart, "calendar-start", "", "Calendar date of week 0 (YYYY-MM-DD); adds dates to the CSV")
	f.StringVar(&o.weekStartCron, "week-start-cron", report.DefaultWeekStart, "Cron expression that opens each simulated week")
	f.Float64SliceVar(&o.bandThresholds, "band-thresholds", report.DefaultThresholds, "Wait band thresholds in weeks")
	f.BoolVar(&o.includeBacklog, "include-backlog", true, "Count initial waitlist patients in wait bands")
}

// config builds the run configuration. Precedence, lowest first: preset,
// YAML file, then every flag set on the command line or by the env file.
func (o *runOptions) config(cmd *cobra.Command) (waitlist.Config, error) {
	preset, ok := LookupPreset(o.scenario)
	if !ok {
		return waitlist.Config{}, fmt.Errorf("unknown scenario %q; valid: %v", o.scenario, PresetNames())
	}
	cfg := preset.Config
	if o.configPath != "" {
		var err error
		if cfg, err = LoadScenarioFile(o.configPath, cfg); err != nil {
			return waitlist.Config{}, err
		}
	}

	f := cmd.Flags()
	if f.Changed("patients") {
		cfg.Patients = o.patients
	}
	if f.Changed("clinicians") {
		cfg.Clinicians = o.clinicians
	}
	if f.Changed("patients-per-clinician-per-week") {
		cfg.PatientsPerClinicianPerWeek = o.rate
	}
	if f.Changed("duration-years") {
		cfg.DurationYears = o.durationYears
	}
	if f.Changed("duration-weeks") {
		cfg.DurationWeeks = o.durationWeeks
	}
	if f.Changed("initial-waitlist") {
		cfg.InitialWaitlist = o.initialWaitlist
	}
	if f.Changed("arrival-cv") {
		cfg.ArrivalCV = o.arrivalCV
	}
	if f.Changed("trace-level") {
		cfg.TraceLevel = trace.TraceLevel(o.traceLevel)
	}
	return cfg, cfg.Validate()
}

func (o *runOptions) calendar() (*report.Calendar, error) {
	if o.calendarStart == "" {
		return nil, nil
	}
	start, err := time.Parse(time.DateOnly, o.calendarStart)
	if err != nil {
		return nil, fmt.Errorf("invalid --calendar-start %q: %w", o.calendarStart, err)
	}
	return report.NewCalendar(start, o.weekStartCron)
}

func (o *runOptions) execute(cmd *cobra.Command, out io.Writer) error {
	cfg, err := o.config(cmd)
	if err != nil {
		return err
	}
	cal, err := o.calendar()
	if err != nil {
		return err
	}

	startTime := time.Now()
	results, err := waitlist.RunReplications(cfg, sim.NewSimulationKey(o.seed), o.replications)
	if err != nil {
		return err
	}
	res := results[0]

	bands, err := report.Bands(res.Metrics, res.Summary.HorizonWeeks, o.bandThresholds, o.includeBacklog)
	if err != nil {
		return err
	}
	report.Print(out, res, bands)

	var reps *waitlist.ReplicationSummary
	if len(results) > 1 {
		s := waitlist.SummarizeReplications(results)
		reps = &s
		fmt.Fprintf(out, "\n--- %d Replications ---\n", s.Replications)
		fmt.Fprintf(out, "Final Waiting List (mean/min/max): %.1f / %d / %d\n", s.MeanFinalQueueLength, s.MinFinalQueueLength, s.MaxFinalQueueLength)
		fmt.Fprintf(out, "Average Wait (weeks, mean of runs): %.1f\n", s.MeanOfMeanWaitWeeks)
	}
	if res.Trace != nil {
		ts := trace.Summarize(res.Trace)
		fmt.Fprintf(out, "\n--- Trace ---\nGrants: %d (%d immediate, %d queued), Releases: %d, Max Queue: %d, Peak Clinicians: %d\n",
			ts.TotalGrants, ts.ImmediateGrants, ts.QueuedGrants, ts.TotalReleases, ts.MaxQueueLen, ts.PeakInUse)
	}

	if o.queueCSVPath != "" {
		if err := writeQueueCSV(o.queueCSVPath, res.Metrics, cal); err != nil {
			return err
		}
		logrus.Infof("Queue timeline written to %s", o.queueCSVPath)
	}
	if o.outputPath != "" {
		output := newRunOutput(o.seed, res, bands, reps)
		if err := writeJSON(o.outputPath, output); err != nil {
			return err
		}
		logrus.Infof("Run %s written to %s", output.RunID, o.outputPath)
	}

	logrus.Infof("Simulation complete in %s", time.Since(startTime))
	return nil
}
