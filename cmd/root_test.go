package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-sim/waitlist-sim/sim/trace"
	"github.com/inference-sim/waitlist-sim/sim/waitlist"
)

// parsedRunCmd returns a fresh run command with its options after parsing args.
func parsedRunCmd(t *testing.T, args ...string) (*runOptions, *cobra.Command) {
	t.Helper()
	opts := &runOptions{}
	cmd := bindRunCmd(opts)
	require.NoError(t, cmd.ParseFlags(args))
	return opts, cmd
}

func TestRunConfig_NoFlags_DefaultPreset(t *testing.T) {
	// GIVEN no flags
	opts, cmd := parsedRunCmd(t)

	// WHEN the config is built
	cfg, err := opts.config(cmd)

	// THEN it is the default configuration
	require.NoError(t, err)
	assert.Equal(t, waitlist.DefaultConfig(), cfg)
}

func TestRunConfig_ExplicitFlags_Applied(t *testing.T) {
	opts, cmd := parsedRunCmd(t,
		"--patients", "12", "--clinicians", "3", "--patients-per-clinician-per-week", "4",
		"--duration-weeks", "10", "--initial-waitlist", "7", "--arrival-cv", "0.1", "--trace-level", "decisions")

	cfg, err := opts.config(cmd)

	require.NoError(t, err)
	assert.Equal(t, 12.0, cfg.Patients)
	assert.Equal(t, 3, cfg.Clinicians)
	assert.Equal(t, 4.0, cfg.PatientsPerClinicianPerWeek)
	assert.Equal(t, 10.0, cfg.HorizonWeeks())
	assert.Equal(t, 7, cfg.InitialWaitlist)
	assert.Equal(t, 0.1, cfg.ArrivalCV)
	assert.Equal(t, trace.TraceLevelDecisions, cfg.TraceLevel)
}

func TestRunConfig_Preset_FlagsOverride(t *testing.T) {
	// GIVEN the simple-interface preset with one explicit override
	opts, cmd := parsedRunCmd(t, "--scenario", "simple-interface", "--clinicians", "6")

	// WHEN the config is built
	cfg, err := opts.config(cmd)

	// THEN preset values survive except the overridden one
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Clinicians)
	assert.Equal(t, 80, cfg.InitialWaitlist)
	assert.Equal(t, 52.0, cfg.HorizonWeeks())
	assert.Equal(t, 0.1, cfg.ArrivalCV)
}

func TestRunConfig_UnchangedFlagDefault_DoesNotClobberYAML(t *testing.T) {
	// GIVEN a scenario file that sets clinicians
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte("clinicians: 9\ninitial_waitlist: 3\n"), 0644))

	// WHEN --clinicians is not given but --initial-waitlist is
	opts, cmd := parsedRunCmd(t, "--config", path, "--initial-waitlist", "5")
	cfg, err := opts.config(cmd)

	// THEN the file wins over the flag default, and the explicit flag wins over the file
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Clinicians)
	assert.Equal(t, 5, cfg.InitialWaitlist)
}

func TestRunConfig_UnknownScenario_Error(t *testing.T) {
	opts, cmd := parsedRunCmd(t, "--scenario", "nope")

	_, err := opts.config(cmd)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "simple-interface")
}

func TestRunConfig_InvalidValue_Error(t *testing.T) {
	opts, cmd := parsedRunCmd(t, "--clinicians", "0")

	_, err := opts.config(cmd)

	assert.ErrorIs(t, err, waitlist.ErrInvalidConfiguration)
}

func TestRunExecute_PrintsSummaryAndWritesFiles(t *testing.T) {
	// GIVEN a short deterministic run exporting JSON and a dated CSV
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "out.json")
	csvPath := filepath.Join(dir, "queue.csv")
	opts, cmd := parsedRunCmd(t,
		"--clinicians", "1", "--patients", "0", "--patients-per-clinician-per-week", "1",
		"--initial-waitlist", "10", "--duration-weeks", "10",
		"--output", jsonPath, "--queue-csv", csvPath, "--calendar-start", "2024-01-01")

	// WHEN it executes
	var out bytes.Buffer
	require.NoError(t, opts.execute(cmd, &out))

	// THEN the summary is printed
	assert.Contains(t, out.String(), "Final Waiting List: 0\n")
	assert.Contains(t, out.String(), "Patients Seen: 10\n")
	assert.Contains(t, out.String(), "Average Wait (weeks): 4.5\n")

	// THEN the JSON carries a run id and the result
	data, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.NotEmpty(t, doc["run_id"])
	assert.EqualValues(t, 42, doc["seed"])
	assert.Contains(t, doc, "result")
	assert.NotContains(t, doc, "replications")

	// THEN the CSV has a header plus one row per weekly sample, week 0 on the start date
	csvData, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(csvData)), "\n")
	require.Len(t, lines, 12)
	assert.Equal(t, "week,queue_length,arrivals,date", lines[0])
	assert.Equal(t, "0,9,0,2024-01-01", lines[1])
}

func TestRunExecute_Replications_PrintsAggregate(t *testing.T) {
	opts, cmd := parsedRunCmd(t, "--duration-weeks", "20", "--replications", "3", "--trace-level", "decisions")

	var out bytes.Buffer
	require.NoError(t, opts.execute(cmd, &out))

	assert.Contains(t, out.String(), "--- 3 Replications ---")
	assert.Contains(t, out.String(), "--- Trace ---")
}

func TestRunExecute_BadCalendarStart_Error(t *testing.T) {
	opts, cmd := parsedRunCmd(t, "--calendar-start", "01/02/2024")

	err := opts.execute(cmd, &bytes.Buffer{})

	assert.Error(t, err)
}
