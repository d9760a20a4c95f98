package cmd

import (
	"bytes"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/inference-sim/waitlist-sim/sim/waitlist"
)

// Preset is a named built-in scenario.
type Preset struct {
	Name        string
	Description string
	Config      waitlist.Config
}

var presets = []Preset{
	{
		Name:        "default",
		Description: "Command-line defaults: 4 clinicians, 25 referrals/week, 3 years",
		Config:      waitlist.DefaultConfig(),
	},
	{
		Name:        "simple-interface",
		Description: "Web form example: 5 clinicians seeing 2/week, 10 referrals/week, 80 already waiting, 52 weeks",
		Config: waitlist.Config{
			Patients:                    10,
			Clinicians:                  5,
			PatientsPerClinicianPerWeek: 2,
			DurationWeeks:               waitlist.WeeksPerYear,
			InitialWaitlist:             80,
			ArrivalCV:                   0.1,
		},
	},
}

// LookupPreset returns the preset with the given name.
func LookupPreset(name string) (Preset, bool) {
	i := slices.IndexFunc(presets, func(p Preset) bool { return p.Name == name })
	if i < 0 {
		return Preset{}, false
	}
	return presets[i], true
}

// PresetNames returns the preset names in listing order.
func PresetNames() []string {
	names := make([]string, len(presets))
	for i, p := range presets {
		names[i] = p.Name
	}
	return names
}

// LoadScenarioFile decodes a YAML scenario over base. Keys absent from the
// file keep base's values; unknown keys are an error.
func LoadScenarioFile(path string, base waitlist.Config) (waitlist.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return waitlist.Config{}, fmt.Errorf("reading scenario file: %w", err)
	}
	return parseScenario(data, base)
}

func parseScenario(data []byte, base waitlist.Config) (waitlist.Config, error) {
	cfg := base
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return waitlist.Config{}, fmt.Errorf("parsing scenario YAML: %w", err)
	}
	return cfg, nil
}
