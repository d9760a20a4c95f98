package cmd

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const envPrefix = "WAITLIST_"

// envKey maps a flag name to its .env variable, e.g. initial-waitlist to
// WAITLIST_INITIAL_WAITLIST.
func envKey(flag string) string {
	return envPrefix + strings.ToUpper(strings.ReplaceAll(flag, "-", "_"))
}

// applyEnvFile sets every flag not given on the command line from the
// matching WAITLIST_<FLAG> entry of the .env file at path. The process
// environment is left untouched.
func applyEnvFile(cmd *cobra.Command, path string) error {
	if path == "" {
		return nil
	}
	env, err := godotenv.Read(path)
	if err != nil {
		return fmt.Errorf("reading env file %s: %w", path, err)
	}

	var setErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if setErr != nil || f.Changed || f.Name == "env-file" {
			return
		}
		value, ok := env[envKey(f.Name)]
		if !ok {
			return
		}
		if err := cmd.Flags().Set(f.Name, value); err != nil {
			setErr = fmt.Errorf("%s from %s: %w", envKey(f.Name), path, err)
		}
	})
	return setErr
}
