package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newScenariosCmd() *cobra.Command {
	var asYAML bool
	cmd := &cobra.Command{
		Use:   "scenarios",
		Short: "List built-in scenario presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, p := range presets {
				fmt.Fprintf(out, "%-18s %s\n", p.Name, p.Description)
				if !asYAML {
					continue
				}
				data, err := yaml.Marshal(p.Config)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s\n", data)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "Print each preset as a scenario file")
	return cmd
}
