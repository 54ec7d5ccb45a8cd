package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var filesCmd = &cobra.Command{
	Use:   "files <file>",
	Short: "Print the project files reachable from a file",
	Long: `Resolves the project owning the given file and prints every file in the
transitive closure of its reference and import edges, in discovery order.
Works without an engine.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := newRegistry(true /*scanOnly*/, true /*quiet*/)
		if err != nil {
			return err
		}
		program, err := registry.AcquireProgram(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if configFileName := program.ConfigFileName(); configFileName != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "# project %s (%s)\n", program.Root(), configFileName)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "# inferred project %s\n", program.Root())
		}
		for _, fileName := range program.FileNames() {
			fmt.Fprintln(cmd.OutOrStdout(), fileName)
		}
		return nil
	},
}
