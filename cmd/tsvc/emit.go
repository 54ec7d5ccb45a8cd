package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var emitCmd = &cobra.Command{
	Use:   "emit <file>...",
	Short: "Compile files and write their outputs",
	Long: `Asks the engine for each file's emit output and writes the artifacts to the
paths the engine designates. Failed files are reported but do not stop the
remaining ones; the exit status reflects whether every emit succeeded.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := newRegistry(false /*scanOnly*/, false /*quiet*/)
		if err != nil {
			return err
		}
		failed := 0
		for _, fileName := range args {
			program, err := registry.AcquireProgram(cmd.Context(), fileName)
			if err != nil {
				return err
			}
			result, err := program.EmitFile(cmd.Context(), fileName)
			if err != nil {
				return err
			}
			if !result.Success {
				failed++
				fmt.Fprintf(cmd.ErrOrStderr(), "emit skipped for %s\n", fileName)
				continue
			}
			for _, outputFile := range result.OutputFiles {
				fmt.Fprintln(cmd.OutOrStdout(), outputFile)
			}
		}
		if failed > 0 {
			return fmt.Errorf("emit failed for %d files", failed)
		}
		return nil
	},
}
