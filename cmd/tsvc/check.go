package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tstools/tsvc/internal/ls"
)

var checkLocalOnly bool

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Print diagnostics for files",
	Long: `Retrieves diagnostics for each file from the engine. Syntax errors suppress
semantic checking of the same file. Exits non-zero when any error-category
diagnostic is reported.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := newRegistry(false /*scanOnly*/, false /*quiet*/)
		if err != nil {
			return err
		}
		printer := newDiagnosticPrinter(cmd.OutOrStdout())
		errorCount := 0
		for _, fileName := range args {
			program, err := registry.AcquireProgram(cmd.Context(), fileName)
			if err != nil {
				return err
			}
			service := ls.NewLanguageService(program, nil)
			var records []*ls.ErrorRecord
			if checkLocalOnly {
				records = service.GetErrorsForFileFiltered(cmd.Context(), fileName)
			} else {
				records = service.GetErrorsForFile(cmd.Context(), fileName)
			}
			for _, record := range records {
				printer.print(record)
			}
			errorCount += len(records)
		}
		if errorCount > 0 {
			return fmt.Errorf("found %d problems", errorCount)
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().BoolVar(&checkLocalOnly, "local-only", false, "exclude diagnostics attributed to referenced or imported files")
}
