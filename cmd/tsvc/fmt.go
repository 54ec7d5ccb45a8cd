package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tstools/tsvc/internal/ls"
	"github.com/tstools/tsvc/internal/vfs/osvfs"
)

var fmtWrite bool

var fmtCmd = &cobra.Command{
	Use:   "fmt <file>...",
	Short: "Format files with the engine's formatter",
	Long: `Applies the engine's formatting edits to each file and prints the result to
stdout. With --write, files are rewritten in place instead.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := newRegistry(false /*scanOnly*/, false /*quiet*/)
		if err != nil {
			return err
		}
		for _, fileName := range args {
			program, err := registry.AcquireProgram(cmd.Context(), fileName)
			if err != nil {
				return err
			}
			formatted, err := ls.NewLanguageService(program, nil).FormatDocument(fileName)
			if err != nil {
				return err
			}
			if fmtWrite {
				// Formatting itself never persists; writing back is this
				// command's own feature.
				if err := osvfs.FS().WriteFile(fileName, formatted); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), fileName)
			} else {
				fmt.Fprint(cmd.OutOrStdout(), formatted)
			}
		}
		return nil
	},
}

func init() {
	fmtCmd.Flags().BoolVar(&fmtWrite, "write", false, "rewrite files in place instead of printing")
}
