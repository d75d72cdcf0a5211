package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/safeops/internal/cli/formatter"
	"github.com/alexanderramin/safeops/internal/transfer"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var formatStr, out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the record store as a JSON or YAML bundle",
		RunE: func(cmd *cobra.Command, args []string) error {
			if formatStr == "" && out != "" {
				formatStr = string(transfer.FormatFromPath(out))
			}
			if _, err := transfer.ParseFormat(formatStr); err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("creating %s: %w", out, err)
				}
				defer f.Close()
				w = f
			}

			result, err := app.exportUseCase().Export(context.Background(), w, formatStr)
			if err != nil {
				return err
			}

			if out != "" {
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTransferResult("Exported", result))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&formatStr, "format", "", "json or yaml (default: from --out extension, else json)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write to this file instead of stdout")

	return cmd
}

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import a JSON or YAML bundle into the record store",
		Long: `Import records, equipment and checklists from a bundle file.
The whole bundle is validated first and inserted in one transaction;
every problem is reported and nothing is written if any is found.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.importUseCase().Import(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTransferResult("Imported", result))
			return nil
		},
	}
}
