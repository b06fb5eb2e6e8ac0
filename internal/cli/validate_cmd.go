package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avdanilov/tender/internal/cli/formatter"
)

func newValidateCmd(app *App) *cobra.Command {
	var itemsPath string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Review the current line items for pricing and consistency issues",
		RunE: func(cmd *cobra.Command, args []string) error {
			if itemsPath != "" {
				items, err := loadItems(itemsPath)
				if err != nil {
					return err
				}
				app.Session.ReplaceItems(items)
			}

			findings, err := app.Session.Validate(context.Background())
			if err != nil {
				return err
			}

			if asJSON {
				return printJSON(cmd.OutOrStdout(), findings)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatFindings(findings))
			return nil
		},
	}

	cmd.Flags().StringVar(&itemsPath, "items", "", "JSON file with the line items to review")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit findings as JSON")

	return cmd
}
