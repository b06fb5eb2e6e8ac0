package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avdanilov/tender/internal/cli/formatter"
	"github.com/avdanilov/tender/internal/domain"
)

func newTotalsCmd(app *App) *cobra.Command {
	var itemsPath string
	var pnr, contingency, vat float64
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "totals",
		Short: "Compute the estimate financial breakdown",
		Long: "Applies the coefficient cascade over the current line items and\n" +
			"prints every intermediate amount plus the base and premium totals.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if itemsPath != "" {
				items, err := loadItems(itemsPath)
				if err != nil {
					return err
				}
				app.Session.ReplaceItems(items)
			}

			app.Session.SetCoefficients(domain.Coefficients{
				PNRPct:         pnr,
				ContingencyPct: contingency,
				VATPct:         vat,
			})

			breakdown := app.Session.Totals()

			if asJSON {
				return printJSON(cmd.OutOrStdout(), breakdown)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTotals(breakdown, app.Session.Coefficients()))
			return nil
		},
	}

	cmd.Flags().StringVar(&itemsPath, "items", "", "JSON file with the line items to total")
	cmd.Flags().Float64Var(&pnr, "pnr", 0, "Installation-and-commissioning surcharge percent")
	cmd.Flags().Float64Var(&contingency, "contingency", 0, "Contingency percent")
	cmd.Flags().Float64Var(&vat, "vat", 0, "VAT percent")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the breakdown as JSON")

	return cmd
}
