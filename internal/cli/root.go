package cli

import (
	"github.com/spf13/cobra"

	"github.com/avdanilov/tender/internal/service"
)

// App holds the estimate session used by CLI commands.
type App struct {
	Session *service.EstimateSession
}

// NewRootCmd creates the top-level "tender" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "tender",
		Short: "Estimate builder for equipment specifications",
		Long: "tender extracts priced line items from equipment specifications,\n" +
			"reviews them, computes estimate totals and synthesizes a work schedule.",
		SilenceUsage: true,
	}

	root.AddCommand(
		newExtractCmd(app),
		newValidateCmd(app),
		newTotalsCmd(app),
		newScheduleCmd(app),
	)

	return root
}
