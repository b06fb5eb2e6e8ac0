package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/avdanilov/tender/internal/cli/formatter"
	"github.com/avdanilov/tender/internal/domain"
)

func newScheduleCmd(app *App) *cobra.Command {
	var startStr string
	var daysStr string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Synthesize the phase schedule for the project duration",
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now().Truncate(24 * time.Hour)
			if startStr != "" {
				parsed, err := time.Parse("2006-01-02", startStr)
				if err != nil {
					return fmt.Errorf("parse --start: %w", err)
				}
				start = parsed
			}

			app.Session.SetSchedule(domain.ScheduleSettings{
				StartDate: start,
				TotalDays: domain.ParseTotalDays(daysStr),
			})

			phases := app.Session.Schedule()

			if asJSON {
				return printJSON(cmd.OutOrStdout(), phases)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSchedule(phases))
			return nil
		},
	}

	cmd.Flags().StringVar(&startStr, "start", "", "Start date as YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&daysStr, "days", "30", "Total project duration in days")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the schedule as JSON")

	return cmd
}
