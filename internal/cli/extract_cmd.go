package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avdanilov/tender/internal/cli/formatter"
	"github.com/avdanilov/tender/internal/intelligence"
)

func newExtractCmd(app *App) *cobra.Command {
	var specPath string
	var specDocPath string
	var pricesPath string
	var pricesDocPath string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract priced line items from an equipment specification",
		Long: "Reads specification text from --spec (or piped stdin) and/or a\n" +
			"document from --spec-doc, optionally augmented by a pricing corpus,\n" +
			"and produces the line item set for the estimate.",
		RunE: func(cmd *cobra.Command, args []string) error {
			input := intelligence.ExtractionInput{}

			switch {
			case specPath != "":
				text, err := readTextFile(specPath)
				if err != nil {
					return err
				}
				input.SpecText = text
			case stdinIsPiped():
				text, err := readTextFile("-")
				if err != nil {
					return err
				}
				input.SpecText = text
			}

			if specDocPath != "" {
				doc, err := loadAttachment(specDocPath)
				if err != nil {
					return err
				}
				input.SpecDoc = doc
			}
			if pricesPath != "" {
				text, err := readTextFile(pricesPath)
				if err != nil {
					return err
				}
				input.PriceText = text
			}
			if pricesDocPath != "" {
				doc, err := loadAttachment(pricesDocPath)
				if err != nil {
					return err
				}
				input.PriceDoc = doc
			}

			items, err := app.Session.Extract(context.Background(), input)
			if err != nil {
				return err
			}

			if asJSON {
				return printJSON(cmd.OutOrStdout(), items)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatItems(items))
			return nil
		},
	}

	cmd.Flags().StringVar(&specPath, "spec", "", "Specification text file (use - for stdin)")
	cmd.Flags().StringVar(&specDocPath, "spec-doc", "", "Specification document (pdf, xlsx, docx, image)")
	cmd.Flags().StringVar(&pricesPath, "prices", "", "Pricing corpus text file")
	cmd.Flags().StringVar(&pricesDocPath, "prices-doc", "", "Pricing corpus document")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit line items as JSON")

	return cmd
}
