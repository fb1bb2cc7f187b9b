package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"resumeapi/internal/resumejson"
)

var (
	exportTemplate string
	exportOut      string
	renderTemplate string
	renderOut      string
	renderPDF      bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Download the resume as a JSON export document",
	RunE: func(cmd *cobra.Command, _ []string) error {
		doc, err := newClient().Export(cmd.Context(), exportTemplate)
		if err != nil {
			return err
		}
		b, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return err
		}
		return writeOutput(cmd.OutOrStdout(), exportOut, append(b, '\n'))
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file|->",
	Short: "Replace the stored resume with a JSON export document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := readInput(cmd.InOrStdin(), args[0])
		if err != nil {
			return err
		}
		if err := resumejson.Validate(raw); err != nil {
			return err
		}
		r, err := newClient().Import(cmd.Context(), raw)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "imported %d experiences, %d education entries, %d skills\n",
			len(r.Experiences), len(r.Education), len(r.Skills))
		return nil
	},
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the resume as HTML, or as a PDF download link with --pdf",
	RunE: func(cmd *cobra.Command, _ []string) error {
		c := newClient()
		if renderPDF {
			out, err := c.ExportPDF(cmd.Context(), renderTemplate)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		}
		html, err := c.Render(cmd.Context(), renderTemplate)
		if err != nil {
			return err
		}
		return writeOutput(cmd.OutOrStdout(), renderOut, html)
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportTemplate, "template", "", "template recorded in the document")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default stdout)")

	renderCmd.Flags().StringVar(&renderTemplate, "template", "modern", "template id")
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "output file (default stdout)")
	renderCmd.Flags().BoolVar(&renderPDF, "pdf", false, "export a PDF to object storage and print its link")

	rootCmd.AddCommand(exportCmd, importCmd, renderCmd)
}
