package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kishorwakchaure727-maker/corpnorm-ai/internal/export"
)

var (
	templateOut      string
	templateCombined bool
	templateSample   bool
)

var templateCmd = &cobra.Command{
	Use:   "template [input|output]",
	Short: "Generate spreadsheet templates",
	Long:  "Generates the upload template (canonical input columns) or the output enrichment template (styled headers plus Google search helper formulas).",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var err error
		switch args[0] {
		case "input":
			err = export.WriteInputTemplate(templateOut)
		case "output":
			err = export.WriteOutputTemplate(templateOut, templateCombined, templateSample)
		default:
			return eris.Errorf("unknown template kind %q (use input or output)", args[0])
		}
		if err != nil {
			return err
		}

		zap.L().Info("template written", zap.String("path", templateOut))
		return nil
	},
}

func init() {
	templateCmd.Flags().StringVar(&templateOut, "out", "CorpNorm_Template.xlsx", "output path")
	templateCmd.Flags().BoolVar(&templateCombined, "combined", false, "add the combined All Searches column (output template only)")
	templateCmd.Flags().BoolVar(&templateSample, "sample", false, "include a sample row (output template only)")
	rootCmd.AddCommand(templateCmd)
}
