package main

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/kishorwakchaure727-maker/corpnorm-ai/internal/model"
)

var (
	runName    string
	runStreet  string
	runCity    string
	runCountry string
	runMode    string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Resolve a single company name",
	RunE: func(cmd *cobra.Command, args []string) error {
		if runName == "" {
			return eris.New("--name is required")
		}

		env, err := buildResolvers(cfg)
		if err != nil {
			return err
		}
		res, err := env.pickResolver(runMode)
		if err != nil {
			return err
		}

		out := res.Resolve(cmd.Context(), model.RawRecord{
			RawName: runName,
			Address: model.Address{
				Street:  runStreet,
				City:    runCity,
				Country: runCountry,
			},
		})

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return eris.Wrap(enc.Encode(out), "encode result")
	},
}

func init() {
	runCmd.Flags().StringVar(&runName, "name", "", "raw company name (required)")
	runCmd.Flags().StringVar(&runStreet, "street", "", "street address")
	runCmd.Flags().StringVar(&runCity, "city", "", "city")
	runCmd.Flags().StringVar(&runCountry, "country", "", "country")
	runCmd.Flags().StringVar(&runMode, "mode", "free", "resolution mode: free or premium")
	rootCmd.AddCommand(runCmd)
}
