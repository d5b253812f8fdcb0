package cmd

import (
	"github.com/spf13/cobra"
)

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "list wallet providers and their capabilities",
	RunE: func(cmd *cobra.Command, args []string) error {
		var resp map[string]any
		if err := getJSON(cmd.Context(), "/api/providers", &resp); err != nil {
			return err
		}

		return printJson(cmd, resp)
	},
}

func init() {
	rootCmd.AddCommand(providersCmd)
}
