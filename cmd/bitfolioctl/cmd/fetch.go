package cmd

import (
	"strconv"

	"github.com/spf13/cobra"
)

var balanceCmd = &cobra.Command{
	Use:   "balance <class>",
	Short: "fetch the balance for an asset class",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var resp map[string]any
		if err := getJSON(cmd.Context(), "/api/balances/"+args[0], &resp); err != nil {
			return err
		}

		return printJson(cmd, resp)
	},
}

var assetsCmd = &cobra.Command{
	Use:   "assets <class>",
	Short: "fetch assets for an asset class",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var resp map[string]any
		if err := getJSON(cmd.Context(), "/api/assets/"+args[0], &resp); err != nil {
			return err
		}

		return printJson(cmd, resp)
	},
}

var historyCmd = &cobra.Command{
	Use:   "history <class>",
	Short: "fetch transaction history for an asset class",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var resp map[string]any
		if err := getJSON(cmd.Context(), "/api/history/"+args[0], &resp); err != nil {
			return err
		}

		return printJson(cmd, resp)
	},
}

var activityOpt struct {
	Limit int
}

var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "list recorded history activity",
	RunE: func(cmd *cobra.Command, args []string) error {
		var resp map[string]any
		if err := getJSON(cmd.Context(), "/api/activity?limit="+strconv.Itoa(activityOpt.Limit), &resp); err != nil {
			return err
		}

		return printJson(cmd, resp)
	},
}

func init() {
	rootCmd.AddCommand(balanceCmd, assetsCmd, historyCmd, activityCmd)

	activityCmd.Flags().IntVar(&activityOpt.Limit, "limit", 50, "max records")
}
