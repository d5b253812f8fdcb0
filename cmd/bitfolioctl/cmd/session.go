package cmd

import (
	"github.com/spf13/cobra"
)

var connectOpt struct {
	Provider string
}

var connectCmd = &cobra.Command{
	Use:   "connect",
	Short: "connect to a wallet provider",
	RunE: func(cmd *cobra.Command, args []string) error {
		body := map[string]any{"provider": connectOpt.Provider}

		var resp map[string]any
		if err := postJSON(cmd.Context(), "/api/session/connect", body, &resp); err != nil {
			return err
		}

		return printJson(cmd, resp)
	},
}

var disconnectCmd = &cobra.Command{
	Use:   "disconnect",
	Short: "disconnect the current wallet",
	RunE: func(cmd *cobra.Command, args []string) error {
		var resp map[string]any
		if err := postJSON(cmd.Context(), "/api/session/disconnect", nil, &resp); err != nil {
			return err
		}

		return printJson(cmd, resp)
	},
}

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "show the current session state",
	RunE: func(cmd *cobra.Command, args []string) error {
		var resp map[string]any
		if err := getJSON(cmd.Context(), "/api/session", &resp); err != nil {
			return err
		}

		return printJson(cmd, resp)
	},
}

func init() {
	rootCmd.AddCommand(connectCmd, disconnectCmd, sessionCmd)

	connectCmd.Flags().StringVar(&connectOpt.Provider, "provider", "", "provider id (xverse, leather, unisat)")
	connectCmd.MarkFlagRequired("provider")
}
