package app

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "tickets",
		Short: "Track support tickets from the terminal",
		Long: "tickets runs an interactive support desk session: create, modify, close, " +
			"search and export tickets, then review the actions taken when you quit.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				os.Setenv("TICKETDESK_LOG_LEVEL", "debug")
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return sessionHandler(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	verbose bool

	sessionHandler    = handleSession
	inspectHandler    = handleInspect
	configShowHandler = handleConfigShow
	configSetHandler  = handleConfigSet
	configPathHandler = handleConfigPath
)

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(configCmd)
}

var inspectJSON bool

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Show the tickets stored in an export file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return inspectHandler(cmd.OutOrStdout(), args[0], inspectJSON)
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return configShowHandler(cmd.OutOrStdout())
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return configSetHandler(cmd.OutOrStdout(), args[0], args[1])
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show config path",
	RunE: func(cmd *cobra.Command, args []string) error {
		return configPathHandler(cmd.OutOrStdout())
	},
}

func init() {
	inspectCmd.Flags().BoolVar(&inspectJSON, "json", false, "Output JSON")

	configCmd.AddCommand(configShowCmd, configSetCmd, configPathCmd)
}
