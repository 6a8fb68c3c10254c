// Command validenv-example loads a service configuration and a set of
// application settings from the environment and prints what was resolved.
//
//	NAME=demo validenv-example
//	APP_NAME=demo validenv-example --prefix APP_ --print-config
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	versionFlag     bool
	printConfigFlag bool
	prefixFlag      string
)

var rootCmd = &cobra.Command{
	Use:   "validenv-example",
	Short: "Load and print typed environment settings",
	Long: `Load the service configuration and the example application settings
from environment variables. The command exits with status 1 on the first
variable that cannot be resolved.

Service variables (with --prefix P):
  PNAME (required), PENVIRONMENT, PVERSION, PDEBUG,
  PLOG_LEVEL, PLOG_FORMAT, PLOG_OUTPUT, PLOG_NO_COLOR

Application variables:
  EXAMPLE_API_KEY, COOKIE_SECRET, BYPASS_EMAILS, SERVER_PORT,
  FROM_EMAIL, BASE_URI, REQUEST_TIMEOUT, MAX_UPLOAD_SIZE,
  OTEL_EXPORTER_OTLP_ENDPOINT`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runCommand,
}

func init() {
	rootCmd.Flags().BoolVar(&versionFlag, "version", false, "Print version information and exit")
	rootCmd.Flags().BoolVar(&printConfigFlag, "print-config", false, "Print the resolved service configuration as YAML")
	rootCmd.Flags().StringVar(&prefixFlag, "prefix", "", "Prefix for service variables (e.g. APP_)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}
