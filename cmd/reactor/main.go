package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ╦═╗┌─┐┌─┐┌─┐┌┬┐┌─┐┬─┐
  ╠╦╝├┤ ├─┤│   │ │ │├┬┘
  ╩╚═└─┘┴ ┴└─┘ ┴ └─┘┴└─
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "reactor",
		Short: "Server-driven UI runtime for Go",
		Long: `Reactor renders component trees on the server and keeps them
live in the browser through a thin WebSocket client.

  • Components are plain Go functions with positional state hooks
  • Pages are served as HTML first, then patched in place
  • Updates ship as minimal DOM mutation ops`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		serveCmd(),
		deployCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		os.Exit(1)
	}
}

// printBanner prints the ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}
