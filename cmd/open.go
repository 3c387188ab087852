package cmd

import (
	"log"
	"strings"

	"github.com/spf13/cobra"
)

var openCmd = &cobra.Command{
	Use:   "open [route]",
	Short: "Start the app on a route",
	Long: `Start the app on the given route: /chat, /home or /silver.
Any other route shows the not found page.`,
	Example: "  niveshak open /home\n  niveshak open /nowhere",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := run(normalizeRoute(args[0])); err != nil {
			log.Fatalf("Application error: %v", err)
		}
	},
}

func normalizeRoute(route string) string {
	route = strings.TrimSpace(route)
	if !strings.HasPrefix(route, "/") {
		route = "/" + route
	}
	return route
}
