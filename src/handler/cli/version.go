package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"complexity-analyzer/src/service/language"
)

func (h *Handler) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", h.cfg.Agent.Name, h.cfg.Agent.Version)
		},
	}
}

func (h *Handler) languagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List supported languages",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Supported languages:")
			for _, tag := range language.Tags() {
				p, _ := language.Lookup(tag)
				fmt.Fprintf(out, "  - %-11s: %s\n", tag, strings.Join(p.Extensions, " "))
			}
			fmt.Fprintln(out, "")
			fmt.Fprintf(out, "Unknown languages are analyzed with the %s profile.\n", language.DefaultTag)
		},
	}
}
