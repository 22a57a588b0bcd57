package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newTradeCmd() *cobra.Command {
	var sideA, sideB []string

	cmd := &cobra.Command{
		Use:   "trade",
		Short: "Submit a trade for grading",
		Long: `Submit a proposed trade for grading. Each side takes one or more player
names; repeat the flag for multiple players.

Example:
  tradectl trade --give "Justin Jefferson" --get "CeeDee Lamb" --get "Tony Pollard"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			give := filterBlank(sideA)
			get := filterBlank(sideB)

			if len(give) == 0 {
				return fmt.Errorf("--give requires at least one non-blank player name")
			}
			if len(get) == 0 {
				return fmt.Errorf("--get requires at least one non-blank player name")
			}

			req := map[string]any{
				"sideA": give,
				"sideB": get,
			}
			var result GradeResult

			if err := client.Post("/trade", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&sideA, "give", nil, "Player being given away (repeatable, required)")
	cmd.Flags().StringArrayVar(&sideB, "get", nil, "Player being received (repeatable, required)")
	_ = cmd.MarkFlagRequired("give")
	_ = cmd.MarkFlagRequired("get")

	return cmd
}

func newHistoryCmd() *cobra.Command {
	var page, limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List previously graded trades",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := fmt.Sprintf("/previoustrades?page=%d&limit=%d", page, limit)

			var result HistoryResult
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "Page number (1-based)")
	cmd.Flags().IntVar(&limit, "limit", 10, "Trades per page (max 100)")

	return cmd
}

// filterBlank drops empty and whitespace-only names before the request
// goes out, so the server never sees obviously malformed sides
func filterBlank(names []string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			continue
		}
		out = append(out, name)
	}
	return out
}
