package main

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"
)

func newRecommendCmd() *cobra.Command {
	var userID string
	var limit int
	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Get personalized recommendations",
		Run: func(cmd *cobra.Command, args []string) {
			recs, err := apiClient.Recommendations.Get(context.Background(), userID, limit)
			if err != nil {
				fatal("get recommendations", err)
			}
			if flagFmt == "table" {
				rows := make([][]string, 0, len(recs))
				for _, r := range recs {
					rows = append(rows, []string{
						r.ID, r.Title, r.Genre,
						strconv.FormatFloat(r.Rating, 'f', 1, 64),
						r.Source,
					})
				}
				formatTable([]string{"ID", "TITLE", "GENRE", "RATING", "SOURCE"}, rows)
				return
			}
			output(recs, strconv.Itoa(len(recs)))
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "User ID (required)")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum results (0 uses the server default)")
	if err := cmd.MarkFlagRequired("user"); err != nil {
		panic(err)
	}
	return cmd
}
