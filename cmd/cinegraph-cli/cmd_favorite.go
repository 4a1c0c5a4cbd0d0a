package main

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"
)

func newFavoriteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "favorite",
		Short: "Manage favorites",
	}
	cmd.AddCommand(favoriteListCmd())
	cmd.AddCommand(favoriteToggleCmd())
	cmd.AddCommand(favoriteCheckCmd())
	return cmd
}

func favoriteListCmd() *cobra.Command {
	var userID string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a user's favorite movies",
		Run: func(cmd *cobra.Command, args []string) {
			movies, err := apiClient.Favorites.List(context.Background(), userID)
			if err != nil {
				fatal("list favorites", err)
			}
			if flagFmt == "table" {
				rows := make([][]string, 0, len(movies))
				for _, m := range movies {
					rows = append(rows, []string{
						m.ID, m.Title, m.Director, m.Genre,
						strconv.FormatFloat(m.Rating, 'f', 1, 64),
					})
				}
				formatTable([]string{"ID", "TITLE", "DIRECTOR", "GENRE", "RATING"}, rows)
				return
			}
			output(movies, strconv.Itoa(len(movies)))
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "User ID (required)")
	if err := cmd.MarkFlagRequired("user"); err != nil {
		panic(err)
	}
	return cmd
}

func favoriteToggleCmd() *cobra.Command {
	var userID string
	cmd := &cobra.Command{
		Use:   "toggle <movie-id>",
		Short: "Toggle a favorite on or off",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			nowFavorite, err := apiClient.Favorites.Toggle(context.Background(), userID, args[0])
			if err != nil {
				fatal("toggle favorite", err)
			}
			output(map[string]bool{"now_favorite": nowFavorite}, strconv.FormatBool(nowFavorite))
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "User ID (required)")
	if err := cmd.MarkFlagRequired("user"); err != nil {
		panic(err)
	}
	return cmd
}

func favoriteCheckCmd() *cobra.Command {
	var userID string
	cmd := &cobra.Command{
		Use:   "check <movie-id>",
		Short: "Check whether a movie is a favorite",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			isFavorite, err := apiClient.Favorites.IsFavorite(context.Background(), userID, args[0])
			if err != nil {
				fatal("check favorite", err)
			}
			output(map[string]bool{"is_favorite": isFavorite}, strconv.FormatBool(isFavorite))
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "User ID (required)")
	if err := cmd.MarkFlagRequired("user"); err != nil {
		panic(err)
	}
	return cmd
}
