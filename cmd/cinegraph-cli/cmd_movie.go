package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cinegraph/cinegraph/client"
)

func newMovieCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "movie",
		Short: "Manage the movie catalog",
	}
	cmd.AddCommand(movieListCmd())
	cmd.AddCommand(movieGetCmd())
	cmd.AddCommand(movieAddCmd())
	return cmd
}

func movieListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all movies, best rated first",
		Run: func(cmd *cobra.Command, args []string) {
			movies, err := apiClient.Movies.List(context.Background())
			if err != nil {
				fatal("list movies", err)
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
}

func movieGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get a movie with its opinion",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			details, err := apiClient.Movies.Get(context.Background(), args[0])
			if err != nil {
				fatal("get movie", err)
			}
			output(details, details.ID)
		},
	}
}

func movieAddCmd() *cobra.Command {
	var director, genre string
	var rating float64
	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a movie to the catalog",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			req := &client.AddMovieRequest{
				Title:    args[0],
				Director: director,
				Genre:    genre,
				Rating:   rating,
			}
			movie, err := apiClient.Movies.Add(context.Background(), req)
			if err != nil {
				fatal("add movie", err)
			}
			output(movie, movie.ID)
		},
	}
	cmd.Flags().StringVar(&director, "director", "", "Director name (required)")
	cmd.Flags().StringVar(&genre, "genre", "", "Genre (required)")
	cmd.Flags().Float64Var(&rating, "rating", 0, "Rating between 1.0 and 5.0 (required)")
	for _, f := range []string{"director", "genre", "rating"} {
		if err := cmd.MarkFlagRequired(f); err != nil {
			panic(fmt.Sprintf("mark %s required: %v", f, err))
		}
	}
	return cmd
}
