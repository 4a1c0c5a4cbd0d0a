package main

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"
)

func newAdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Administrative operations",
	}
	cmd.AddCommand(adminLoadSamplesCmd())
	return cmd
}

func adminLoadSamplesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load-samples",
		Short: "Seed the catalog with sample movies",
		Run: func(cmd *cobra.Command, args []string) {
			loaded, err := apiClient.Admin.LoadSamples(context.Background())
			if err != nil {
				fatal("load samples", err)
			}
			output(map[string]int{"loaded": loaded}, strconv.Itoa(loaded))
		},
	}
}
