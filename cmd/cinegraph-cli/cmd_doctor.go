package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/cinegraph/cinegraph/client"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose configuration and connectivity",
		Long:  "Run diagnostic checks against config, server, and the triple store",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDoctor()
		},
	}
}

type checkResult struct {
	Name   string
	Passed bool
	Detail string
	Hint   string
}

func runDoctor() error {
	fmt.Println("\nCinegraph Doctor")
	fmt.Println("================")

	var results []checkResult

	// 1. Config file. The file is optional (resolveConfig falls back to
	// --url and CINEGRAPH_URL), so a missing file is informational only.
	cfgPath, cfgErr := doctorConfigPath()
	if cfgErr != nil {
		results = append(results, checkResult{
			Name: "Config file", Passed: true,
			Detail: "not found (optional; using --url / CINEGRAPH_URL)",
		})
	} else {
		results = append(results, checkResult{
			Name: "Config file", Passed: true,
			Detail: fmt.Sprintf("found (%s)", cfgPath),
		})
	}

	resolveConfig()
	results = append(results, checkResult{
		Name: "Server URL", Passed: true, Detail: flagURL,
	})

	// 2. Server reachable and store status from the health payload.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	c := client.New(flagURL, client.WithTimeout(5*time.Second))
	health, err := c.Health(ctx)
	if err != nil {
		results = append(results, checkResult{
			Name: "Server reachable", Passed: false,
			Detail: flagURL,
			Hint:   fmt.Sprintf("Is cinegraphd running? Error: %v", err),
		})
	} else {
		detail := flagURL
		if health.Version != "" {
			detail = fmt.Sprintf("v%s", health.Version)
		}
		results = append(results, checkResult{
			Name: "Server reachable", Passed: true, Detail: detail,
		})
		storeOK := health.Store == client.StoreConnected
		r := checkResult{Name: "Triple store", Passed: storeOK, Detail: health.Store}
		if !storeOK {
			r.Hint = "Is Fuseki running and the dataset created?"
		}
		results = append(results, r)
	}

	failed := 0
	for _, r := range results {
		mark := "ok"
		if !r.Passed {
			mark = "FAIL"
			failed++
		}
		line := fmt.Sprintf("  [%s] %s", mark, r.Name)
		if r.Detail != "" {
			line += ": " + r.Detail
		}
		fmt.Println(line)
		if r.Hint != "" {
			fmt.Println("     hint: " + r.Hint)
		}
	}

	fmt.Println()
	if failed > 0 {
		return fmt.Errorf("%d check(s) failed", failed)
	}
	fmt.Println("All checks passed.")
	return nil
}

func doctorConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	cfgPath := filepath.Join(home, ".cinegraph", "config.yaml")
	data, err := os.ReadFile(cfgPath)
	if err != nil {
		return cfgPath, err
	}
	var cfg configFile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfgPath, err
	}
	return cfgPath, nil
}
