package cmd

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/brandkit/brandkit/internal/core"
	"github.com/brandkit/brandkit/internal/core/checker"
	"github.com/brandkit/brandkit/internal/core/engine"
)

var usernameCmd = &cobra.Command{
	Use:   "username <name>",
	Short: "Check social handle availability only",
	Long: `Probe the supported social platforms for a username without touching
the registrar. A name like "acme.com" probes the handle "acme".`,
	Args: cobra.ExactArgs(1),
	RunE: runUsername,
}

func init() {
	rootCmd.AddCommand(usernameCmd)

	usernameCmd.Flags().StringSlice("platforms", nil, "platforms to probe (default: all supported)")
	usernameCmd.Flags().String("output", "table", "output format: table, json")
	usernameCmd.Flags().Bool("json", false, "shorthand for --output json")
}

func runUsername(cmd *cobra.Command, args []string) error {
	name := strings.ToLower(strings.TrimSpace(args[0]))
	if name == "" {
		return errors.New("name is required")
	}

	platforms, err := cmd.Flags().GetStringSlice("platforms")
	if err != nil {
		return err
	}
	if len(platforms) == 0 {
		platforms = core.PlatformKeys()
	}

	formatter, err := resolveFormatter(cmd)
	if err != nil {
		return err
	}

	cfg := loadConfig()
	orchestrator := &engine.Orchestrator{
		Prober:  buildProber(cfg),
		Workers: cfg.Workers,
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout(cfg))
	defer cancel()

	username := checker.DeriveUsername(name)
	report := &core.Report{
		Input:       name,
		Username:    username,
		Handles:     orchestrator.CheckHandles(ctx, username, platforms),
		CompletedAt: time.Now().UTC(),
	}
	return renderReport(cmd, formatter, report)
}
