package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/brandkit/brandkit/internal/core"
	errwrap "github.com/brandkit/brandkit/internal/errors"
)

var domainCmd = &cobra.Command{
	Use:   "domain <name>",
	Short: "Check domain availability only",
	Long: `Check a single name against the registrar without probing social platforms.

"brandkit domain example.com" reports the exact domain; "brandkit domain example"
expands across the suggestion extensions.`,
	Args: cobra.ExactArgs(1),
	RunE: runDomain,
}

func init() {
	rootCmd.AddCommand(domainCmd)

	domainCmd.Flags().Bool("verify", false, "cross-check available domains against public RDAP records")
	domainCmd.Flags().String("output", "table", "output format: table, json")
	domainCmd.Flags().Bool("json", false, "shorthand for --output json")
}

func runDomain(cmd *cobra.Command, args []string) error {
	verify, err := cmd.Flags().GetBool("verify")
	if err != nil {
		return err
	}

	formatter, err := resolveFormatter(cmd)
	if err != nil {
		return err
	}

	cfg := loadConfig()
	checker := buildDomainChecker(cfg, verify)

	ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout(cfg))
	defer cancel()

	outcome, err := checker.Check(ctx, args[0])
	if err != nil {
		return errwrap.WrapRegistrarError(ctx, err, "domain check failed")
	}

	report := &core.Report{
		Input:  outcome.Domain,
		Domain: outcome,
	}
	return renderReport(cmd, formatter, report)
}
