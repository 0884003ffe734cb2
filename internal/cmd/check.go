package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/brandkit/brandkit/internal/core"
	errwrap "github.com/brandkit/brandkit/internal/errors"
	"github.com/brandkit/brandkit/internal/output"
)

var checkCmd = &cobra.Command{
	Use:   "check [name]",
	Short: "Check domain and social handle availability",
	Long: `Check a name against the registrar and the supported social platforms.

A name containing a dot is treated as an exact domain (example.com); anything
else expands across the suggestion extensions. Social probes use the part of
the name before the first dot as the handle. With no argument and no --domain
flag, the name is read interactively from stdin.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().String("domain", "", "name to check (alternative to the positional argument)")
	checkCmd.Flags().StringSlice("platforms", nil, "platforms to probe (default: all supported)")
	checkCmd.Flags().Bool("verify", false, "cross-check available domains against public RDAP records")
	checkCmd.Flags().String("output", "table", "output format: table, json")
	checkCmd.Flags().Bool("json", false, "shorthand for --output json")
}

func runCheck(cmd *cobra.Command, args []string) error {
	name, err := resolveName(cmd, args)
	if err != nil {
		return err
	}

	platforms, err := cmd.Flags().GetStringSlice("platforms")
	if err != nil {
		return err
	}
	if len(platforms) == 0 {
		platforms = core.PlatformKeys()
	}

	verify, err := cmd.Flags().GetBool("verify")
	if err != nil {
		return err
	}

	formatter, err := resolveFormatter(cmd)
	if err != nil {
		return err
	}

	cfg := loadConfig()
	orchestrator := buildOrchestrator(cfg, verify)

	ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout(cfg))
	defer cancel()

	report, err := orchestrator.Run(ctx, name, platforms)
	if err != nil {
		return errwrap.WrapRegistrarError(ctx, err, "availability check failed")
	}

	return renderReport(cmd, formatter, report)
}

// resolveName picks the name from --domain, the positional argument, or an
// interactive stdin prompt, in that order.
func resolveName(cmd *cobra.Command, args []string) (string, error) {
	name, err := cmd.Flags().GetString("domain")
	if err != nil {
		return "", err
	}
	if name == "" && len(args) > 0 {
		name = args[0]
	}
	if name == "" {
		fmt.Fprint(cmd.OutOrStdout(), "Enter a name to check: ")
		reader := bufio.NewReader(cmd.InOrStdin())
		line, readErr := reader.ReadString('\n')
		if readErr != nil && line == "" {
			return "", errors.New("no name provided")
		}
		name = line
	}

	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return "", errors.New("name is required")
	}
	return name, nil
}

func resolveFormatter(cmd *cobra.Command) (output.Formatter, error) {
	formatRaw, err := cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}
	jsonFlag, err := cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}
	if jsonFlag {
		formatRaw = string(output.FormatJSON)
	}

	format, err := output.ParseFormat(formatRaw)
	if err != nil {
		return nil, err
	}
	return output.NewFormatter(format), nil
}

func renderReport(cmd *cobra.Command, formatter output.Formatter, report *core.Report) error {
	rendered, err := formatter.FormatReport(report)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return nil
}
