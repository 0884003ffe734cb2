package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/brandkit/brandkit/internal/output"
)

func newFlagFixture() *cobra.Command {
	cmd := &cobra.Command{Use: "check"}
	cmd.Flags().String("domain", "", "")
	cmd.Flags().String("output", "table", "")
	cmd.Flags().Bool("json", false, "")
	return cmd
}

func TestResolveNamePrefersDomainFlag(t *testing.T) {
	cmd := newFlagFixture()
	require.NoError(t, cmd.Flags().Set("domain", "Acme.IO"))

	name, err := resolveName(cmd, []string{"ignored"})
	require.NoError(t, err)
	require.Equal(t, "acme.io", name)
}

func TestResolveNameUsesPositionalArg(t *testing.T) {
	cmd := newFlagFixture()

	name, err := resolveName(cmd, []string{"  BrandKit  "})
	require.NoError(t, err)
	require.Equal(t, "brandkit", name)
}

func TestResolveNamePromptsWhenMissing(t *testing.T) {
	cmd := newFlagFixture()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetIn(strings.NewReader("acme\n"))

	name, err := resolveName(cmd, nil)
	require.NoError(t, err)
	require.Equal(t, "acme", name)
	require.Contains(t, out.String(), "Enter a name to check")
}

func TestResolveNameRejectsEmptyInput(t *testing.T) {
	cmd := newFlagFixture()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader("\n"))

	_, err := resolveName(cmd, nil)
	require.Error(t, err)
}

func TestResolveFormatterJSONShorthand(t *testing.T) {
	cmd := newFlagFixture()
	require.NoError(t, cmd.Flags().Set("json", "true"))

	formatter, err := resolveFormatter(cmd)
	require.NoError(t, err)
	require.IsType(t, &output.JSONFormatter{}, formatter)
}

func TestResolveFormatterRejectsUnknownFormat(t *testing.T) {
	cmd := newFlagFixture()
	require.NoError(t, cmd.Flags().Set("output", "yaml"))

	_, err := resolveFormatter(cmd)
	require.Error(t, err)
}
