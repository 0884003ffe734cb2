package output

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brandkit/brandkit/internal/core"
)

func sampleReport() *core.Report {
	return &core.Report{
		Input:    "acme",
		Username: "acme",
		Domain: &core.QueryOutcome{
			Domain:  "acme",
			Message: `Some good extensions are available for "acme".`,
			Suggestions: []core.Suggestion{
				{Domain: "acme.com", Available: false},
				{Domain: "acme.net", Available: true},
				{Domain: "acme.org", Available: true},
			},
		},
		Handles: []core.PlatformResult{
			{Platform: "github", Available: true},
			{Platform: "reddit", Available: false},
		},
	}
}

func TestParseFormat(t *testing.T) {
	format, err := ParseFormat("")
	require.NoError(t, err)
	require.Equal(t, FormatTable, format)

	format, err = ParseFormat("JSON")
	require.NoError(t, err)
	require.Equal(t, FormatJSON, format)

	_, err = ParseFormat("yaml")
	require.Error(t, err)
}

func TestTableFormatter(t *testing.T) {
	rendered, err := (&TableFormatter{}).FormatReport(sampleReport())
	require.NoError(t, err)

	require.Contains(t, rendered, "Some good extensions")
	require.Contains(t, rendered, "acme.net")
	require.Contains(t, rendered, "2/3 available")
	require.Contains(t, rendered, "github")
	require.Contains(t, rendered, "1/2 available")
}

func TestTableFormatterExactMatchLink(t *testing.T) {
	report := &core.Report{
		Input: "brandkit.io",
		Domain: &core.QueryOutcome{
			Domain:    "brandkit.io",
			Available: true,
			Message:   "Good news: brandkit.io is available!",
			Link:      "https://www.namecheap.com/domains/registration/results/?domain=brandkit.io",
		},
	}

	rendered, err := (&TableFormatter{}).FormatReport(report)
	require.NoError(t, err)
	require.Contains(t, rendered, "Register: https://www.namecheap.com")
}

func TestJSONFormatterRoundTrip(t *testing.T) {
	rendered, err := (&JSONFormatter{Indent: true}).FormatReport(sampleReport())
	require.NoError(t, err)

	var decoded core.Report
	require.NoError(t, json.Unmarshal([]byte(rendered), &decoded))
	require.Equal(t, "acme", decoded.Input)
	require.Len(t, decoded.Domain.Suggestions, 3)
	require.Len(t, decoded.Handles, 2)
}
