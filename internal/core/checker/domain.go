package checker

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/brandkit/brandkit/internal/core"
	"github.com/brandkit/brandkit/internal/core/registrar"
)

const registrarSource = "registrar"

// SuggestionTLDs is the fixed, ordered extension list used in suggestion
// mode. Suggestion output preserves this order.
var SuggestionTLDs = []string{
	".com", ".net", ".org", ".io", ".dev", ".app", ".co",
	".xyz", ".tech", ".site", ".link", ".me", ".info", ".blog",
}

// RegistrarClient is the narrow surface the domain checker needs.
type RegistrarClient interface {
	Check(ctx context.Context, names []string) ([]core.DomainResult, error)
}

// Verifier cross-checks a registrar "available" verdict against a second
// source. Verify returns true when a record for the domain exists.
type Verifier interface {
	Verify(ctx context.Context, domain string) (bool, error)
}

// DomainChecker routes an input between exact-check mode and suggestion
// mode and shapes the registrar verdicts into a QueryOutcome.
type DomainChecker struct {
	Registrar   RegistrarClient
	Verifier    Verifier
	ToolVersion string
	Clock       func() time.Time
}

// Check performs one domain availability check. Inputs containing a dot are
// checked exactly; bare names are expanded across SuggestionTLDs. Registrar
// failures propagate unchanged and never degrade into "not available".
func (d *DomainChecker) Check(ctx context.Context, input string) (*core.QueryOutcome, error) {
	if d == nil || d.Registrar == nil {
		return nil, errors.New("domain checker is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	value := strings.ToLower(strings.TrimSpace(input))
	if value == "" {
		return nil, errors.New("domain name is required")
	}

	requestedAt := d.now()

	if strings.Contains(value, ".") {
		return d.checkExact(ctx, value, requestedAt)
	}
	return d.checkSuggestions(ctx, value, requestedAt)
}

func (d *DomainChecker) checkExact(ctx context.Context, domain string, requestedAt time.Time) (*core.QueryOutcome, error) {
	results, err := d.Registrar.Check(ctx, []string{domain})
	if err != nil {
		return nil, err
	}
	if len(results) != 1 {
		return nil, fmt.Errorf("expected one result for %q, got %d", domain, len(results))
	}

	outcome := &core.QueryOutcome{
		Domain:     domain,
		Available:  results[0].Available,
		Provenance: d.provenance(requestedAt),
	}

	if !results[0].Available {
		outcome.Message = fmt.Sprintf("%s is already taken.", domain)
		return outcome, nil
	}

	outcome.Message = fmt.Sprintf("Good news: %s is available!", domain)
	outcome.Link = PurchaseLink(domain)

	if d.Verifier != nil {
		if taken, err := d.Verifier.Verify(ctx, domain); err == nil && taken {
			// Cross-check disagreement never upgrades a verdict; it only
			// tempers the registrar's optimism.
			outcome.Message = fmt.Sprintf("%s looks available, but a public registry record exists. Verify before purchase.", domain)
			outcome.Link = ""
		}
	}

	return outcome, nil
}

func (d *DomainChecker) checkSuggestions(ctx context.Context, base string, requestedAt time.Time) (*core.QueryOutcome, error) {
	candidates := ExpandCandidates(base)

	results, err := d.Registrar.Check(ctx, candidates)
	if err != nil {
		return nil, err
	}

	suggestions := make([]core.Suggestion, 0, len(results))
	availableCount := 0
	for _, result := range results {
		suggestions = append(suggestions, core.Suggestion{
			Domain:    result.Domain,
			Available: result.Available,
		})
		if result.Available {
			availableCount++
		}
	}

	return &core.QueryOutcome{
		Domain: base,
		// A bare name without a TLD is never itself available; the field
		// reflects exact-match status only.
		Available:   false,
		Message:     suggestionMessage(base, availableCount),
		Suggestions: suggestions,
		Provenance:  d.provenance(requestedAt),
	}, nil
}

// ExpandCandidates builds the candidate domains for a bare name, in
// SuggestionTLDs order.
func ExpandCandidates(base string) []string {
	candidates := make([]string, 0, len(SuggestionTLDs))
	for _, tld := range SuggestionTLDs {
		candidates = append(candidates, base+tld)
	}
	return candidates
}

// PurchaseLink builds the registrar storefront link for an exact domain.
func PurchaseLink(domain string) string {
	return fmt.Sprintf("%s/domains/registration/results/?domain=%s", registrar.PurchaseHost, domain)
}

func suggestionMessage(base string, availableCount int) string {
	switch {
	case availableCount == 0:
		return fmt.Sprintf("No extensions are available for %q right now.", base)
	case availableCount <= 3:
		return fmt.Sprintf("Only a few options left for %q.", base)
	case availableCount <= 6:
		return fmt.Sprintf("Some good extensions are available for %q.", base)
	default:
		return fmt.Sprintf("Many extensions are available for %q.", base)
	}
}

func (d *DomainChecker) provenance(requestedAt time.Time) core.Provenance {
	return core.Provenance{
		CheckID:     uuid.New().String(),
		RequestedAt: requestedAt,
		ResolvedAt:  d.now(),
		Source:      registrarSource,
		ToolVersion: d.ToolVersion,
	}
}

func (d *DomainChecker) now() time.Time {
	if d != nil && d.Clock != nil {
		return d.Clock()
	}
	return time.Now().UTC()
}
