package core

import "time"

// DomainResult is one registrar verdict for a fully qualified domain.
// Available is parsed to a real bool at the registrar boundary; RawStatus
// keeps the registrar's verbatim flag for display and debugging.
type DomainResult struct {
	Domain    string `json:"domain"`
	Available bool   `json:"available"`
	RawStatus string `json:"raw_status,omitempty"`
}

// Suggestion pairs a candidate domain with its registrar verdict.
type Suggestion struct {
	Domain    string `json:"domain"`
	Available bool   `json:"available"`
}

// Provenance captures metadata about how a check was resolved.
type Provenance struct {
	CheckID     string    `json:"check_id"`
	RequestedAt time.Time `json:"requested_at"`
	ResolvedAt  time.Time `json:"resolved_at"`
	Source      string    `json:"source"`
	ToolVersion string    `json:"tool_version,omitempty"`
}

// QueryOutcome is the externally visible result of a single domain
// availability check. Link is set only when a single exact domain was
// checked and found available. Suggestions is set only when the input
// lacked a TLD and was expanded across the candidate extensions.
type QueryOutcome struct {
	Available   bool         `json:"available"`
	Domain      string       `json:"domain"`
	Message     string       `json:"message"`
	Link        string       `json:"link,omitempty"`
	Suggestions []Suggestion `json:"suggestions,omitempty"`
	Provenance  Provenance   `json:"provenance"`
}

// PlatformResult reports one social-platform probe.
type PlatformResult struct {
	Platform  string `json:"platform"`
	Available bool   `json:"available"`
}

// Report bundles one combined run for rendering.
type Report struct {
	Input       string           `json:"input"`
	Username    string           `json:"username,omitempty"`
	Domain      *QueryOutcome    `json:"domain,omitempty"`
	Handles     []PlatformResult `json:"handles,omitempty"`
	CompletedAt time.Time        `json:"completed_at"`
}
