package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/brandkit/brandkit/internal/core"
	"github.com/brandkit/brandkit/internal/core/checker"
	apperrors "github.com/brandkit/brandkit/internal/errors"
)

// DomainChecker performs one domain availability check.
type DomainChecker interface {
	Check(ctx context.Context, input string) (*core.QueryOutcome, error)
}

// HandleChecker probes a username across platforms.
type HandleChecker interface {
	CheckHandles(ctx context.Context, username string, platformKeys []string) []core.PlatformResult
}

// API bundles the checkers behind the HTTP surface.
type API struct {
	Domains DomainChecker
	Handles HandleChecker
}

type usernameResponse struct {
	Username string                `json:"username"`
	Results  []core.PlatformResult `json:"results"`
}

// CheckDomain handles GET /api/v1/domains/{name}.
func (a *API) CheckDomain(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(chi.URLParam(r, "name"))
	if name == "" {
		apperrors.RespondWithEnvelope(w, r, apperrors.NewInvalidInputError("domain name is required"))
		return
	}
	if a == nil || a.Domains == nil {
		apperrors.RespondWithEnvelope(w, r, apperrors.NewInternalError("domain checking is not configured"))
		return
	}

	outcome, err := a.Domains.Check(r.Context(), name)
	if err != nil {
		// A failed registrar exchange means unknown availability; surface
		// it, never report "taken".
		apperrors.RespondWithEnvelope(w, r, apperrors.WrapRegistrarError(r.Context(), err, "domain check failed"))
		return
	}

	writeJSON(w, http.StatusOK, outcome)
}

// CheckUsername handles GET /api/v1/usernames/{name}. The optional
// "platforms" query parameter narrows the probe list; default is the full
// platform table.
func (a *API) CheckUsername(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(chi.URLParam(r, "name"))
	if name == "" {
		apperrors.RespondWithEnvelope(w, r, apperrors.NewInvalidInputError("username is required"))
		return
	}
	if a == nil || a.Handles == nil {
		apperrors.RespondWithEnvelope(w, r, apperrors.NewInternalError("username checking is not configured"))
		return
	}

	platforms := core.PlatformKeys()
	if raw := strings.TrimSpace(r.URL.Query().Get("platforms")); raw != "" {
		platforms = splitList(raw)
	}

	username := checker.DeriveUsername(name)
	results := a.Handles.CheckHandles(r.Context(), username, platforms)

	writeJSON(w, http.StatusOK, usernameResponse{Username: username, Results: results})
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		value := strings.ToLower(strings.TrimSpace(part))
		if value == "" {
			continue
		}
		values = append(values, value)
	}
	return values
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
