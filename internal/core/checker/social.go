package checker

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fulmenhq/gofulmen/logging"
	"go.uber.org/zap"

	"github.com/brandkit/brandkit/internal/core"
)

const defaultMaxProbeBytes = 512 * 1024

// Prober infers social-handle occupancy from public profile pages.
//
// The signal is a heuristic, not ground truth: a non-200 response is read as
// "no such profile", and a 200 page that does not echo the username is read
// the same way. Platforms that always answer 200 with a generic landing page
// will produce false positives; that is an accepted limitation of probing.
type Prober struct {
	Client *http.Client
	Logger *logging.Logger

	// Platforms overrides the built-in table, mainly for tests.
	Platforms []core.Platform

	MaxBodyBytes int64
}

// IsAvailable probes one platform for a username. Any probe failure is
// contained here and reported as false (taken/unknown): a handle that could
// not be verified must never be suggested as available.
func (p *Prober) IsAvailable(ctx context.Context, username, platformKey string) bool {
	if ctx == nil {
		ctx = context.Background()
	}

	platform, ok := p.findPlatform(platformKey)
	if !ok {
		p.warn("unsupported platform requested",
			zap.String("platform", platformKey))
		return false
	}

	value := strings.TrimSpace(username)
	if value == "" {
		p.warn("empty username for probe", zap.String("platform", platform.Key))
		return false
	}

	profileURL := platform.ProfileURL(value)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, profileURL, nil)
	if err != nil {
		p.warn("probe request build failed",
			zap.String("platform", platform.Key), zap.Error(err))
		return false
	}

	client := p.Client
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	resp, err := client.Do(req)
	if err != nil {
		p.warn("probe request failed",
			zap.String("platform", platform.Key), zap.Error(err))
		return false
	}
	defer resp.Body.Close() // nolint:errcheck // best-effort cleanup on HTTP response body

	// Most platforms 404 a profile that does not exist.
	if resp.StatusCode != http.StatusOK {
		return true
	}

	maxBytes := p.MaxBodyBytes
	if maxBytes <= 0 {
		maxBytes = defaultMaxProbeBytes
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBytes))
	if err != nil {
		p.warn("probe body read failed",
			zap.String("platform", platform.Key), zap.Error(err))
		return false
	}

	// A live profile page almost always echoes the handle somewhere.
	return !strings.Contains(string(body), value)
}

// CheckAll probes every requested platform sequentially, preserving the
// requested order. The engine package offers a concurrent equivalent.
func (p *Prober) CheckAll(ctx context.Context, username string, platformKeys []string) []core.PlatformResult {
	results := make([]core.PlatformResult, 0, len(platformKeys))
	for _, key := range platformKeys {
		results = append(results, core.PlatformResult{
			Platform:  strings.ToLower(strings.TrimSpace(key)),
			Available: p.IsAvailable(ctx, username, key),
		})
	}
	return results
}

func (p *Prober) findPlatform(key string) (core.Platform, bool) {
	if p != nil && len(p.Platforms) > 0 {
		normalized := strings.ToLower(strings.TrimSpace(key))
		for _, platform := range p.Platforms {
			if platform.Key == normalized {
				return platform, true
			}
		}
		return core.Platform{}, false
	}
	return core.FindPlatform(key)
}

func (p *Prober) warn(msg string, fields ...zap.Field) {
	if p == nil || p.Logger == nil {
		return
	}
	p.Logger.Warn(msg, fields...)
}

// DeriveUsername extracts a candidate handle from a domain-shaped input by
// taking everything before the first dot. Inputs without a dot pass through
// unchanged.
func DeriveUsername(domain string) string {
	value := strings.TrimSpace(domain)
	if before, _, found := strings.Cut(value, "."); found {
		return before
	}
	return value
}
