package engine

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/brandkit/brandkit/internal/core"
	"github.com/brandkit/brandkit/internal/core/checker"
)

const defaultWorkers = 4

// DomainSource performs one domain availability check.
type DomainSource interface {
	Check(ctx context.Context, input string) (*core.QueryOutcome, error)
}

// HandleProber probes one platform for a username.
type HandleProber interface {
	IsAvailable(ctx context.Context, username, platform string) bool
}

// Orchestrator coordinates a combined run: one domain check plus username
// probes fanned out across platforms with a bounded worker pool.
type Orchestrator struct {
	Domains DomainSource
	Prober  HandleProber
	Workers int
	Clock   func() time.Time
}

// Run checks the input against the registrar and probes the requested
// platforms with a username derived from the input. Registrar failures
// surface as errors; per-platform probe failures stay contained in their
// individual results.
func (o *Orchestrator) Run(ctx context.Context, input string, platformKeys []string) (*core.Report, error) {
	if o == nil {
		return nil, errors.New("orchestrator is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	value := strings.ToLower(strings.TrimSpace(input))
	if value == "" {
		return nil, errors.New("name is required")
	}

	report := &core.Report{Input: value}

	if o.Domains != nil {
		outcome, err := o.Domains.Check(ctx, value)
		if err != nil {
			return nil, err
		}
		report.Domain = outcome
	}

	if o.Prober != nil && len(platformKeys) > 0 {
		report.Username = checker.DeriveUsername(value)
		report.Handles = o.CheckHandles(ctx, report.Username, platformKeys)
	}

	report.CompletedAt = o.now()
	return report, nil
}

// CheckHandles probes every requested platform concurrently. The result
// slice is parallel to platformKeys: probes write into their own index slot,
// so ordering never depends on goroutine scheduling.
func (o *Orchestrator) CheckHandles(ctx context.Context, username string, platformKeys []string) []core.PlatformResult {
	keys := normalizeKeys(platformKeys)
	results := make([]core.PlatformResult, len(keys))

	workers := o.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}

	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for i, key := range keys {
		wg.Add(1)
		go func(slot int, platform string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			results[slot] = core.PlatformResult{
				Platform:  platform,
				Available: o.Prober.IsAvailable(ctx, username, platform),
			}
		}(i, key)
	}
	wg.Wait()

	return results
}

func normalizeKeys(values []string) []string {
	keys := make([]string, 0, len(values))
	for _, value := range values {
		key := strings.ToLower(strings.TrimSpace(value))
		if key == "" {
			continue
		}
		keys = append(keys, key)
	}
	return keys
}

func (o *Orchestrator) now() time.Time {
	if o != nil && o.Clock != nil {
		return o.Clock()
	}
	return time.Now().UTC()
}
