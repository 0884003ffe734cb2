package cmd

import (
	"net/http"

	"github.com/fulmenhq/gofulmen/foundry"

	"github.com/brandkit/brandkit/internal/config"
	"github.com/brandkit/brandkit/internal/core/checker"
	"github.com/brandkit/brandkit/internal/core/engine"
	"github.com/brandkit/brandkit/internal/core/registrar"
	"github.com/brandkit/brandkit/internal/observability"
)

// buildRegistrarClient wires the Namecheap client from configuration.
// Missing credentials are a startup failure, not a per-check one.
func buildRegistrarClient(cfg *config.Config) *registrar.Client {
	creds := registrar.Credentials{
		APIUser:  cfg.Registrar.APIUser,
		APIKey:   cfg.Registrar.APIKey,
		Username: cfg.Registrar.Username,
		ClientIP: cfg.Registrar.ClientIP,
	}

	opts := []registrar.Option{}
	if cfg.Registrar.BaseURL != "" {
		opts = append(opts, registrar.WithBaseURL(cfg.Registrar.BaseURL))
	}
	if cfg.Registrar.Timeout > 0 {
		opts = append(opts, registrar.WithHTTPClient(&http.Client{Timeout: cfg.Registrar.Timeout}))
	}

	client, err := registrar.NewClient(creds, opts...)
	if err != nil {
		ExitWithCode(observability.CLILogger, foundry.ExitConfigInvalid,
			"Registrar credentials are incomplete (set BRANDKIT_REGISTRAR_* or a config file)", err)
	}
	return client
}

func buildDomainChecker(cfg *config.Config, verify bool) *checker.DomainChecker {
	domains := &checker.DomainChecker{
		Registrar:   buildRegistrarClient(cfg),
		ToolVersion: versionInfo.Version,
	}
	if verify || cfg.Verify.Enabled {
		domains.Verifier = &checker.RDAPVerifier{Timeout: cfg.Verify.Timeout}
	}
	return domains
}

func buildProber(cfg *config.Config) *checker.Prober {
	return &checker.Prober{
		Client:       &http.Client{Timeout: cfg.Social.Timeout},
		Logger:       observability.CLILogger,
		MaxBodyBytes: cfg.Social.MaxBodyBytes,
	}
}

func buildOrchestrator(cfg *config.Config, verify bool) *engine.Orchestrator {
	return &engine.Orchestrator{
		Domains: buildDomainChecker(cfg, verify),
		Prober:  buildProber(cfg),
		Workers: cfg.Workers,
	}
}
