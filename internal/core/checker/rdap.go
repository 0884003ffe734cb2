package checker

import (
	"context"
	"errors"
	"net/url"
	"time"

	"github.com/openrdap/rdap"
)

// RDAPVerifier cross-checks a domain against the public RDAP registry.
// It is a secondary signal used to temper registrar "available" verdicts,
// never a replacement for the registrar call.
type RDAPVerifier struct {
	Client  *rdap.Client
	Timeout time.Duration

	// BaseURL pins the RDAP server instead of using bootstrap discovery,
	// mainly for tests.
	BaseURL string
}

// Verify returns true when an RDAP record exists for the domain.
func (v *RDAPVerifier) Verify(ctx context.Context, domain string) (bool, error) {
	if v == nil {
		return false, errors.New("rdap verifier is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	client := v.Client
	if client == nil {
		client = &rdap.Client{}
	}

	req := rdap.NewDomainRequest(domain)
	if v.BaseURL != "" {
		server, err := url.Parse(v.BaseURL)
		if err != nil {
			return false, err
		}
		req = req.WithServer(server)
	}
	if v.Timeout > 0 {
		req.Timeout = v.Timeout
	}
	req = req.WithContext(ctx)

	resp, err := client.Do(req)
	if err != nil {
		var clientErr *rdap.ClientError
		if errors.As(err, &clientErr) && clientErr.Type == rdap.ObjectDoesNotExist {
			return false, nil
		}
		return false, err
	}

	_, isDomain := resp.Object.(*rdap.Domain)
	return isDomain, nil
}
