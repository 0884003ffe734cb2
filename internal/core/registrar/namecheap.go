// Package registrar implements the Namecheap domain-check API client.
//
// The API is a plain HTTP GET carrying four account credentials plus a
// comma-joined DomainList; the response is XML. The availability flag is a
// string in the payload and is parsed to a real bool here, at the boundary,
// so downstream code never compares against string literals.
package registrar

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/brandkit/brandkit/internal/core"
)

const (
	defaultBaseURL = "https://api.namecheap.com/xml.response"
	checkCommand   = "namecheap.domains.check"

	// PurchaseHost is the storefront host used to build registration links.
	PurchaseHost = "https://www.namecheap.com"

	maxResponseBytes = 1 << 20
)

// Credentials holds the four registrar API credentials. All of them are
// required; validation happens once at construction, not per call.
type Credentials struct {
	APIUser  string
	APIKey   string
	Username string
	ClientIP string
}

// Validate reports the missing credential fields, if any.
func (c Credentials) Validate() error {
	var missing []string
	if strings.TrimSpace(c.APIUser) == "" {
		missing = append(missing, "api_user")
	}
	if strings.TrimSpace(c.APIKey) == "" {
		missing = append(missing, "api_key")
	}
	if strings.TrimSpace(c.Username) == "" {
		missing = append(missing, "username")
	}
	if strings.TrimSpace(c.ClientIP) == "" {
		missing = append(missing, "client_ip")
	}
	if len(missing) > 0 {
		return fmt.Errorf("registrar credentials missing: %s", strings.Join(missing, ", "))
	}
	return nil
}

// IntegrationError reports a failed registrar exchange. Callers must treat
// it as unknown availability, never as available.
type IntegrationError struct {
	Op  string
	Err error
}

func (e *IntegrationError) Error() string {
	return fmt.Sprintf("registrar: %s: %v", e.Op, e.Err)
}

func (e *IntegrationError) Unwrap() error {
	return e.Err
}

// Client issues batched domain-check requests against the registrar API.
type Client struct {
	creds   Credentials
	http    *http.Client
	baseURL string
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.http = client
		}
	}
}

// WithBaseURL overrides the API endpoint, mainly for tests.
func WithBaseURL(base string) Option {
	return func(c *Client) {
		if strings.TrimSpace(base) != "" {
			c.baseURL = base
		}
	}
}

// NewClient validates the credentials and returns a ready client.
func NewClient(creds Credentials, opts ...Option) (*Client, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}

	client := &Client{
		creds:   creds,
		http:    &http.Client{Timeout: 10 * time.Second},
		baseURL: defaultBaseURL,
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// Check performs one batched availability lookup. The returned slice is
// parallel to names: one entry per requested domain, in request order.
func (c *Client) Check(ctx context.Context, names []string) ([]core.DomainResult, error) {
	if c == nil {
		return nil, errors.New("registrar client is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	cleaned := make([]string, 0, len(names))
	for _, name := range names {
		value := strings.ToLower(strings.TrimSpace(name))
		if value == "" {
			continue
		}
		cleaned = append(cleaned, value)
	}
	if len(cleaned) == 0 {
		return nil, errors.New("at least one domain is required")
	}

	reqURL, err := c.requestURL(cleaned)
	if err != nil {
		return nil, &IntegrationError{Op: "build request", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &IntegrationError{Op: "build request", Err: err}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &IntegrationError{Op: "domain check", Err: err}
	}
	defer resp.Body.Close() // nolint:errcheck // best-effort cleanup on HTTP response body

	if resp.StatusCode != http.StatusOK {
		return nil, &IntegrationError{Op: "domain check", Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	payload, err := decodeResponse(resp.Body)
	if err != nil {
		return nil, &IntegrationError{Op: "decode response", Err: err}
	}

	if err := payload.apiError(); err != nil {
		return nil, &IntegrationError{Op: "domain check", Err: err}
	}

	byDomain := make(map[string]domainCheckResult, len(payload.CommandResponse.Results))
	for _, entry := range payload.CommandResponse.Results {
		byDomain[strings.ToLower(strings.TrimSpace(entry.Domain))] = entry
	}

	results := make([]core.DomainResult, 0, len(cleaned))
	for _, name := range cleaned {
		entry, ok := byDomain[name]
		if !ok {
			return nil, &IntegrationError{Op: "decode response", Err: fmt.Errorf("missing result for %q", name)}
		}
		results = append(results, core.DomainResult{
			Domain:    name,
			Available: strings.EqualFold(strings.TrimSpace(entry.Available), "true"),
			RawStatus: entry.Available,
		})
	}

	return results, nil
}

func (c *Client) requestURL(names []string) (string, error) {
	base, err := url.Parse(c.baseURL)
	if err != nil {
		return "", err
	}

	query := url.Values{}
	query.Set("ApiUser", c.creds.APIUser)
	query.Set("ApiKey", c.creds.APIKey)
	query.Set("UserName", c.creds.Username)
	query.Set("ClientIp", c.creds.ClientIP)
	query.Set("Command", checkCommand)
	query.Set("DomainList", strings.Join(names, ","))

	base.RawQuery = query.Encode()
	return base.String(), nil
}

type apiResponse struct {
	XMLName         xml.Name `xml:"ApiResponse"`
	Status          string   `xml:"Status,attr"`
	Errors          apiErrors       `xml:"Errors"`
	CommandResponse commandResponse `xml:"CommandResponse"`
}

type apiErrors struct {
	Errors []apiError `xml:"Error"`
}

type apiError struct {
	Number  string `xml:"Number,attr"`
	Message string `xml:",chardata"`
}

type commandResponse struct {
	Type    string              `xml:"Type,attr"`
	Results []domainCheckResult `xml:"DomainCheckResult"`
}

type domainCheckResult struct {
	Domain    string `xml:"Domain,attr"`
	Available string `xml:"Available,attr"`
}

func decodeResponse(body io.Reader) (*apiResponse, error) {
	payload := &apiResponse{}
	decoder := xml.NewDecoder(io.LimitReader(body, maxResponseBytes))
	if err := decoder.Decode(payload); err != nil {
		return nil, fmt.Errorf("malformed xml: %w", err)
	}
	return payload, nil
}

func (r *apiResponse) apiError() error {
	if len(r.Errors.Errors) > 0 {
		first := r.Errors.Errors[0]
		message := strings.TrimSpace(first.Message)
		if message == "" {
			message = "unspecified api error"
		}
		if number := strings.TrimSpace(first.Number); number != "" {
			return fmt.Errorf("api error %s: %s", number, message)
		}
		return errors.New(message)
	}
	if strings.EqualFold(strings.TrimSpace(r.Status), "ERROR") {
		return errors.New("api reported error status")
	}
	return nil
}
