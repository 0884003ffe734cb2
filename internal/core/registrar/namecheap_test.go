package registrar

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func testCredentials() Credentials {
	return Credentials{
		APIUser:  "apiuser",
		APIKey:   "secret",
		Username: "account",
		ClientIP: "203.0.113.10",
	}
}

func checkResponse(results string) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="utf-8"?>
<ApiResponse Status="OK">
  <Errors/>
  <CommandResponse Type="namecheap.domains.check">
%s
  </CommandResponse>
</ApiResponse>`, results)
}

func TestCredentialsValidate(t *testing.T) {
	require.NoError(t, testCredentials().Validate())

	creds := testCredentials()
	creds.APIKey = ""
	creds.ClientIP = "  "
	err := creds.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "api_key")
	require.Contains(t, err.Error(), "client_ip")
}

func TestNewClientRequiresCredentials(t *testing.T) {
	_, err := NewClient(Credentials{})
	require.Error(t, err)
}

func TestCheckBatchedRequest(t *testing.T) {
	var gotQuery map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		fmt.Fprint(w, checkResponse(
			`    <DomainCheckResult Domain="example.com" Available="true"/>
    <DomainCheckResult Domain="example.net" Available="false"/>`))
	}))
	defer server.Close()

	client, err := NewClient(testCredentials(), WithBaseURL(server.URL), WithHTTPClient(server.Client()))
	require.NoError(t, err)

	results, err := client.Check(context.Background(), []string{"example.com", "example.net"})
	require.NoError(t, err)
	require.Len(t, results, 2)

	require.Equal(t, "example.com", results[0].Domain)
	require.True(t, results[0].Available)
	require.Equal(t, "true", results[0].RawStatus)
	require.Equal(t, "example.net", results[1].Domain)
	require.False(t, results[1].Available)

	require.Equal(t, []string{"apiuser"}, gotQuery["ApiUser"])
	require.Equal(t, []string{"secret"}, gotQuery["ApiKey"])
	require.Equal(t, []string{"account"}, gotQuery["UserName"])
	require.Equal(t, []string{"203.0.113.10"}, gotQuery["ClientIp"])
	require.Equal(t, []string{"namecheap.domains.check"}, gotQuery["Command"])
	require.Equal(t, []string{"example.com,example.net"}, gotQuery["DomainList"])
}

func TestCheckPreservesInputOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Registrar replies in a different order than requested.
		fmt.Fprint(w, checkResponse(
			`    <DomainCheckResult Domain="beta.io" Available="false"/>
    <DomainCheckResult Domain="alpha.io" Available="true"/>`))
	}))
	defer server.Close()

	client, err := NewClient(testCredentials(), WithBaseURL(server.URL), WithHTTPClient(server.Client()))
	require.NoError(t, err)

	results, err := client.Check(context.Background(), []string{"alpha.io", "beta.io"})
	require.NoError(t, err)
	require.Equal(t, "alpha.io", results[0].Domain)
	require.True(t, results[0].Available)
	require.Equal(t, "beta.io", results[1].Domain)
	require.False(t, results[1].Available)
}

func TestCheckBadStatusFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client, err := NewClient(testCredentials(), WithBaseURL(server.URL), WithHTTPClient(server.Client()))
	require.NoError(t, err)

	_, err = client.Check(context.Background(), []string{"example.com"})
	require.Error(t, err)
	var integrationErr *IntegrationError
	require.ErrorAs(t, err, &integrationErr)
}

func TestCheckAPIErrorFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<?xml version="1.0" encoding="utf-8"?>
<ApiResponse Status="ERROR">
  <Errors><Error Number="1011102">API Key is invalid or API access has not been enabled</Error></Errors>
  <CommandResponse/>
</ApiResponse>`)
	}))
	defer server.Close()

	client, err := NewClient(testCredentials(), WithBaseURL(server.URL), WithHTTPClient(server.Client()))
	require.NoError(t, err)

	_, err = client.Check(context.Background(), []string{"example.com"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "1011102")
}

func TestCheckMissingResultFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, checkResponse(`    <DomainCheckResult Domain="example.com" Available="true"/>`))
	}))
	defer server.Close()

	client, err := NewClient(testCredentials(), WithBaseURL(server.URL), WithHTTPClient(server.Client()))
	require.NoError(t, err)

	_, err = client.Check(context.Background(), []string{"example.com", "example.org"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "example.org")
}

func TestCheckMalformedXMLFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<not-xml")
	}))
	defer server.Close()

	client, err := NewClient(testCredentials(), WithBaseURL(server.URL), WithHTTPClient(server.Client()))
	require.NoError(t, err)

	_, err = client.Check(context.Background(), []string{"example.com"})
	require.Error(t, err)
	var integrationErr *IntegrationError
	require.ErrorAs(t, err, &integrationErr)
}
