package checker

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRDAPVerifierFindsRecord(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rdap+json")
		_, _ = w.Write([]byte(`{"objectClassName":"domain","ldhName":"brandkit.io"}`))
	}))
	defer server.Close()

	verifier := &RDAPVerifier{BaseURL: server.URL}
	taken, err := verifier.Verify(context.Background(), "brandkit.io")
	require.NoError(t, err)
	require.True(t, taken)
}

func TestRDAPVerifierErrorIsSurfaced(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	verifier := &RDAPVerifier{BaseURL: server.URL}
	_, err := verifier.Verify(context.Background(), "brandkit.io")
	require.Error(t, err)
}
