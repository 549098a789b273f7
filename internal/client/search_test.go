package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchReturnsLatestResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, okEnvelope(map[string]interface{}{
			"items": []map[string]interface{}{
				{"invoiceNo": "INV-" + r.URL.Query().Get("search")},
			},
			"pagination": map[string]interface{}{"currentPage": 1},
		}))
	}))
	defer srv.Close()

	s := NewSearcher(New(srv.URL, signedInStore()))

	result, err := s.Search(context.Background(), InvoiceListParams{Search: "42"})

	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "INV-42", result.Items[0].InvoiceNo)
}

func TestSearchDiscardsStaleResponse(t *testing.T) {
	slowArrived := make(chan struct{})
	release := make(chan struct{})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("search") == "slow" {
			close(slowArrived)
			<-release
		}
		writeJSON(w, http.StatusOK, okEnvelope(map[string]interface{}{
			"items": []map[string]interface{}{
				{"invoiceNo": "INV-" + r.URL.Query().Get("search")},
			},
			"pagination": map[string]interface{}{"currentPage": 1},
		}))
	}))
	defer srv.Close()

	s := NewSearcher(New(srv.URL, signedInStore()))

	slowDone := make(chan error, 1)
	go func() {
		_, err := s.Search(context.Background(), InvoiceListParams{Search: "slow"})
		slowDone <- err
	}()

	// Only issue the newer query once the older one is in flight.
	<-slowArrived

	fast, err := s.Search(context.Background(), InvoiceListParams{Search: "fast"})
	require.NoError(t, err)
	require.Len(t, fast.Items, 1)
	assert.Equal(t, "INV-fast", fast.Items[0].InvoiceNo)

	close(release)
	assert.ErrorIs(t, <-slowDone, ErrStaleResult)
}
