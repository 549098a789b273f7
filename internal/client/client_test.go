package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eximdesk/eximdesk-api/internal/domain/entity"
	"github.com/eximdesk/eximdesk-api/internal/domain/enum"
	"github.com/eximdesk/eximdesk-api/internal/draft"
	"github.com/eximdesk/eximdesk-api/internal/presentation/http/dto/request"
)

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func okEnvelope(data interface{}) map[string]interface{} {
	return map[string]interface{}{
		"success": true,
		"message": "ok",
		"data":    data,
	}
}

func signedInStore() *MemorySessionStore {
	store := &MemorySessionStore{}
	_ = store.Save(&Session{
		AccessToken:  "access-1",
		RefreshToken: "refresh-1",
		User:         UserInfo{Username: "admin"},
	})
	return store
}

func TestSignInStoresSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/auth/signin", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "admin", body["username"])

		writeJSON(w, http.StatusOK, okEnvelope(map[string]interface{}{
			"user":          map[string]string{"id": "u-1", "username": "admin"},
			"access_token":  "access-1",
			"refresh_token": "refresh-1",
			"token_type":    "Bearer",
		}))
	}))
	defer srv.Close()

	store := &MemorySessionStore{}
	c := New(srv.URL, store)

	session, err := c.SignIn(context.Background(), "admin", "secret")

	require.NoError(t, err)
	assert.Equal(t, "access-1", session.AccessToken)
	assert.Equal(t, "admin", session.User.Username)

	stored, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "refresh-1", stored.RefreshToken)
}

func TestRequestsCarryBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer access-1", r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, okEnvelope(map[string]interface{}{
			"items":      []interface{}{},
			"pagination": map[string]interface{}{"currentPage": 1},
		}))
	}))
	defer srv.Close()

	c := New(srv.URL, signedInStore())

	_, err := c.ListInvoices(context.Background(), InvoiceListParams{})
	require.NoError(t, err)
}

func TestUnauthorizedWithoutSession(t *testing.T) {
	c := New("http://unreachable.invalid", &MemorySessionStore{})

	_, err := c.ListInvoices(context.Background(), InvoiceListParams{})

	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestRefreshAndRetryOnceOn401(t *testing.T) {
	var mu sync.Mutex
	var listCalls, refreshCalls int

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()

		switch r.URL.Path {
		case "/api/v1/invoices":
			listCalls++
			if r.Header.Get("Authorization") != "Bearer access-2" {
				writeJSON(w, http.StatusUnauthorized, map[string]interface{}{
					"success": false, "message": "Token expired",
				})
				return
			}
			writeJSON(w, http.StatusOK, okEnvelope(map[string]interface{}{
				"items":      []interface{}{},
				"pagination": map[string]interface{}{"currentPage": 1},
			}))
		case "/api/v1/auth/refresh":
			refreshCalls++
			var body map[string]string
			_ = json.NewDecoder(r.Body).Decode(&body)
			assert.Equal(t, "refresh-1", body["refresh_token"])
			writeJSON(w, http.StatusOK, okEnvelope(map[string]interface{}{
				"access_token":  "access-2",
				"refresh_token": "refresh-2",
			}))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	store := signedInStore()
	c := New(srv.URL, store)

	_, err := c.ListInvoices(context.Background(), InvoiceListParams{})

	require.NoError(t, err)
	assert.Equal(t, 2, listCalls)
	assert.Equal(t, 1, refreshCalls)

	stored, _ := store.Load()
	require.NotNil(t, stored)
	assert.Equal(t, "access-2", stored.AccessToken)
	assert.Equal(t, "refresh-2", stored.RefreshToken)
	// User info survives a token refresh.
	assert.Equal(t, "admin", stored.User.Username)
}

func TestFailedRefreshClearsSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/invoices":
			writeJSON(w, http.StatusUnauthorized, map[string]interface{}{
				"success": false, "message": "Token expired",
			})
		case "/api/v1/auth/refresh":
			writeJSON(w, http.StatusUnauthorized, map[string]interface{}{
				"success": false, "message": "Invalid refresh token",
			})
		}
	}))
	defer srv.Close()

	store := signedInStore()
	c := New(srv.URL, store)

	_, err := c.ListInvoices(context.Background(), InvoiceListParams{})

	require.Error(t, err)
	stored, _ := store.Load()
	assert.Nil(t, stored)
}

func TestDownloadDocumentRefreshesOn401(t *testing.T) {
	var mu sync.Mutex
	var pdfCalls, refreshCalls int

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()

		switch r.URL.Path {
		case "/api/v1/invoices/inv-1/pdf":
			pdfCalls++
			if r.Header.Get("Authorization") != "Bearer access-2" {
				writeJSON(w, http.StatusUnauthorized, map[string]interface{}{
					"success": false, "message": "Token expired",
				})
				return
			}
			w.Header().Set("Content-Type", "application/pdf")
			_, _ = w.Write([]byte("%PDF-1.4"))
		case "/api/v1/auth/refresh":
			refreshCalls++
			writeJSON(w, http.StatusOK, okEnvelope(map[string]interface{}{
				"access_token":  "access-2",
				"refresh_token": "refresh-2",
			}))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	store := signedInStore()
	c := New(srv.URL, store)

	data, err := c.DownloadDocument(context.Background(), "inv-1", enum.DocumentTypeExport)

	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(data))
	assert.Equal(t, 2, pdfCalls)
	assert.Equal(t, 1, refreshCalls)

	stored, _ := store.Load()
	require.NotNil(t, stored)
	assert.Equal(t, "access-2", stored.AccessToken)
}

func TestDownloadDocumentClearsSessionWhenRefreshFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/invoices/inv-1/pdf":
			writeJSON(w, http.StatusUnauthorized, map[string]interface{}{
				"success": false, "message": "Token expired",
			})
		case "/api/v1/auth/refresh":
			writeJSON(w, http.StatusUnauthorized, map[string]interface{}{
				"success": false, "message": "Invalid refresh token",
			})
		}
	}))
	defer srv.Close()

	store := signedInStore()
	c := New(srv.URL, store)

	_, err := c.DownloadDocument(context.Background(), "inv-1", enum.DocumentTypeExport)

	require.Error(t, err)
	stored, _ := store.Load()
	assert.Nil(t, stored)
}

func TestCreateInvoiceAcceptsObjectResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusCreated, okEnvelope(map[string]interface{}{
			"invoiceNo": "INV-1",
		}))
	}))
	defer srv.Close()

	c := New(srv.URL, signedInStore())

	inv, err := c.CreateInvoice(context.Background(), &request.CreateInvoiceRequest{InvoiceNo: "INV-1"})

	require.NoError(t, err)
	assert.Equal(t, "INV-1", inv.InvoiceNo)
}

func TestCreateInvoiceAcceptsSingleElementArrayResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusCreated, okEnvelope([]map[string]interface{}{
			{"invoiceNo": "INV-2"},
		}))
	}))
	defer srv.Close()

	c := New(srv.URL, signedInStore())

	inv, err := c.CreateInvoice(context.Background(), &request.CreateInvoiceRequest{InvoiceNo: "INV-2"})

	require.NoError(t, err)
	assert.Equal(t, "INV-2", inv.InvoiceNo)
}

func TestEditRoundTrip(t *testing.T) {
	invoiceID := uuid.New()
	created := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

	var gotPayload request.UpdateInvoiceRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet:
			writeJSON(w, http.StatusOK, okEnvelope(entity.Invoice{
				ID:          invoiceID,
				InvoiceNo:   "INV-2024-007",
				CreatedAt:   created,
				BankName:    "ICICI Bank",
				AccountNo:   "000405001234",
				SwiftCode:   "ICICINBB",
				FreightCost: 250,
				Items: []entity.InvoiceItem{
					{Description: "Forged couplings", Quantity: 100, UnitPriceUsd: 3.2, Currency: "EUR", CurrencyCurrentPrice: 90.5},
				},
			}))
		case r.Method == http.MethodPut:
			require.Equal(t, "/api/v1/invoices/"+invoiceID.String(), r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
			writeJSON(w, http.StatusOK, okEnvelope(entity.Invoice{ID: invoiceID, InvoiceNo: gotPayload.InvoiceNo}))
		}
	}))
	defer srv.Close()

	c := New(srv.URL, signedInStore())

	inv, err := c.GetInvoice(context.Background(), invoiceID.String())
	require.NoError(t, err)

	d := draft.FromInvoice(inv, draft.ModeEdit)
	require.NoError(t, d.SetField("freightCost", "300"))
	require.NoError(t, d.UpdateItem(0, func(item draft.LineItem) draft.LineItem {
		item.Quantity = "120"
		return item
	}))

	payload, warnings := draft.ToPayload(d)
	assert.Empty(t, warnings)

	updated, err := c.UpdateInvoice(context.Background(), invoiceID.String(), payload)

	require.NoError(t, err)
	assert.Equal(t, "INV-2024-007", updated.InvoiceNo)
	assert.Equal(t, 300.0, gotPayload.FreightCost)
	// Bank fields keep their wire names through the round-trip.
	assert.Equal(t, "ICICI Bank", gotPayload.BankName)
	assert.Equal(t, "000405001234", gotPayload.AccountNo)
	assert.Equal(t, "ICICINBB", gotPayload.SwiftCode)
	// The zero stored date falls back to the creation timestamp.
	assert.Equal(t, "2024-06-01", gotPayload.InvoiceDate)
	require.Len(t, gotPayload.Items, 1)
	assert.Equal(t, 120.0, gotPayload.Items[0].Quantity)
	assert.Equal(t, 3.2, gotPayload.Items[0].UnitPriceUsd)
	assert.Equal(t, "EUR", gotPayload.Items[0].Currency)
}

func TestListInvoicesMapsTypeLabel(t *testing.T) {
	var gotType, gotSearch string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotType = r.URL.Query().Get("type")
		gotSearch = r.URL.Query().Get("search")
		writeJSON(w, http.StatusOK, okEnvelope(map[string]interface{}{
			"items":      []interface{}{},
			"pagination": map[string]interface{}{"currentPage": 1},
		}))
	}))
	defer srv.Close()

	c := New(srv.URL, signedInStore())

	tests := []struct {
		label string
		want  string
	}{
		{"Export", "EXPORT"},
		{"Commercial", "COMMERCIAL"},
		{"Packing List", "PACKAGING_LIST"},
	}

	for _, tt := range tests {
		_, err := c.ListInvoices(context.Background(), InvoiceListParams{Search: "INV-001", Type: tt.label})
		require.NoError(t, err)
		assert.Equal(t, tt.want, gotType)
		assert.Equal(t, "INV-001", gotSearch)
	}
}

func TestListInvoicesRejectsUnknownType(t *testing.T) {
	c := New("http://unreachable.invalid", signedInStore())

	_, err := c.ListInvoices(context.Background(), InvoiceListParams{Type: "Proforma"})

	assert.Error(t, err)
}

func TestAPIErrorCarriesServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusConflict, map[string]interface{}{
			"success": false,
			"message": "Invoice number already exists",
		})
	}))
	defer srv.Close()

	c := New(srv.URL, signedInStore())

	_, err := c.CreateInvoice(context.Background(), &request.CreateInvoiceRequest{InvoiceNo: "INV-1"})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, "Invoice number already exists", apiErr.Message)
}
