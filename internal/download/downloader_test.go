package download

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eximdesk/eximdesk-api/internal/domain/enum"
)

func noSleep(ctx context.Context, d time.Duration) error { return nil }

func TestDownloadAllFetchesThreeDocumentsInOrder(t *testing.T) {
	var fetched []enum.DocumentType
	saved := map[string][]byte{}

	dl := New(
		func(ctx context.Context, invoiceID string, docType enum.DocumentType) ([]byte, error) {
			fetched = append(fetched, docType)
			return []byte("%PDF-" + string(docType)), nil
		},
		func(filename string, data []byte) error {
			saved[filename] = data
			return nil
		},
		WithSleep(noSleep),
	)

	summary, err := dl.DownloadAll(context.Background(), "inv-id", "INV-2024-001")

	require.NoError(t, err)
	assert.Equal(t, []enum.DocumentType{
		enum.DocumentTypeExport,
		enum.DocumentTypeCommercial,
		enum.DocumentTypePackingList,
	}, fetched)
	assert.True(t, summary.AllSucceeded())
	assert.Contains(t, saved, "Invoice-INV-2024-001-Export.pdf")
	assert.Contains(t, saved, "Invoice-INV-2024-001-Commercial.pdf")
	assert.Contains(t, saved, "Invoice-INV-2024-001-PackingList.pdf")
}

func TestDownloadAllPausesBetweenFetchesOnly(t *testing.T) {
	var pauses []time.Duration

	dl := New(
		func(ctx context.Context, invoiceID string, docType enum.DocumentType) ([]byte, error) {
			return []byte("%PDF"), nil
		},
		func(filename string, data []byte) error { return nil },
		WithSleep(func(ctx context.Context, d time.Duration) error {
			pauses = append(pauses, d)
			return nil
		}),
	)

	_, err := dl.DownloadAll(context.Background(), "inv-id", "INV-1")

	require.NoError(t, err)
	// Two pauses for three documents, none after the last.
	require.Len(t, pauses, 2)
	assert.Equal(t, DefaultPause, pauses[0])
	assert.Equal(t, DefaultPause, pauses[1])
}

func TestDownloadAllContinuesAfterFailure(t *testing.T) {
	dl := New(
		func(ctx context.Context, invoiceID string, docType enum.DocumentType) ([]byte, error) {
			if docType == enum.DocumentTypeCommercial {
				return nil, errors.New("server error")
			}
			return []byte("%PDF"), nil
		},
		func(filename string, data []byte) error { return nil },
		WithSleep(noSleep),
	)

	summary, err := dl.DownloadAll(context.Background(), "inv-id", "INV-1")

	require.NoError(t, err)
	require.Len(t, summary.Results, 3)
	assert.False(t, summary.AllSucceeded())

	failed := summary.Failed()
	require.Len(t, failed, 1)
	assert.Equal(t, enum.DocumentTypeCommercial, failed[0].Type)
	assert.NoError(t, summary.Results[0].Err)
	assert.NoError(t, summary.Results[2].Err)
}

func TestDownloadAllRecordsSaveFailure(t *testing.T) {
	dl := New(
		func(ctx context.Context, invoiceID string, docType enum.DocumentType) ([]byte, error) {
			return []byte("%PDF"), nil
		},
		func(filename string, data []byte) error {
			if filename == "Invoice-INV-1-PackingList.pdf" {
				return errors.New("disk full")
			}
			return nil
		},
		WithSleep(noSleep),
	)

	summary, err := dl.DownloadAll(context.Background(), "inv-id", "INV-1")

	require.NoError(t, err)
	failed := summary.Failed()
	require.Len(t, failed, 1)
	assert.Equal(t, enum.DocumentTypePackingList, failed[0].Type)
}

func TestDownloadAllStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	var fetches int
	dl := New(
		func(ctx context.Context, invoiceID string, docType enum.DocumentType) ([]byte, error) {
			fetches++
			cancel()
			return []byte("%PDF"), nil
		},
		func(filename string, data []byte) error { return nil },
	)

	_, err := dl.DownloadAll(ctx, "inv-id", "INV-1")

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, fetches)
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "Invoice-INV-2024-001-Export.pdf", Filename("INV-2024-001", enum.DocumentTypeExport))
	assert.Equal(t, "Invoice-INV-2024-001-Commercial.pdf", Filename("INV-2024-001", enum.DocumentTypeCommercial))
	assert.Equal(t, "Invoice-INV-2024-001-PackingList.pdf", Filename("INV-2024-001", enum.DocumentTypePackingList))
}
