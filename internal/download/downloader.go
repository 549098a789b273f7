// Package download drives the sequential retrieval of the three PDF
// renderings of an invoice (export, commercial, packing list).
package download

import (
	"context"
	"fmt"
	"time"

	"github.com/eximdesk/eximdesk-api/internal/domain/enum"
)

// DefaultPause is the delay inserted between consecutive document fetches so
// the server and the receiving side are not hit with three requests at once.
const DefaultPause = 500 * time.Millisecond

// FetchFunc retrieves the rendered PDF bytes for one document type of an
// invoice.
type FetchFunc func(ctx context.Context, invoiceID string, docType enum.DocumentType) ([]byte, error)

// SaveFunc persists one fetched document under the given filename.
type SaveFunc func(filename string, data []byte) error

// Result records the outcome for a single document.
type Result struct {
	Type     enum.DocumentType
	Filename string
	Err      error
}

// Summary aggregates the per-document outcomes of one download run.
type Summary struct {
	Results []Result
}

// Failed returns the results that ended in an error.
func (s Summary) Failed() []Result {
	var failed []Result
	for _, r := range s.Results {
		if r.Err != nil {
			failed = append(failed, r)
		}
	}
	return failed
}

// AllSucceeded reports whether every document was fetched and saved.
func (s Summary) AllSucceeded() bool {
	return len(s.Failed()) == 0
}

// Downloader fetches the three invoice documents in a fixed order with a
// pause between requests. Each document is best-effort: a failure is recorded
// and the run continues with the next one.
type Downloader struct {
	fetch FetchFunc
	save  SaveFunc
	pause time.Duration
	sleep func(context.Context, time.Duration) error
}

// Option configures a Downloader.
type Option func(*Downloader)

// WithPause overrides the delay between consecutive fetches.
func WithPause(d time.Duration) Option {
	return func(dl *Downloader) {
		dl.pause = d
	}
}

// WithSleep overrides the sleep function. Tests use this to observe pacing
// without waiting.
func WithSleep(sleep func(context.Context, time.Duration) error) Option {
	return func(dl *Downloader) {
		dl.sleep = sleep
	}
}

// New creates a Downloader with the default pause.
func New(fetch FetchFunc, save SaveFunc, opts ...Option) *Downloader {
	dl := &Downloader{
		fetch: fetch,
		save:  save,
		pause: DefaultPause,
		sleep: sleepContext,
	}
	for _, opt := range opts {
		opt(dl)
	}
	return dl
}

// DownloadAll fetches the export invoice, commercial invoice and packing list
// for one invoice, in that order, pausing between requests. The invoice
// number is only used to build the filenames.
func (dl *Downloader) DownloadAll(ctx context.Context, invoiceID, invoiceNo string) (Summary, error) {
	var summary Summary

	types := enum.AllDocumentTypes()
	for i, docType := range types {
		if i > 0 {
			if err := dl.sleep(ctx, dl.pause); err != nil {
				return summary, err
			}
		}

		result := Result{
			Type:     docType,
			Filename: Filename(invoiceNo, docType),
		}

		data, err := dl.fetch(ctx, invoiceID, docType)
		if err != nil {
			result.Err = fmt.Errorf("fetch %s: %w", docType.Label(), err)
			summary.Results = append(summary.Results, result)
			continue
		}

		if err := dl.save(result.Filename, data); err != nil {
			result.Err = fmt.Errorf("save %s: %w", result.Filename, err)
		}
		summary.Results = append(summary.Results, result)
	}

	return summary, nil
}

// Filename builds the download filename for one document of an invoice.
func Filename(invoiceNo string, docType enum.DocumentType) string {
	return fmt.Sprintf("Invoice-%s-%s.pdf", invoiceNo, docType.Label())
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
