package interfaces

import "context"

// IPDFRenderer abstracts the external HTML-to-PDF conversion service.
//
// Render submits the document and blocks until the service finishes, the
// polling budget runs out, or ctx is cancelled. No retries are attempted.
type IPDFRenderer interface {
	Render(ctx context.Context, html string) ([]byte, error)
}
