package usecase

import (
	"context"
	"errors"

	"villaweb/internal/domain/entities"
	"villaweb/internal/usecase/interfaces"

	log "github.com/sirupsen/logrus"
)

var ErrPDFRendererNotConfigured = errors.New("pdf renderer not configured")

// ExportedPDF is the rendered document plus its download filename.
type ExportedPDF struct {
	Filename string
	Content  []byte
}

// IQuotePDFUseCase builds and renders the printable quote document.
type IQuotePDFUseCase interface {
	Export(ctx context.Context, key string) (ExportedPDF, error)
}

type QuotePDFUseCase struct {
	quotes   IQuoteUseCase
	renderer interfaces.IPDFRenderer
}

var _ IQuotePDFUseCase = (*QuotePDFUseCase)(nil)

func NewQuotePDFUseCase(quotes IQuoteUseCase, renderer interfaces.IPDFRenderer) *QuotePDFUseCase {
	return &QuotePDFUseCase{quotes: quotes, renderer: renderer}
}

// Export resolves the quote by id or token, renders it through the external
// conversion service and records a PDF_DOWNLOADED event. The event write is
// best-effort; the download is never blocked by it.
func (u *QuotePDFUseCase) Export(ctx context.Context, key string) (ExportedPDF, error) {
	if u.renderer == nil {
		log.Errorf("[quote][pdf] renderer not configured")
		return ExportedPDF{}, ErrPDFRendererNotConfigured
	}

	detail, err := u.quotes.GetByIDOrToken(ctx, key, "")
	if err != nil {
		return ExportedPDF{}, err
	}

	html, err := buildQuoteHTML(detail)
	if err != nil {
		log.Errorf("[quote][pdf] document build failed id=%s err=%v", detail.Quote.ID, err)
		return ExportedPDF{}, err
	}

	log.Printf("[quote][pdf] render start id=%s folio=%s", detail.Quote.ID, detail.Quote.Folio)
	content, err := u.renderer.Render(ctx, html)
	if err != nil {
		log.Errorf("[quote][pdf] render failed id=%s err=%v", detail.Quote.ID, err)
		return ExportedPDF{}, err
	}
	log.Printf("[quote][pdf] render success id=%s bytes=%d", detail.Quote.ID, len(content))

	// Best-effort audit; RecordEvent swallows append failures itself.
	if err := u.quotes.RecordEvent(ctx, detail.Quote.ID, entities.EventPDFDownloaded, map[string]string{"source": "public"}); err != nil {
		log.Errorf("[quote][pdf] download event failed id=%s err=%v", detail.Quote.ID, err)
	}

	return ExportedPDF{
		Filename: "Cotizacion-" + detail.Quote.Folio + ".pdf",
		Content:  content,
	}, nil
}
