package pdf

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"villaweb/internal/usecase/interfaces"

	log "github.com/sirupsen/logrus"
)

var ErrMissingPDFServiceToken = errors.New("missing PDF_SERVICE_TOKEN")
var ErrPDFRenderFailed = errors.New("pdf rendering failed")
var ErrPDFRenderTimeout = errors.New("pdf rendering timed out")

const (
	defaultServiceURL = "https://apps.abacus.ai"
	pollAttempts      = 60
	pollInterval      = time.Second
)

// AbacusRenderer converts HTML to PDF through the abacus.ai conversion
// service: one create call returning a request id, then a status poll until
// the service reports SUCCESS with a base64 payload.
type AbacusRenderer struct {
	httpClient *http.Client
	baseURL    string
	token      string
	mockMode   bool
}

var _ interfaces.IPDFRenderer = (*AbacusRenderer)(nil)

func NewAbacusRenderer(token string) (*AbacusRenderer, error) {
	if isRendererMockEnabled() {
		log.Printf("[pdf][renderer] mock mode enabled")
		return &AbacusRenderer{mockMode: true}, nil
	}

	if token == "" {
		log.Printf("[pdf][renderer] missing PDF_SERVICE_TOKEN")
		return nil, ErrMissingPDFServiceToken
	}

	baseURL := strings.TrimRight(os.Getenv("PDF_SERVICE_URL"), "/")
	if baseURL == "" {
		baseURL = defaultServiceURL
	}
	log.Printf("[pdf][renderer] conversion service client initialized url=%s", baseURL)

	return &AbacusRenderer{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    baseURL,
		token:      token,
	}, nil
}

type createRequest struct {
	DeploymentToken string     `json:"deployment_token"`
	HTMLContent     string     `json:"html_content"`
	PDFOptions      pdfOptions `json:"pdf_options"`
}

type pdfOptions struct {
	Format          string     `json:"format"`
	Margin          pdfMargins `json:"margin"`
	PrintBackground bool       `json:"print_background"`
}

type pdfMargins struct {
	Top    string `json:"top"`
	Right  string `json:"right"`
	Bottom string `json:"bottom"`
	Left   string `json:"left"`
}

type createResponse struct {
	RequestID string `json:"request_id"`
}

type statusRequest struct {
	RequestID       string `json:"request_id"`
	DeploymentToken string `json:"deployment_token"`
}

type statusResponse struct {
	Status string `json:"status"`
	Result *struct {
		Result string `json:"result"`
	} `json:"result"`
}

func (r *AbacusRenderer) Render(ctx context.Context, html string) ([]byte, error) {
	if r != nil && r.mockMode {
		log.Printf("[pdf][renderer] mock render html_len=%d", len(html))
		return []byte("%PDF-1.4\n%mock\n" + time.Now().UTC().Format(time.RFC3339Nano)), nil
	}

	requestID, err := r.createRequest(ctx, html)
	if err != nil {
		return nil, err
	}
	log.Printf("[pdf][renderer] conversion requested request_id=%s", requestID)

	return r.poll(ctx, requestID)
}

func (r *AbacusRenderer) createRequest(ctx context.Context, html string) (string, error) {
	payload := createRequest{
		DeploymentToken: r.token,
		HTMLContent:     html,
		PDFOptions: pdfOptions{
			Format: "A4",
			Margin: pdfMargins{
				Top:    "20mm",
				Right:  "20mm",
				Bottom: "20mm",
				Left:   "20mm",
			},
			PrintBackground: true,
		},
	}

	var out createResponse
	if err := r.post(ctx, "/api/createConvertHtmlToPdfRequest", payload, &out); err != nil {
		log.Errorf("[pdf][renderer] create request failed err=%v", err)
		return "", err
	}
	if out.RequestID == "" {
		log.Errorf("[pdf][renderer] create response missing request id")
		return "", ErrPDFRenderFailed
	}
	return out.RequestID, nil
}

func (r *AbacusRenderer) poll(ctx context.Context, requestID string) ([]byte, error) {
	for attempt := 0; attempt < pollAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(pollInterval):
		}

		var out statusResponse
		if err := r.post(ctx, "/api/getConvertHtmlToPdfStatus", statusRequest{
			RequestID:       requestID,
			DeploymentToken: r.token,
		}, &out); err != nil {
			log.Errorf("[pdf][renderer] status poll failed request_id=%s err=%v", requestID, err)
			return nil, err
		}

		switch out.Status {
		case "SUCCESS":
			if out.Result == nil || out.Result.Result == "" {
				log.Errorf("[pdf][renderer] success without payload request_id=%s", requestID)
				return nil, ErrPDFRenderFailed
			}
			content, err := base64.StdEncoding.DecodeString(out.Result.Result)
			if err != nil {
				log.Errorf("[pdf][renderer] payload decode failed request_id=%s err=%v", requestID, err)
				return nil, err
			}
			return content, nil
		case "FAILED":
			log.Errorf("[pdf][renderer] conversion failed request_id=%s", requestID)
			return nil, ErrPDFRenderFailed
		}
	}

	log.Errorf("[pdf][renderer] conversion timed out request_id=%s", requestID)
	return nil, ErrPDFRenderTimeout
}

func (r *AbacusRenderer) post(ctx context.Context, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("conversion service returned status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func isRendererMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("PDF_RENDERER_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
