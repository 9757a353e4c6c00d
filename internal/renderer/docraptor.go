package renderer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/SeakMengs/CardProof/internal/config"
	"github.com/SeakMengs/CardProof/internal/util"
	"go.uber.org/zap"
)

const docsPath = "/docs"

type DocRaptorRenderer struct {
	apiKey  string
	baseURL string
	// When forceTest is on, every document is submitted in test mode no
	// matter what the request asked for. The PDFs come back watermarked but
	// free, so a misconfigured deployment can never burn through the quota.
	forceTest  bool
	httpClient *http.Client
	logger     *zap.SugaredLogger
}

func NewDocRaptor(cfg config.DocRaptorConfig, logger *zap.SugaredLogger) *DocRaptorRenderer {
	// For unit test
	if logger == nil {
		logger = util.NewLogger("development")
	}

	return &DocRaptorRenderer{
		apiKey:    cfg.API_KEY,
		baseURL:   cfg.BASE_URL,
		forceTest: cfg.TEST_MODE,
		httpClient: &http.Client{
			// Rendering a multi-page print document can take a while.
			Timeout: 2 * time.Minute,
		},
		logger: logger,
	}
}

// CreateDoc submits the document and returns the PDF bytes. A single
// attempt is made; retry policy belongs to the caller. apiKey, when
// non-empty, takes precedence over the configured key.
func (r *DocRaptorRenderer) CreateDoc(ctx context.Context, apiKey string, doc Document) ([]byte, error) {
	if apiKey == "" {
		apiKey = r.apiKey
	}
	if apiKey == "" {
		return nil, fmt.Errorf("docraptor: missing API key")
	}

	if r.forceTest {
		doc.Test = true
	}

	body, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("docraptor: failed to encode document: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+docsPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("docraptor: failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	// DocRaptor authenticates with the API key as the basic auth username.
	req.SetBasicAuth(apiKey, "")

	r.logger.Debugf("Submitting document %s (test=%v) to %s", doc.Name, doc.Test, r.baseURL)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("docraptor: request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("docraptor: failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		r.logger.Errorf("DocRaptor returned status %d: %s", resp.StatusCode, data)
		return nil, fmt.Errorf("docraptor: status %d: %s", resp.StatusCode, data)
	}

	return data, nil
}
