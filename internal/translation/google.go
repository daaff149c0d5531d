package translation

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/AKC07-Dev/English-Text-Sentiment-Analysis-stage-2/internal/metrics"
)

// DefaultBaseURL is the public Google Translate endpoint used by the gtx client.
const DefaultBaseURL = "https://translate.googleapis.com/translate_a/single"

// GoogleConfig holds configuration for the Google gateway.
type GoogleConfig struct {
	BaseURL string
	// Timeout of zero means requests wait indefinitely.
	Timeout time.Duration
}

// GoogleGateway talks to the translate_a/single endpoint.
type GoogleGateway struct {
	client  *resty.Client
	baseURL string
	metrics *metrics.Metrics
}

// NewGoogleGateway creates a gateway. m may be nil.
func NewGoogleGateway(cfg GoogleConfig, m *metrics.Metrics) *GoogleGateway {
	client := resty.New()
	if cfg.Timeout > 0 {
		client.SetTimeout(cfg.Timeout)
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &GoogleGateway{client: client, baseURL: baseURL, metrics: m}
}

type googleResult struct {
	Translation string
	Language    string
}

// DetectLanguage returns the source language code reported by the service.
func (g *GoogleGateway) DetectLanguage(ctx context.Context, text string) (string, error) {
	res, err := g.query(ctx, text)
	g.metrics.ObserveTranslation("detect", err)
	if err != nil {
		return "", err
	}
	return res.Language, nil
}

// TranslateToEnglish returns the English translation of text.
func (g *GoogleGateway) TranslateToEnglish(ctx context.Context, text string) (string, error) {
	res, err := g.query(ctx, text)
	g.metrics.ObserveTranslation("translate", err)
	if err != nil {
		return "", err
	}
	return res.Translation, nil
}

func (g *GoogleGateway) query(ctx context.Context, text string) (*googleResult, error) {
	var out googleResponse
	resp, err := g.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"client": "gtx",
			"sl":     "auto",
			"tl":     "en",
			"dt":     "t",
			"q":      text,
		}).
		ForceContentType("application/json").
		SetResult(&out).
		Get(g.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to call translate API: %w", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("translate API error: status %d", resp.StatusCode())
	}
	return out.parse()
}

// googleResponse is the positional array returned by translate_a/single:
// element 0 lists [translated, original, ...] segments, element 2 is the detected source language.
type googleResponse []json.RawMessage

func (r googleResponse) parse() (*googleResult, error) {
	if len(r) < 3 {
		return nil, fmt.Errorf("unexpected translate response: %d elements", len(r))
	}

	var segments [][]interface{}
	if err := json.Unmarshal(r[0], &segments); err != nil {
		return nil, fmt.Errorf("decode translation segments: %w", err)
	}
	var sb strings.Builder
	for _, seg := range segments {
		if len(seg) == 0 {
			continue
		}
		if s, ok := seg[0].(string); ok {
			sb.WriteString(s)
		}
	}

	var lang string
	if err := json.Unmarshal(r[2], &lang); err != nil {
		return nil, fmt.Errorf("decode detected language: %w", err)
	}

	return &googleResult{Translation: sb.String(), Language: lang}, nil
}
