package extractor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sirupsen/logrus"

	"qa-insights-go/internal/config"
	"qa-insights-go/internal/logger"
	"qa-insights-go/internal/types"
)

// ErrNotConfigured is returned when a live call is attempted without a gateway URL or API key.
var ErrNotConfigured = errors.New("llm gateway not configured")

// Client analyzes transcripts through an OpenAI-compatible LLM gateway.
type Client struct {
	httpClient      *http.Client
	gatewayURL      string
	apiKey          string
	model           string
	useMock         bool
	maxRetryTime    time.Duration
	initialInterval time.Duration
	log             *logger.Logger
}

func New(cfg config.LLMConfig, log *logger.Logger) *Client {
	return &Client{
		httpClient:      &http.Client{Timeout: cfg.HTTPTimeout},
		gatewayURL:      cfg.GatewayURL,
		apiKey:          cfg.APIKey,
		model:           cfg.Model,
		useMock:         cfg.UseMock,
		maxRetryTime:    cfg.MaxRetryTime,
		initialInterval: backoff.DefaultInitialInterval,
		log:             log.Component("extractor"),
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string            `json:"model"`
	Messages       []chatMessage     `json:"messages"`
	Temperature    float64           `json:"temperature"`
	ResponseFormat map[string]string `json:"response_format,omitempty"`
}

func (c *Client) chat(prompt string, temperature float64, jsonOut bool) chatRequest {
	req := chatRequest{
		Model:       c.model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: temperature,
	}
	if jsonOut {
		req.ResponseFormat = map[string]string{"type": "json_object"}
	}
	return req
}

func (c *Client) configured() error {
	if c.gatewayURL == "" || c.apiKey == "" {
		return ErrNotConfigured
	}
	return nil
}

// Analyze returns the structured analysis of one transcript for the campaign.
// Network failures and 5xx responses are retried with exponential backoff;
// 4xx responses fail immediately.
func (c *Client) Analyze(ctx context.Context, campaign types.Campaign, transcript string) (types.AnalysisResult, error) {
	if c.useMock {
		c.log.WithField("campaign", campaign).Info("mock LLM mode ON - returning deterministic analysis")
		return MockAnalysis(campaign), nil
	}
	if err := c.configured(); err != nil {
		return types.AnalysisResult{}, err
	}

	var extracted types.AnalysisResult
	err := c.call(ctx, "extract", c.chat(BuildPrompt(campaign, transcript), 0, true), func(body []byte) error {
		// choices[0].message.content first, then the first balanced object in the body
		for _, candidate := range jsonCandidates(body) {
			if candidate == "" {
				continue
			}
			var r types.AnalysisResult
			if err := json.Unmarshal([]byte(candidate), &r); err != nil {
				c.log.WithError(err).Warn("unmarshal analysis failed")
				continue
			}
			extracted = r
			return nil
		}
		return errors.New("no JSON found in LLM output")
	})
	if err != nil {
		return types.AnalysisResult{}, err
	}

	c.log.WithFields(logrus.Fields{
		"call_id":   extracted.CallDetails.CallID,
		"call_type": extracted.CallType,
	}).Info("parsed analysis")
	return extracted, nil
}

// Highlights asks the model for 3-4 manager-facing takeaways on a summary.
func (c *Client) Highlights(ctx context.Context, campaign types.Campaign, summary types.AnalyticsSummary) ([]types.Highlight, error) {
	if c.useMock {
		return MockHighlights(campaign, summary), nil
	}
	if err := c.configured(); err != nil {
		return nil, err
	}

	var out []types.Highlight
	err := c.call(ctx, "highlights", c.chat(BuildHighlightsPrompt(campaign, summary), 0.3, true), func(body []byte) error {
		for _, candidate := range jsonCandidates(body) {
			if candidate == "" {
				continue
			}
			var w struct {
				Highlights []types.Highlight `json:"highlights"`
			}
			if err := json.Unmarshal([]byte(candidate), &w); err != nil || len(w.Highlights) == 0 {
				continue
			}
			out = w.Highlights
			return nil
		}
		return errors.New("no highlights in LLM output")
	})
	if err != nil {
		return nil, err
	}
	c.log.WithField("campaign", campaign).WithField("count", len(out)).Info("generated highlights")
	return out, nil
}

// MaskPII returns the transcript with personal data replaced by placeholders
// such as [EMAIL] and [PHONE]. Agent names and call ids stay visible.
func (c *Client) MaskPII(ctx context.Context, transcript string) (string, error) {
	if c.useMock {
		return MockMask(transcript), nil
	}
	if err := c.configured(); err != nil {
		return "", err
	}

	var masked string
	err := c.call(ctx, "mask", c.chat(BuildMaskPrompt(transcript), 0, false), func(body []byte) error {
		masked = strings.TrimSpace(choiceContent(body))
		if masked == "" {
			return errors.New("empty masked transcript")
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return masked, nil
}

// call posts one chat request and hands every 2xx body to parse until it
// succeeds. Network failures, 5xx responses and parse failures are retried;
// 4xx responses are not.
func (c *Client) call(ctx context.Context, op string, payload chatRequest, parse func(body []byte) error) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode llm %s request: %w", op, err)
	}
	log := c.log.WithField("op", op)
	log.WithField("payload_len", len(data)).Debug("LLM request payload")

	attempt := 0
	do := func() error {
		attempt++
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.gatewayURL, bytes.NewReader(data))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			log.WithError(err).WithField("attempt", attempt).Warn("llm request failed")
			return err
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		log.WithField("http_status", resp.StatusCode).Debug("llm raw:\n" + string(body))

		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			return backoff.Permanent(fmt.Errorf("llm gateway returned %d", resp.StatusCode))
		}
		if resp.StatusCode >= 500 {
			return fmt.Errorf("llm gateway returned %d", resp.StatusCode)
		}
		return parse(body)
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.initialInterval
	b.MaxElapsedTime = c.maxRetryTime

	if err := backoff.Retry(do, backoff.WithContext(b, ctx)); err != nil {
		return fmt.Errorf("llm %s failed after %d attempt(s): %w", op, attempt, err)
	}
	return nil
}
