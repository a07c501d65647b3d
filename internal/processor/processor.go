// internal/processor/processor.go
package processor

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"qa-insights-go/internal/cache"
	"qa-insights-go/internal/logger"
	"qa-insights-go/internal/types"
)

// Analyzer turns one transcript into a structured analysis.
type Analyzer interface {
	Analyze(ctx context.Context, campaign types.Campaign, transcript string) (types.AnalysisResult, error)
}

// Masker replaces personal data in a transcript.
type Masker interface {
	MaskPII(ctx context.Context, transcript string) (string, error)
}

// ErrEmptyTranscript is returned for blank uploads; they are never sent to the analyzer.
var ErrEmptyTranscript = errors.New("transcript is empty")

// Processor is the ingestion boundary: hash, cache lookup, analysis, ResultItem.
type Processor struct {
	analyzer    Analyzer
	masker      Masker
	cache       *cache.AnalysisCache
	callTimeout time.Duration
	workers     int
	log         *logger.Logger
}

type Option func(*Processor)

// WithCallTimeout bounds each transcript's analysis, retries included.
func WithCallTimeout(d time.Duration) Option {
	return func(p *Processor) { p.callTimeout = d }
}

// WithMasker masks banking transcripts before they are hashed, analyzed or stored.
func WithMasker(m Masker) Option {
	return func(p *Processor) { p.masker = m }
}

// WithWorkers sets how many transcripts ProcessBatch analyzes at once.
func WithWorkers(n int) Option {
	return func(p *Processor) {
		if n > 0 {
			p.workers = n
		}
	}
}

func New(analyzer Analyzer, c *cache.AnalysisCache, log *logger.Logger, opts ...Option) *Processor {
	p := &Processor{
		analyzer:    analyzer,
		cache:       c,
		callTimeout: 60 * time.Second,
		workers:     4,
		log:         log.Component("processor"),
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// ContentHash is the hex SHA-256 of a transcript; it keys the cache and all annotations.
func ContentHash(transcript string) string {
	sum := sha256.Sum256([]byte(transcript))
	return hex.EncodeToString(sum[:])
}

// Process analyzes one transcript, reusing a cached analysis of identical content.
// Banking transcripts are masked first when a Masker is set, so the hash, the
// analysis and the stored text all follow the masked content.
// Cache failures are logged and never fail the call.
func (p *Processor) Process(ctx context.Context, campaign types.Campaign, fileName, transcript string) (types.ResultItem, error) {
	if strings.TrimSpace(transcript) == "" {
		return types.ResultItem{}, ErrEmptyTranscript
	}

	callCtx, cancel := context.WithTimeout(ctx, p.callTimeout)
	defer cancel()

	if campaign == types.CampaignBanking && p.masker != nil {
		masked, err := p.masker.MaskPII(callCtx, transcript)
		if err != nil {
			return types.ResultItem{}, fmt.Errorf("mask %s: %w", fileName, err)
		}
		transcript = masked
	}

	hash := ContentHash(transcript)
	log := p.log.WithField("file_name", fileName).WithField("content_hash", hash).WithField("campaign", campaign)
	item := types.ResultItem{FileName: fileName, ContentHash: hash, TranscriptContent: transcript}

	if p.cache != nil {
		cached, ok, err := p.cache.Get(ctx, campaign, hash)
		if err != nil {
			log.WithError(err).Warn("analysis cache read failed")
		}
		if ok {
			log.Info("analysis cache hit")
			item.Result = cached
			return item, nil
		}
	}

	start := time.Now()
	result, err := p.analyzer.Analyze(callCtx, campaign, transcript)
	if err != nil {
		return types.ResultItem{}, fmt.Errorf("analyze %s: %w", fileName, err)
	}
	log.WithField("duration_ms", time.Since(start).Milliseconds()).Info("transcript analyzed")

	if p.cache != nil {
		if err := p.cache.Set(ctx, campaign, hash, result); err != nil {
			log.WithError(err).Warn("analysis cache write failed")
		}
	}

	item.Result = result
	return item, nil
}

// Upload is one transcript file submitted for analysis.
type Upload struct {
	FileName   string `json:"fileName"`
	Transcript string `json:"transcript"`
}

// BatchResult pairs an upload with its outcome; exactly one of Item and Error is set.
type BatchResult struct {
	FileName string            `json:"fileName"`
	Item     *types.ResultItem `json:"item,omitempty"`
	Error    string            `json:"error,omitempty"`
}

// ProcessBatch analyzes uploads concurrently and returns outcomes in upload order.
// One failed upload does not stop the others.
func (p *Processor) ProcessBatch(ctx context.Context, campaign types.Campaign, uploads []Upload) []BatchResult {
	out := make([]BatchResult, len(uploads))
	sem := make(chan struct{}, p.workers)
	var wg sync.WaitGroup

	for i, u := range uploads {
		wg.Add(1)
		go func(i int, u Upload) {
			defer wg.Done()
			out[i].FileName = u.FileName

			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
				out[i].Error = ctx.Err().Error()
				return
			}
			defer func() { <-sem }()

			item, err := p.Process(ctx, campaign, u.FileName, u.Transcript)
			if err != nil {
				p.log.WithError(err).WithField("file_name", u.FileName).Warn("batch item failed")
				out[i].Error = err.Error()
				return
			}
			out[i].Item = &item
		}(i, u)
	}
	wg.Wait()
	return out
}
