// Package interpret turns one free-text question into one structured
// filter by delegating the semantic column mapping to an LLM oracle.
package interpret

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/aequery/aequery/internal/cache"
	"github.com/aequery/aequery/internal/llm"
	"github.com/aequery/aequery/internal/model"
	"github.com/aequery/aequery/internal/schema"
)

// Options tunes an Interpreter beyond its required collaborators. The zero
// value disables caching and rate limiting.
type Options struct {
	// Cache stores interpreted filters by question hash. Sound because the
	// oracle is temperature-pinned.
	Cache    cache.Cache
	CacheTTL time.Duration

	// RequestsPerSecond paces oracle calls (0 = unlimited). Cache hits
	// bypass the limiter.
	RequestsPerSecond float64
	Burst             int

	Logger *zap.Logger
}

// Interpreter maps questions to FilterSpecs via an injected oracle.
type Interpreter struct {
	provider llm.Provider
	system   string
	cache    cache.Cache
	cacheTTL time.Duration
	limiter  *rate.Limiter
	log      *zap.Logger
}

// New creates an interpreter for one provider and one schema registry.
// The system prompt is rendered once up front; the registry is immutable,
// so the oracle input stays stable across questions.
func New(provider llm.Provider, reg *schema.Registry, opts Options) *Interpreter {
	i := &Interpreter{
		provider: provider,
		system:   BuildSystemPrompt(reg),
		cache:    opts.Cache,
		cacheTTL: opts.CacheTTL,
		log:      opts.Logger,
	}
	if i.cacheTTL == 0 {
		i.cacheTTL = 15 * time.Minute
	}
	if i.log == nil {
		i.log = zap.NewNop()
	}
	if opts.RequestsPerSecond > 0 {
		burst := opts.Burst
		if burst <= 0 {
			burst = 1
		}
		i.limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), burst)
	}
	return i
}

// SystemPrompt returns the rendered instruction payload, for inspection.
func (i *Interpreter) SystemPrompt() string {
	return i.system
}

// Interpret converts a question into a FilterSpec. Oracle failures and
// malformed output surface as *model.InterpretationError; the schema
// membership of the target column is deliberately not checked here — that
// is the executor's precondition against the actual dataset.
func (i *Interpreter) Interpret(ctx context.Context, question string) (*model.FilterSpec, error) {
	key := cache.Key(question)
	if i.cache != nil {
		if data, found := i.cache.Get(key); found {
			var spec model.FilterSpec
			if err := json.Unmarshal(data, &spec); err == nil {
				i.log.Debug("interpretation cache hit", zap.String("question", question))
				return &spec, nil
			}
		}
	}

	if i.limiter != nil {
		if err := i.limiter.Wait(ctx); err != nil {
			return nil, &model.InterpretationError{Question: question, Err: err}
		}
	}

	resp, err := i.provider.Complete(ctx, llm.CompletionRequest{
		System: i.system,
		User:   BuildUserPrompt(question),
	})
	if err != nil {
		return nil, &model.InterpretationError{Question: question, Err: err}
	}

	spec, err := ParseFilterSpec(resp.Content)
	if err != nil {
		return nil, &model.InterpretationError{Question: question, Err: err}
	}

	i.log.Debug("question interpreted",
		zap.String("question", question),
		zap.String("column", spec.Column),
		zap.String("value", spec.Value.String()),
		zap.String("match_type", spec.MatchType),
		zap.Int("tokens", resp.TokensUsed))

	if i.cache != nil {
		if data, err := json.Marshal(spec); err == nil {
			_ = i.cache.Set(key, data, i.cacheTTL)
		}
	}

	return spec, nil
}

// ParseFilterSpec extracts a FilterSpec from raw oracle output. Markdown
// code fences are stripped; non-string filter values are coerced by
// FilterValue. Output without a target_column is rejected — there is
// nothing to execute against.
func ParseFilterSpec(content string) (*model.FilterSpec, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	var spec model.FilterSpec
	if err := json.Unmarshal([]byte(content), &spec); err != nil {
		return nil, fmt.Errorf("parse oracle response: %w (response: %.200s)", err, content)
	}

	if spec.Column == "" {
		return nil, fmt.Errorf("oracle response missing target_column (response: %.200s)", content)
	}

	return &spec, nil
}
