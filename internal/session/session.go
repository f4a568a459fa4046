// Package session owns the long-lived process state — the schema registry,
// the loaded dataset, and the interpreter — and exposes the single public
// entry point Ask. Sessions are independent: several can coexist in one
// process, each bound to its own dataset.
package session

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/aequery/aequery/internal/cache"
	"github.com/aequery/aequery/internal/dataset"
	"github.com/aequery/aequery/internal/interpret"
	"github.com/aequery/aequery/internal/llm"
	"github.com/aequery/aequery/internal/model"
	"github.com/aequery/aequery/internal/query"
	"github.com/aequery/aequery/internal/schema"
)

// FilterInterpreter maps free text to a structured filter. Satisfied by
// *interpret.Interpreter; tests substitute a stub returning canned specs so
// the matching logic can be verified without any oracle.
type FilterInterpreter interface {
	Interpret(ctx context.Context, question string) (*model.FilterSpec, error)
}

// Session processes questions end to end: interpret, execute, assemble.
// Strictly sequential, one question at a time.
type Session struct {
	registry *schema.Registry
	table    *dataset.Table
	interp   FilterInterpreter
	executor *query.Executor
	log      *zap.Logger
}

// New wires a session from configuration: builds the configured LLM
// provider, the interpreter (with cache and rate limiter per config), and
// the executor over the given registry and table.
func New(cfg *model.Config, reg *schema.Registry, table *dataset.Table, log *zap.Logger) (*Session, error) {
	provider, err := llm.NewProvider(llm.Config{
		Provider:  cfg.LLM.Provider,
		Model:     cfg.LLM.Model,
		APIKey:    cfg.LLM.APIKey,
		BaseURL:   cfg.LLM.BaseURL,
		Timeout:   cfg.LLM.Timeout,
		MaxTokens: cfg.LLM.MaxTokens,
	})
	if err != nil {
		return nil, err
	}

	opts := interpret.Options{
		RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
		Burst:             cfg.RateLimit.Burst,
		Logger:            log,
	}
	if cfg.Cache.Enabled {
		opts.Cache = cache.NewMemoryCache(cfg.Cache.TTL, 10*time.Minute)
		opts.CacheTTL = cfg.Cache.TTL
	}

	return NewWithInterpreter(reg, table, interpret.New(provider, reg, opts), cfg.Data.SubjectColumn, log), nil
}

// NewWithInterpreter wires a session around an existing interpreter.
func NewWithInterpreter(reg *schema.Registry, table *dataset.Table, interp FilterInterpreter, subjectColumn string, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{
		registry: reg,
		table:    table,
		interp:   interp,
		executor: query.NewExecutor(subjectColumn),
		log:      log,
	}
}

// Registry returns the session's schema registry.
func (s *Session) Registry() *schema.Registry {
	return s.registry
}

// Ask processes one question end to end and returns the assembled
// response. Errors propagate as-is: *model.InterpretationError from the
// oracle boundary, *model.UnknownColumnError from execution. A failed
// question leaves the session untouched for the next one.
func (s *Session) Ask(ctx context.Context, question string) (*model.Response, error) {
	spec, err := s.interp.Interpret(ctx, question)
	if err != nil {
		return nil, err
	}

	result, err := s.executor.Execute(spec, s.table)
	if err != nil {
		return nil, err
	}

	s.log.Debug("question answered",
		zap.String("question", question),
		zap.String("column", spec.Column),
		zap.Int("subjects", result.SubjectCount),
		zap.Int("records", result.TotalRecords))

	return assemble(question, spec, result), nil
}

// assemble is the response assembler: pure combination, no logic.
func assemble(question string, spec *model.FilterSpec, result *model.QueryResult) *model.Response {
	return &model.Response{
		Question: question,
		Query:    *spec,
		Results:  *result,
	}
}
