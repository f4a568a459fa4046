package interpret

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aequery/aequery/internal/cache"
	"github.com/aequery/aequery/internal/llm"
	"github.com/aequery/aequery/internal/model"
	"github.com/aequery/aequery/internal/schema"
)

// stubProvider returns canned content and records every request it sees.
type stubProvider struct {
	content  string
	err      error
	requests []llm.CompletionRequest
}

func (s *stubProvider) Name() string { return "stub" }

func (s *stubProvider) Complete(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	s.requests = append(s.requests, req)
	if s.err != nil {
		return nil, s.err
	}
	return &llm.CompletionResponse{Content: s.content, Model: "stub"}, nil
}

func (s *stubProvider) IsAvailable(ctx context.Context) bool { return true }

func TestInterpret_Success(t *testing.T) {
	stub := &stubProvider{
		content: `{"target_column":"AESEV","filter_value":"SEVERE","match_type":"exact","reasoning":"severity question"}`,
	}
	interp := New(stub, schema.Default(), Options{})

	spec, err := interp.Interpret(context.Background(), "How many patients had severe adverse events?")
	require.NoError(t, err)

	assert.Equal(t, "AESEV", spec.Column)
	assert.Equal(t, "SEVERE", spec.Value.String())
	assert.Equal(t, model.MatchExact, spec.MatchType)
	assert.Equal(t, "severity question", spec.Reasoning)
}

func TestInterpret_PromptContents(t *testing.T) {
	stub := &stubProvider{
		content: `{"target_column":"AETERM","filter_value":"headache","match_type":"contains"}`,
	}
	reg := schema.Default()
	interp := New(stub, reg, Options{})

	_, err := interp.Interpret(context.Background(), "Which patients experienced headache?")
	require.NoError(t, err)

	require.Len(t, stub.requests, 1)
	req := stub.requests[0]

	// Instruction payload carries the rule block and the full schema rendering
	assert.Contains(t, req.System, reg.Render())
	assert.Contains(t, req.System, "use AESEV column with UPPERCASE values")
	assert.Contains(t, req.System, `"target_column"`)
	assert.Contains(t, req.User, "Which patients experienced headache?")
}

func TestInterpret_EmptyQuestionPassedThrough(t *testing.T) {
	stub := &stubProvider{
		content: `{"target_column":"AETERM","filter_value":"","match_type":"contains"}`,
	}
	interp := New(stub, schema.Default(), Options{})

	_, err := interp.Interpret(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, stub.requests, 1)
}

func TestInterpret_ProviderError(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	stub := &stubProvider{err: cause}
	interp := New(stub, schema.Default(), Options{})

	_, err := interp.Interpret(context.Background(), "anything")
	require.Error(t, err)

	var interpErr *model.InterpretationError
	require.True(t, errors.As(err, &interpErr))
	assert.Equal(t, "anything", interpErr.Question)
	assert.ErrorIs(t, err, cause)
}

func TestInterpret_MalformedJSON(t *testing.T) {
	stub := &stubProvider{content: "the answer is AESEV"}
	interp := New(stub, schema.Default(), Options{})

	_, err := interp.Interpret(context.Background(), "anything")

	var interpErr *model.InterpretationError
	require.True(t, errors.As(err, &interpErr))
}

func TestInterpret_CacheHitSkipsOracle(t *testing.T) {
	stub := &stubProvider{
		content: `{"target_column":"AESER","filter_value":"Y","match_type":"exact"}`,
	}
	interp := New(stub, schema.Default(), Options{
		Cache:    cache.NewMemoryCache(time.Minute, time.Minute),
		CacheTTL: time.Minute,
	})

	first, err := interp.Interpret(context.Background(), "serious events?")
	require.NoError(t, err)

	second, err := interp.Interpret(context.Background(), "serious events?")
	require.NoError(t, err)

	assert.Len(t, stub.requests, 1, "second interpretation should come from cache")
	assert.Equal(t, first, second)

	// A different question is its own cache entry
	_, err = interp.Interpret(context.Background(), "other question")
	require.NoError(t, err)
	assert.Len(t, stub.requests, 2)
}

func TestParseFilterSpec(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		wantColumn string
		wantValue  string
		wantErr    string
	}{
		{
			name:       "plain JSON",
			content:    `{"target_column":"AESOC","filter_value":"CARDIAC DISORDERS","match_type":"contains","reasoning":"organ class"}`,
			wantColumn: "AESOC",
			wantValue:  "CARDIAC DISORDERS",
		},
		{
			name: "markdown fenced JSON",
			content: "```json\n" +
				`{"target_column":"AETERM","filter_value":"headache","match_type":"contains"}` +
				"\n```",
			wantColumn: "AETERM",
			wantValue:  "headache",
		},
		{
			name:       "bare fence",
			content:    "```\n{\"target_column\":\"AESEV\",\"filter_value\":\"MILD\",\"match_type\":\"exact\"}\n```",
			wantColumn: "AESEV",
			wantValue:  "MILD",
		},
		{
			name:       "numeric filter value coerced",
			content:    `{"target_column":"AESTDY","filter_value":14,"match_type":"exact"}`,
			wantColumn: "AESTDY",
			wantValue:  "14",
		},
		{
			name:    "not JSON",
			content: "I think you want the severity column.",
			wantErr: "parse oracle response",
		},
		{
			name:    "missing target_column",
			content: `{"filter_value":"SEVERE","match_type":"exact"}`,
			wantErr: "missing target_column",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := ParseFilterSpec(tt.content)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantColumn, spec.Column)
			assert.Equal(t, tt.wantValue, spec.Value.String())
		})
	}
}

func TestBuildSystemPrompt_Deterministic(t *testing.T) {
	reg := schema.Default()
	assert.Equal(t, BuildSystemPrompt(reg), BuildSystemPrompt(reg))
}
