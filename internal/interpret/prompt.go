package interpret

import (
	"fmt"

	"github.com/aequery/aequery/internal/schema"
)

// BuildSystemPrompt assembles the oracle's instruction payload: the output
// contract, the column-selection rules, and the full schema rendering. For
// a fixed registry the text is deterministic, which together with pinned
// temperature keeps the whole interpretation step reproducible.
func BuildSystemPrompt(reg *schema.Registry) string {
	return fmt.Sprintf(`You are a clinical data analyst assistant. Your job is to parse natural language questions about adverse events data and map them to the correct database columns.

%s
INSTRUCTIONS:
1. Analyze the user's question to understand what they're asking about
2. Identify the most appropriate column from the schema
3. Extract the filter value (what they're searching for)
4. Return a JSON object with exactly these fields:
   - "target_column": The column name to query (must be one from the schema)
   - "filter_value": The value to search for (extracted/normalized from the question)
   - "match_type": Either "exact" (for categorical like severity) or "contains" (for text search)
   - "reasoning": Brief explanation of why you chose this column

IMPORTANT:
- For severity questions (mild, moderate, severe), use AESEV column with UPPERCASE values
- For body system/organ questions, use AESOC column
- For specific conditions/symptoms, use AETERM column
- For serious events (SAE), use AESER column with Y/N values
- For relationship/causality questions, use AEREL column
- Always return valid JSON only, no other text`, reg.Render())
}

// BuildUserPrompt wraps one question for the oracle. The question is passed
// through untouched; an empty question is a valid input.
func BuildUserPrompt(question string) string {
	return fmt.Sprintf(`Parse this question and return JSON:

Question: %q

Return only valid JSON with target_column, filter_value, match_type, and reasoning.`, question)
}
