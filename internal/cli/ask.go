package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/aequery/aequery/internal/dataset"
	"github.com/aequery/aequery/internal/logger"
	"github.com/aequery/aequery/internal/model"
	"github.com/aequery/aequery/internal/schema"
	"github.com/aequery/aequery/internal/session"
)

var (
	dataPath    string
	schemaPath  string
	llmProvider string
	llmModel    string
	llmBaseURL  string
	askTimeout  time.Duration
	noCache     bool
	outJSON     string
)

// askCmd represents the ask command
var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask one natural-language question about the adverse-events data",
	Long: `Ask interprets a free-text question, maps it to a column/value filter
via the configured LLM, runs the filter against the dataset, and prints
matching subjects and sample records.

Example:
  aequery ask "How many patients had severe adverse events?" --data ae_data.csv
  aequery ask "Show me subjects with cardiac disorders" --llm-provider ollama
  aequery ask "Which patients experienced headache?" --json response.json`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)

	askCmd.Flags().StringVar(&dataPath, "data", "ae_data.csv", "path to the adverse-events CSV file")
	askCmd.Flags().StringVar(&schemaPath, "schema", "", "YAML schema override (default: built-in AE schema)")
	askCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, anthropic, ollama)")
	askCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
	askCmd.Flags().StringVar(&llmBaseURL, "llm-base-url", "", "custom LLM endpoint URL")
	askCmd.Flags().DurationVar(&askTimeout, "timeout", 60*time.Second, "overall question timeout")
	askCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the interpretation cache")
	askCmd.Flags().StringVar(&outJSON, "json", "", "write the full response as JSON to this path")
}

func runAsk(cmd *cobra.Command, args []string) error {
	question := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), askTimeout)
	defer cancel()

	s, err := newSession()
	if err != nil {
		return err
	}

	resp, err := s.Ask(ctx, question)
	if err != nil {
		return fmt.Errorf("question %q failed: %w", question, err)
	}

	printResponse(resp)

	if outJSON != "" {
		if err := writeJSON(outJSON, resp); err != nil {
			return fmt.Errorf("write JSON: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Response written to %s\n", outJSON)
	}

	return nil
}

// newSession builds a session from flags and environment. Shared by the
// ask and batch commands.
func newSession() (*session.Session, error) {
	cfg := model.DefaultConfig()
	cfg.Data.Path = dataPath
	cfg.LLM.Provider = llmProvider
	cfg.LLM.Model = llmModel
	cfg.LLM.BaseURL = llmBaseURL
	cfg.Cache.Enabled = !noCache
	cfg.Output.Verbose = verbose
	if verbose {
		cfg.Output.LogLevel = "debug"
	}

	// API key acquisition is an environment concern, never a flag.
	switch llmProvider {
	case "openai":
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.LLM.APIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	case "anthropic", "claude":
		cfg.LLM.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		if cfg.LLM.APIKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
		}
	case "ollama":
		if cfg.LLM.BaseURL == "" {
			cfg.LLM.BaseURL = os.Getenv("OLLAMA_BASE_URL")
		}
	}

	reg := schema.Default()
	if schemaPath != "" {
		var err error
		reg, err = schema.LoadYAML(schemaPath)
		if err != nil {
			return nil, err
		}
	}

	table, err := dataset.LoadCSV(cfg.Data.Path)
	if err != nil {
		return nil, err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Dataset: %s (%d records, %d columns)\n", cfg.Data.Path, table.NumRows(), len(table.Columns()))
		fmt.Fprintf(os.Stderr, "LLM: %s/%s\n\n", cfg.LLM.Provider, cfg.LLM.Model)
	}

	log := logger.New(cfg.Output.LogLevel, cfg.Output.LogFormat)
	return session.New(cfg, reg, table, log)
}

// printResponse renders one response for the console.
func printResponse(resp *model.Response) {
	line := strings.Repeat("=", 60)

	fmt.Println()
	fmt.Println(line)
	fmt.Printf("QUESTION: %s\n", resp.Question)
	fmt.Println(line)

	fmt.Println("\nPARSED QUERY:")
	fmt.Printf("  Target Column: %s\n", resp.Query.Column)
	fmt.Printf("  Filter Value: %s\n", resp.Query.Value)
	fmt.Printf("  Match Type: %s\n", resp.Query.MatchType)
	fmt.Printf("  Reasoning: %s\n", resp.Query.Reasoning)

	fmt.Println("\nRESULTS:")
	fmt.Printf("  Unique Subjects: %d\n", resp.Results.SubjectCount)
	fmt.Printf("  Total AE Records: %d\n", resp.Results.TotalRecords)

	if resp.Results.SubjectCount > 0 {
		fmt.Println("\n  Subject IDs (first 10):")
		for i, id := range resp.Results.Subjects {
			if i >= 10 {
				fmt.Printf("    ... and %d more\n", len(resp.Results.Subjects)-10)
				break
			}
			fmt.Printf("    - %s\n", id)
		}
	}

	fmt.Println(line)
	fmt.Println()
}

func writeJSON(path string, resp *model.Response) error {
	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}
