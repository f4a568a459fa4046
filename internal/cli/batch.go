package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var batchTimeout time.Duration

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Ask multiple questions from a file, one per line",
	Long: `Batch reads questions from a file (one per line, blank lines and #
comments skipped) and processes them sequentially against one shared
session. A failed question is reported and skipped; the batch continues.

Example:
  aequery batch questions.txt --data ae_data.csv
  aequery batch questions.txt --llm-provider ollama --timeout 10m`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVar(&dataPath, "data", "ae_data.csv", "path to the adverse-events CSV file")
	batchCmd.Flags().StringVar(&schemaPath, "schema", "", "YAML schema override (default: built-in AE schema)")
	batchCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, anthropic, ollama)")
	batchCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
	batchCmd.Flags().StringVar(&llmBaseURL, "llm-base-url", "", "custom LLM endpoint URL")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the interpretation cache")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for the batch")
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	questions, err := readQuestions(file)
	if err != nil {
		return err
	}
	if len(questions) == 0 {
		return fmt.Errorf("no questions found in %s", file)
	}

	s, err := newSession()
	if err != nil {
		return err
	}

	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("AEQUERY BATCH RUN")
	fmt.Println(strings.Repeat("=", 60))

	failed := 0
	for _, question := range questions {
		resp, err := s.Ask(ctx, question)
		if err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "\nError processing question: %s\n", question)
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		printResponse(resp)
	}

	fmt.Printf("Processed %d questions, %d failed\n", len(questions), failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d questions failed", failed, len(questions))
	}
	return nil
}

// readQuestions loads questions from a file, one per line.
func readQuestions(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open questions file: %w", err)
	}
	defer f.Close()

	var questions []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		questions = append(questions, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read questions file: %w", err)
	}
	return questions, nil
}
