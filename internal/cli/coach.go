package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newCoachCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coach",
		Short: "Language coaching games",
	}

	cmd.AddCommand(newCoachArticulateCmd())
	cmd.AddCommand(newCoachBalderdashCmd())
	cmd.AddCommand(newCoachRolePlayCmd())
	cmd.AddCommand(newCoachGrammarCmd())
	cmd.AddCommand(newCoachSummaryCmd())

	return cmd
}

// coachRun posts req to a coach route and prints the decoded result
func coachRun[T any](cmd *cobra.Command, route string, req any) error {
	var result T
	if err := client.Post(cmd.Context(), "/api/v1/coach/"+route, req, &result); err != nil {
		return err
	}
	output(cmd).Print(result)
	return nil
}

func newCoachArticulateCmd() *cobra.Command {
	var word, context string

	cmd := &cobra.Command{
		Use:   "articulate",
		Short: "Get clues for a word without saying it",
		RunE: func(cmd *cobra.Command, args []string) error {
			return coachRun[Clues](cmd, "articulate", map[string]string{
				"word":    word,
				"context": context,
			})
		},
	}

	cmd.Flags().StringVar(&word, "word", "", "Word to describe (required)")
	cmd.Flags().StringVar(&context, "context", "", "Topic or situation for the clues")
	_ = cmd.MarkFlagRequired("word")

	return cmd
}

func newCoachBalderdashCmd() *cobra.Command {
	var word, context string
	var fakes int

	cmd := &cobra.Command{
		Use:   "balderdash",
		Short: "Mix a real definition with invented ones",
		RunE: func(cmd *cobra.Command, args []string) error {
			return coachRun[BalderdashRound](cmd, "balderdash", map[string]any{
				"word":                 word,
				"context":              context,
				"num_fake_definitions": fakes,
			})
		},
	}

	cmd.Flags().StringVar(&word, "word", "", "Word to define (required)")
	cmd.Flags().StringVar(&context, "context", "", "Topic or situation")
	cmd.Flags().IntVar(&fakes, "fakes", 0, "Number of fake definitions (default 3)")
	_ = cmd.MarkFlagRequired("word")

	return cmd
}

func newCoachRolePlayCmd() *cobra.Command {
	var context, goal, level, text string

	cmd := &cobra.Command{
		Use:   "role-play",
		Short: "Generate role-play scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			return coachRun[Scenarios](cmd, "role-play", map[string]string{
				"context":       context,
				"goal":          goal,
				"level":         level,
				"uploaded_text": text,
			})
		},
	}

	cmd.Flags().StringVar(&context, "context", "", "Setting for the scenarios (required)")
	cmd.Flags().StringVar(&goal, "goal", "", "What the learner wants to practise (required)")
	cmd.Flags().StringVar(&level, "level", "", "Learner level, e.g. B1 (required)")
	cmd.Flags().StringVar(&text, "text", "", "Optional source text")
	_ = cmd.MarkFlagRequired("context")
	_ = cmd.MarkFlagRequired("goal")
	_ = cmd.MarkFlagRequired("level")

	return cmd
}

func newCoachGrammarCmd() *cobra.Command {
	var text string
	var errorCount int

	cmd := &cobra.Command{
		Use:   "grammar",
		Short: "Plant grammar mistakes in a text to find",
		RunE: func(cmd *cobra.Command, args []string) error {
			return coachRun[GrammarErrors](cmd, "grammar", map[string]any{
				"text":        text,
				"error_count": errorCount,
			})
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "Text to corrupt (required)")
	cmd.Flags().IntVar(&errorCount, "errors", 0, "Number of mistakes (default 3)")
	_ = cmd.MarkFlagRequired("text")

	return cmd
}

func newCoachSummaryCmd() *cobra.Command {
	var text, file, goal string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Summarise vocabulary and grammar patterns in a document",
		RunE: func(cmd *cobra.Command, args []string) error {
			if file != "" {
				data, err := os.ReadFile(file)
				if err != nil {
					return fmt.Errorf("failed to read %s: %w", file, err)
				}
				text = string(data)
			}
			if text == "" {
				return fmt.Errorf("one of --text or --file is required")
			}

			return coachRun[Summary](cmd, "summary", map[string]string{
				"document_text": text,
				"learning_goal": goal,
			})
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "Document text")
	cmd.Flags().StringVar(&file, "file", "", "Read the document from a file")
	cmd.Flags().StringVar(&goal, "goal", "", "Learning goal")
	cmd.MarkFlagsMutuallyExclusive("text", "file")

	return cmd
}
