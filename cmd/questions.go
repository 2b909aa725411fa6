package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/sheetwise/internal/questionbank"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "List the interview questions (optionally filtered by category or difficulty)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer e.Close()

		category, _ := cmd.Flags().GetString("category")
		difficulty, _ := cmd.Flags().GetString("difficulty")
		showKeywords, _ := cmd.Flags().GetBool("keywords")

		qs, err := filterQuestions(e.bank, category, difficulty)
		if err != nil {
			return err
		}
		printQuestions(cmd.OutOrStdout(), qs, showKeywords)
		return nil
	},
}

func filterQuestions(bank *questionbank.Bank, category, difficulty string) ([]questionbank.Question, error) {
	switch {
	case category != "" && difficulty != "":
		return nil, fmt.Errorf("use --category or --difficulty, not both")
	case category != "":
		qs := bank.ByCategory(category)
		if len(qs) == 0 {
			return nil, fmt.Errorf("no questions found for category %q (have: %s)",
				category, strings.Join(bank.Categories(), ", "))
		}
		return qs, nil
	case difficulty != "":
		d, err := questionbank.ParseDifficulty(difficulty)
		if err != nil {
			return nil, err
		}
		qs := bank.ByDifficulty(d)
		if len(qs) == 0 {
			return nil, fmt.Errorf("no questions found for difficulty %s", d)
		}
		return qs, nil
	default:
		return bank.Questions(), nil
	}
}

func printQuestions(w io.Writer, qs []questionbank.Question, showKeywords bool) {
	fmt.Fprintf(w, "%3s  %-18s  %-12s  %s\n", "ID", "Category", "Difficulty", "Question")
	fmt.Fprintln(w, strings.Repeat("─", 100))

	for _, q := range qs {
		text := q.Text
		if r := []rune(text); len(r) > 60 {
			text = string(r[:57]) + "..."
		}
		fmt.Fprintf(w, "%3d  %-18s  %-12s  %s\n", q.ID, q.Category, q.Difficulty, text)
		if showKeywords {
			fmt.Fprintf(w, "%37s  keywords: %s\n", "", strings.Join(q.Keywords, ", "))
		}
	}

	fmt.Fprintf(w, "\n%d questions\n", len(qs))
}

func init() {
	questionsCmd.Flags().String("category", "", "Filter by category (e.g. Formulas)")
	questionsCmd.Flags().String("difficulty", "", "Filter by difficulty (basic, intermediate, advanced)")
	questionsCmd.Flags().Bool("keywords", false, "Show the scoring keywords for each question")
}
