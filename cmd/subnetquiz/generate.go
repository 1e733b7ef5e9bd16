package main

import (
	"fmt"

	app "github.com/ak7sky/subnet-quiz/internal"
	"github.com/ak7sky/subnet-quiz/internal/core/quiz"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Print one problem with its answers and solution",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}

		count, _ := cmd.Flags().GetInt("count")
		explain, _ := cmd.Flags().GetBool("explain")
		qsrv := app.NewQuizService(cfg)
		sess, err := qsrv.Session("")
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for i := 0; i < count; i++ {
			state, _, err := qsrv.NewQuiz(sess)
			if err != nil {
				return fmt.Errorf("generate quiz: %w", err)
			}
			fmt.Fprintf(out, "Problem: %s\n", state.Spec.CIDR())
			for _, q := range state.Questions {
				fmt.Fprintf(out, "  %-38s %s\n", q.Label+":", q.Expected)
			}
			if explain {
				fmt.Fprintln(out)
				fmt.Fprint(out, quiz.Explain(state.Spec))
			}
			fmt.Fprintln(out)
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().IntP("count", "n", 1, "Number of problems to print")
	generateCmd.Flags().Bool("explain", false, "Print the detailed solution of each problem")
}
