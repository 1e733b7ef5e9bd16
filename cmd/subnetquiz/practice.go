package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	app "github.com/ak7sky/subnet-quiz/internal"
	"github.com/ak7sky/subnet-quiz/internal/core"
	"github.com/ak7sky/subnet-quiz/internal/core/model"
	"github.com/spf13/cobra"
)

const (
	cmdQuit  = "q"
	cmdReset = "r"
)

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Answer quizzes interactively in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		return practice(app.NewQuizService(cfg), cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

// practice runs quiz rounds until the input ends or the learner quits.
func practice(qsrv core.QuizService, in io.Reader, out io.Writer) error {
	sess, err := qsrv.Session("")
	if err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	fmt.Fprintf(out, "Answer each question, '%s' to quit, '%s' to reset the score.\n", cmdQuit, cmdReset)

	for {
		state, score, err := qsrv.NewQuiz(sess)
		if err != nil {
			return fmt.Errorf("generate quiz: %w", err)
		}
		fmt.Fprintf(out, "\nAddress: %s   (score %.2f / %d)\n", state.Spec.CIDR(), score.Total, score.Attempts)

		answers := make([]string, 0, model.QuestionCount)
		for _, label := range state.Labels() {
			fmt.Fprintf(out, "%s? ", label)
			if !scanner.Scan() {
				return scanner.Err()
			}
			answer := strings.TrimSpace(scanner.Text())
			if answer == cmdQuit {
				fmt.Fprintf(out, "\nFinal score: %.2f / %d\n", score.Total, score.Attempts)
				return nil
			}
			if answer == cmdReset {
				qsrv.Reset(sess)
				fmt.Fprintln(out, "Score reset.")
				break
			}
			answers = append(answers, answer)
		}

		// Reset drops the quiz, start over with a new one.
		if len(answers) < model.QuestionCount {
			continue
		}

		res, err := qsrv.Check(sess, answers)
		if err != nil {
			return err
		}
		fmt.Fprintln(out)
		fmt.Fprint(out, res.Correction)
		fmt.Fprintf(out, "\n+%.2f point(s), score %.2f / %d\n\n", res.Grade.Points, res.Score.Total, res.Score.Attempts)
		fmt.Fprint(out, res.Explanation)
	}
}
