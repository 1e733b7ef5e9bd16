package quiz

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ak7sky/subnet-quiz/internal/core/model"
)

const pointsPerQuestion = 0.25

// Grader compares submitted answers with a quiz's expected values, question
// by question.
type Grader struct {
	parseAddr func(string) (model.Addr, error)
}

// NewGrader returns a grader accepting any spelling of an address that parses
// to the expected value, or only canonical dotted quads when strictAddrs is set.
func NewGrader(strictAddrs bool) *Grader {
	if strictAddrs {
		return &Grader{parseAddr: model.ParseAddrStrict}
	}
	return &Grader{parseAddr: model.ParseAddr}
}

func (grader *Grader) Grade(quiz *model.QuizState, answers []string) (model.GradeResult, error) {
	if len(answers) != model.QuestionCount {
		return model.GradeResult{}, fmt.Errorf(
			"%w: got %d answers, want %d", model.ErrInvalidAnswerFormat, len(answers), model.QuestionCount,
		)
	}

	res := model.GradeResult{Results: make([]model.QuestionResult, 0, model.QuestionCount)}
	for i, question := range quiz.Questions {
		given := strings.TrimSpace(answers[i])
		correct := grader.isCorrect(question, given)
		if correct {
			res.Points += pointsPerQuestion
		}
		res.Results = append(res.Results, model.QuestionResult{
			Label:    question.Label,
			Expected: question.Expected,
			Given:    given,
			Correct:  correct,
		})
	}

	return res, nil
}

func (grader *Grader) isCorrect(question model.Question, given string) bool {
	if question.Kind == model.AddrQuestion {
		givenAddr, err := grader.parseAddr(given)
		if err != nil {
			return false
		}
		expAddr, err := model.ParseAddr(question.Expected)
		if err != nil {
			return false
		}
		return givenAddr == expAddr
	}

	givenCount, errGiven := strconv.ParseInt(given, 10, 64)
	expCount, errExp := strconv.ParseInt(question.Expected, 10, 64)
	if errGiven != nil || errExp != nil {
		return given == question.Expected
	}
	return givenCount == expCount
}

// Correction renders a line per question telling whether it was answered
// correctly and, if not, what the right answer is.
func Correction(spec model.NetworkSpec, res model.GradeResult) string {
	sb := &strings.Builder{}
	fmt.Fprintf(sb, "Results for %s\n\n", spec.CIDR())
	for _, r := range res.Results {
		if r.Correct {
			fmt.Fprintf(sb, "%s: ✔ correct (%s)\n", r.Label, r.Expected)
			continue
		}
		fmt.Fprintf(sb, "%s: ✖ wrong (%s), correct answer: %s\n", r.Label, r.Given, r.Expected)
	}
	return sb.String()
}
