package service

import (
	"fmt"

	"github.com/ak7sky/subnet-quiz/internal/core"
	"github.com/ak7sky/subnet-quiz/internal/core/model"
	"github.com/ak7sky/subnet-quiz/internal/core/quiz"
	"github.com/google/uuid"
)

var (
	errGetSession  = "failed to get session"
	errSaveSession = "failed to save session"
	errNewQuiz     = "failed to generate quiz"
	errCheckQuiz   = "failed to check answers"
)

type QuizService struct {
	sessStorage core.SessionStorage
	generator   core.NetworkGenerator
	grader      *quiz.Grader
	newID       func() string
}

func New(sessStorage core.SessionStorage, generator core.NetworkGenerator, grader *quiz.Grader) *QuizService {
	return &QuizService{
		sessStorage: sessStorage,
		generator:   generator,
		grader:      grader,
		newID:       uuid.NewString,
	}
}

// Session returns the session known under id, or a fresh one under a newly
// minted id when id is empty or unknown.
func (qsrv *QuizService) Session(id string) (*model.Session, error) {
	if id != "" {
		sess, err := qsrv.sessStorage.Get(id)
		if err != nil {
			return nil, fmt.Errorf("%s '%s': %w", errGetSession, id, err)
		}
		if sess != nil {
			return sess, nil
		}
	}

	sess := model.NewSession(qsrv.newID())
	if err := qsrv.sessStorage.Save(sess); err != nil {
		return nil, fmt.Errorf("%s '%s': %w", errSaveSession, sess.ID, err)
	}
	return sess, nil
}

func (qsrv *QuizService) NewQuiz(sess *model.Session) (*model.QuizState, model.Score, error) {
	spec, err := qsrv.generator.Generate()
	if err != nil {
		return nil, sess.Score(), fmt.Errorf("%s: %w", errNewQuiz, err)
	}
	state := quiz.Build(spec)
	return state, sess.StartQuiz(state), nil
}

func (qsrv *QuizService) Reset(sess *model.Session) model.Score {
	return sess.Reset()
}

func (qsrv *QuizService) Check(sess *model.Session, answers []string) (*model.CheckResult, error) {
	state, grade, score, err := sess.Check(answers, qsrv.grader.Grade)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCheckQuiz, err)
	}

	return &model.CheckResult{
		Grade:       grade,
		Score:       score,
		Correction:  quiz.Correction(state.Spec, grade),
		Explanation: quiz.Explain(state.Spec),
	}, nil
}
