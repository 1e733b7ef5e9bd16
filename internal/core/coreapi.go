package core

import "github.com/ak7sky/subnet-quiz/internal/core/model"

type QuizService interface {
	Session(id string) (*model.Session, error)
	NewQuiz(sess *model.Session) (*model.QuizState, model.Score, error)
	Reset(sess *model.Session) model.Score
	Check(sess *model.Session, answers []string) (*model.CheckResult, error)
}

type SessionStorage interface {
	Save(sess *model.Session) error
	Get(id string) (*model.Session, error)
}

type NetworkGenerator interface {
	Generate() (model.NetworkSpec, error)
}
