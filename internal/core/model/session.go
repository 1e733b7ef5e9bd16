package model

import "sync"

// Grade grades answers against a quiz.
type Grade func(quiz *QuizState, answers []string) (GradeResult, error)

type Session struct {
	ID         string
	scoreTotal float64
	attempts   int
	quiz       *QuizState
	mtx        *sync.Mutex
}

func NewSession(id string) *Session {
	return &Session{
		ID:  id,
		mtx: &sync.Mutex{},
	}
}

// StartQuiz replaces the current quiz and returns the score it starts from.
func (sess *Session) StartQuiz(quiz *QuizState) Score {
	sess.mtx.Lock()
	defer sess.mtx.Unlock()
	sess.quiz = quiz
	return sess.score()
}

func (sess *Session) Quiz() *QuizState {
	sess.mtx.Lock()
	defer sess.mtx.Unlock()
	return sess.quiz
}

func (sess *Session) Score() Score {
	sess.mtx.Lock()
	defer sess.mtx.Unlock()
	return sess.score()
}

func (sess *Session) Reset() Score {
	sess.mtx.Lock()
	defer sess.mtx.Unlock()
	sess.scoreTotal = 0
	sess.attempts = 0
	sess.quiz = nil
	return sess.score()
}

// Check grades answers against the current quiz and accumulates the points.
// The session is left untouched when grading fails.
func (sess *Session) Check(answers []string, grade Grade) (*QuizState, GradeResult, Score, error) {
	sess.mtx.Lock()
	defer sess.mtx.Unlock()

	if sess.quiz == nil {
		return nil, GradeResult{}, sess.score(), ErrNoActiveQuiz
	}

	res, err := grade(sess.quiz, answers)
	if err != nil {
		return sess.quiz, GradeResult{}, sess.score(), err
	}

	sess.scoreTotal += res.Points
	sess.attempts++
	return sess.quiz, res, sess.score(), nil
}

func (sess *Session) score() Score {
	return Score{Total: sess.scoreTotal, Attempts: sess.attempts}
}
