package model

import (
	"errors"
	"fmt"
)

const QuestionCount = 4

var (
	ErrInvalidAnswerFormat = errors.New("invalid answer format")
	ErrNoActiveQuiz        = errors.New("no active quiz")
)

type QuestionKind string

const (
	AddrQuestion  QuestionKind = "address"
	CountQuestion QuestionKind = "count"
)

// NetworkSpec is a host address together with the network containing it.
// Addr is never the network or broadcast address of Net.
type NetworkSpec struct {
	Addr Addr
	Net  Net
}

// CIDR renders the problem statement, the host address with the prefix length.
func (spec NetworkSpec) CIDR() string {
	return fmt.Sprintf("%s/%d", spec.Addr, spec.Net.MaskLen)
}

type Question struct {
	Label    string
	Kind     QuestionKind
	Expected string
}

// QuizState is built once and never modified afterwards.
type QuizState struct {
	Spec      NetworkSpec
	Questions [QuestionCount]Question
}

func (quiz *QuizState) Labels() []string {
	labels := make([]string, 0, QuestionCount)
	for _, q := range quiz.Questions {
		labels = append(labels, q.Label)
	}
	return labels
}

type QuestionResult struct {
	Label    string
	Expected string
	Given    string
	Correct  bool
}

type GradeResult struct {
	Points  float64
	Results []QuestionResult
}

type Score struct {
	Total    float64
	Attempts int
}

type CheckResult struct {
	Grade       GradeResult
	Score       Score
	Correction  string
	Explanation string
}
