package grpcserver

import (
	"context"
	"errors"
	"strconv"

	"github.com/ak7sky/subnet-quiz/internal/core"
	"github.com/ak7sky/subnet-quiz/internal/core/model"
	"github.com/ak7sky/subnet-quiz/internal/logger"
	"github.com/golang/protobuf/ptypes/wrappers"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	fieldSessionID  = "session_id"
	fieldAnswers    = "answers"
	fieldCIDR       = "cidr"
	fieldQuestions  = "questions"
	fieldScoreTotal = "score_total"
	fieldAttempts   = "attempts"
	fieldPoints     = "points"
	fieldResults    = "results"
	fieldCorrection = "correction"
	fieldExpl       = "explanation"
)

type serverHandler struct {
	qsrv   core.QuizService
	logger logger.Logger
}

func newHandler(qsrv core.QuizService, logger logger.Logger) *serverHandler {
	return &serverHandler{qsrv: qsrv, logger: logger}
}

func (s *serverHandler) NewQuiz(_ context.Context, sessID *wrappers.StringValue) (*structpb.Struct, error) {
	sess, err := s.qsrv.Session(sessID.GetValue())
	if err != nil {
		return nil, errResponse(err)
	}

	quiz, score, err := s.qsrv.NewQuiz(sess)
	if err != nil {
		return nil, errResponse(err)
	}
	s.logger.WithSession(sess.ID).Debug("quiz %s generated", quiz.Spec.CIDR())

	questions := make([]any, 0, model.QuestionCount)
	for _, label := range quiz.Labels() {
		questions = append(questions, label)
	}

	return newStruct(map[string]any{
		fieldSessionID:  sess.ID,
		fieldCIDR:       quiz.Spec.CIDR(),
		fieldQuestions:  questions,
		fieldScoreTotal: score.Total,
		fieldAttempts:   score.Attempts,
	})
}

func (s *serverHandler) Reset(_ context.Context, sessID *wrappers.StringValue) (*structpb.Struct, error) {
	sess, err := s.qsrv.Session(sessID.GetValue())
	if err != nil {
		return nil, errResponse(err)
	}

	score := s.qsrv.Reset(sess)
	s.logger.WithSession(sess.ID).Debug("score reset")

	return newStruct(map[string]any{
		fieldSessionID:  sess.ID,
		fieldScoreTotal: score.Total,
		fieldAttempts:   score.Attempts,
	})
}

func (s *serverHandler) Check(_ context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	sess, err := s.qsrv.Session(req.GetFields()[fieldSessionID].GetStringValue())
	if err != nil {
		return nil, errResponse(err)
	}

	res, err := s.qsrv.Check(sess, answersOf(req))
	if err != nil {
		s.logger.WithSession(sess.ID).Debug("answers rejected: %v", err)
		return nil, errResponse(err)
	}
	s.logger.WithSession(sess.ID).Debug("answers checked: %.2f points", res.Grade.Points)

	results := make([]any, 0, len(res.Grade.Results))
	for _, r := range res.Grade.Results {
		results = append(results, map[string]any{
			"label":    r.Label,
			"expected": r.Expected,
			"given":    r.Given,
			"correct":  r.Correct,
		})
	}

	return newStruct(map[string]any{
		fieldSessionID:  sess.ID,
		fieldPoints:     res.Grade.Points,
		fieldResults:    results,
		fieldScoreTotal: res.Score.Total,
		fieldAttempts:   res.Score.Attempts,
		fieldCorrection: res.Correction,
		fieldExpl:       res.Explanation,
	})
}

// answersOf renders every submitted value as text; the grader decides what
// is a well-formed answer.
func answersOf(req *structpb.Struct) []string {
	values := req.GetFields()[fieldAnswers].GetListValue().GetValues()
	answers := make([]string, 0, len(values))
	for _, v := range values {
		switch kind := v.GetKind().(type) {
		case *structpb.Value_StringValue:
			answers = append(answers, kind.StringValue)
		case *structpb.Value_NumberValue:
			answers = append(answers, strconv.FormatFloat(kind.NumberValue, 'f', -1, 64))
		case *structpb.Value_BoolValue:
			answers = append(answers, strconv.FormatBool(kind.BoolValue))
		default:
			answers = append(answers, "")
		}
	}
	return answers
}

func newStruct(fields map[string]any) (*structpb.Struct, error) {
	res, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to encode response: %v", err)
	}
	return res, nil
}

func errResponse(errSrv error) error {
	switch {
	case errSrv == nil:
		return nil
	case errors.Is(errSrv, model.ErrInvalidAnswerFormat):
		return status.Error(codes.InvalidArgument, errSrv.Error())
	case errors.Is(errSrv, model.ErrNoActiveQuiz):
		return status.Error(codes.FailedPrecondition, errSrv.Error())
	default:
		return status.Error(codes.Internal, errSrv.Error())
	}
}
