package quiz

import (
	"testing"

	"github.com/ak7sky/subnet-quiz/internal/core/model"
	"github.com/stretchr/testify/require"
)

func testQuiz(t *testing.T) *model.QuizState {
	return Build(mustSpec(t, model.AddrFrom4(192, 168, 1, 1), 24))
}

func TestGrade(t *testing.T) {
	testCases := []struct {
		name     string
		strict   bool
		answers  []string
		points   float64
		verdicts []bool
	}{
		{
			name:     "all correct",
			answers:  []string{"192.168.1.0", "192.168.1.255", "1", "254"},
			points:   1,
			verdicts: []bool{true, true, true, true},
		},
		{
			name:     "all wrong",
			answers:  []string{"192.168.1.1", "192.168.1.254", "2", "256"},
			points:   0,
			verdicts: []bool{false, false, false, false},
		},
		{
			name:     "reordered answers",
			answers:  []string{"192.168.1.255", "192.168.1.0", "254", "1"},
			points:   0,
			verdicts: []bool{false, false, false, false},
		},
		{
			name:     "surrounding whitespace",
			answers:  []string{" 192.168.1.0", "192.168.1.255\n", " 1 ", "254\t"},
			points:   1,
			verdicts: []bool{true, true, true, true},
		},
		{
			name:     "malformed answers",
			answers:  []string{"192.168.1", "not an ip", "one", ""},
			points:   0,
			verdicts: []bool{false, false, false, false},
		},
		{
			name:     "zero padded lenient",
			answers:  []string{"192.168.001.000", "192.168.1.255", "01", "+254"},
			points:   1,
			verdicts: []bool{true, true, true, true},
		},
		{
			name:     "zero padded strict",
			strict:   true,
			answers:  []string{"192.168.001.000", "192.168.1.255", "01", "254"},
			points:   0.75,
			verdicts: []bool{false, true, true, true},
		},
		{
			name:     "partial",
			answers:  []string{"192.168.1.0", "192.168.1.127", "1", "126"},
			points:   0.5,
			verdicts: []bool{true, false, true, false},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			quiz := testQuiz(t)

			res, err := NewGrader(tc.strict).Grade(quiz, tc.answers)

			require.NoError(t, err)
			require.Equal(t, tc.points, res.Points)
			require.Len(t, res.Results, model.QuestionCount)
			for i, r := range res.Results {
				require.Equal(t, tc.verdicts[i], r.Correct, r.Label)
				require.Equal(t, quiz.Questions[i].Label, r.Label)
				require.Equal(t, quiz.Questions[i].Expected, r.Expected)
			}
		})
	}
}

func TestGrade_InvalidAnswerFormat(t *testing.T) {
	grader := NewGrader(false)
	quiz := testQuiz(t)

	for _, answers := range [][]string{nil, {"a", "b", "c"}, {"a", "b", "c", "d", "e"}} {
		_, err := grader.Grade(quiz, answers)
		require.ErrorIs(t, err, model.ErrInvalidAnswerFormat)
	}
}

func TestGrade_CountFallsBackToTextEquality(t *testing.T) {
	quiz := &model.QuizState{Questions: [model.QuestionCount]model.Question{
		{Label: "q1", Kind: model.CountQuestion, Expected: "many"},
		{Label: "q2", Kind: model.CountQuestion, Expected: "many"},
		{Label: "q3", Kind: model.CountQuestion, Expected: "3"},
		{Label: "q4", Kind: model.AddrQuestion, Expected: "bogus"},
	}}

	res, err := NewGrader(false).Grade(quiz, []string{"many", "Many", "3.0", "bogus"})

	require.NoError(t, err)
	require.Equal(t, 0.25, res.Points)
	require.True(t, res.Results[0].Correct)
	require.False(t, res.Results[1].Correct)
	require.False(t, res.Results[2].Correct)
	require.False(t, res.Results[3].Correct)
}

func TestCorrection(t *testing.T) {
	quiz := testQuiz(t)
	res, err := NewGrader(false).Grade(quiz, []string{"192.168.1.0", "x", "1", "254"})
	require.NoError(t, err)

	text := Correction(quiz.Spec, res)

	require.Contains(t, text, "Results for 192.168.1.1/24")
	require.Contains(t, text, LabelNetworkAddr+": ✔ correct (192.168.1.0)")
	require.Contains(t, text, LabelBroadcast+": ✖ wrong (x), correct answer: 192.168.1.255")
}
