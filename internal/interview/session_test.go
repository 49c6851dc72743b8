package interview

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/NotMugil/interview-tui/internal/errors"
)

var t0 = time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)

func newTestSession(t *testing.T, d Difficulty) *Session {
	t.Helper()
	s, err := NewSession(Settings{Role: "Software Engineer", Round: RoundCoding, Difficulty: d},
		[]string{"Q1?", "Q2?", "Q3?"}, t0)
	require.NoError(t, err)
	return s
}

func TestNewSessionNeedsQuestions(t *testing.T) {
	_, err := NewSession(Settings{}, nil, t0)
	assert.ErrorIs(t, err, apperrors.ErrNotEnoughQuestions)
}

func TestSessionNavigationClamps(t *testing.T) {
	s := newTestSession(t, DifficultyProfessional)

	assert.False(t, s.HasPrev())
	require.NoError(t, s.Prev())
	assert.Equal(t, 0, s.Current())

	require.NoError(t, s.Next())
	require.NoError(t, s.Next())
	require.NoError(t, s.Next())
	assert.Equal(t, 2, s.Current())
	assert.False(t, s.HasNext())
	assert.Equal(t, "Q3?", s.Question())
}

func TestSessionAnswersFollowCurrentQuestion(t *testing.T) {
	s := newTestSession(t, DifficultyProfessional)

	require.NoError(t, s.SetAnswer("first"))
	require.NoError(t, s.Next())
	require.NoError(t, s.SetAnswer("second"))

	assert.Equal(t, "first", s.Answer(0))
	assert.Equal(t, "second", s.Answer(1))
	assert.Equal(t, "", s.Answer(2))
	assert.Equal(t, []int{5, 6, 0}, s.AnswerLengths())
}

func TestSessionFinishFreezes(t *testing.T) {
	s := newTestSession(t, DifficultyProfessional)
	require.NoError(t, s.Finish())
	assert.True(t, s.Finished())

	assert.ErrorIs(t, s.SetAnswer("late"), apperrors.ErrSessionFinished)
	assert.ErrorIs(t, s.Next(), apperrors.ErrSessionFinished)
	assert.ErrorIs(t, s.Prev(), apperrors.ErrSessionFinished)
	assert.ErrorIs(t, s.Finish(), apperrors.ErrSessionFinished)
}

func TestSessionCountdown(t *testing.T) {
	tests := []struct {
		name      string
		diff      Difficulty
		at        time.Duration
		remaining time.Duration
		progress  float64
		expired   bool
	}{
		{"beginner start", DifficultyBeginner, 0, 3 * time.Minute, 0, false},
		{"beginner halfway", DifficultyBeginner, 90 * time.Second, 90 * time.Second, 0.5, false},
		{"beginner over time", DifficultyBeginner, 10 * time.Minute, 0, 1, true},
		{"professional minute in", DifficultyProfessional, time.Minute, 4 * time.Minute, 0.2, false},
		{"clock before start", DifficultyProfessional, -time.Minute, 5 * time.Minute, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(t, tt.diff)
			now := t0.Add(tt.at)
			assert.Equal(t, tt.remaining, s.Remaining(now))
			assert.InDelta(t, tt.progress, s.Progress(now), 1e-9)
			assert.Equal(t, tt.expired, s.Expired(now))
		})
	}
}

func TestFeedback(t *testing.T) {
	s := newTestSession(t, DifficultyBeginner)
	require.NoError(t, s.SetAnswer("short"))

	fb := Feedback(s)
	require.NotEmpty(t, fb)
	assert.Equal(t, "You completed all the interview questions!", fb[0])
	assert.Contains(t, fb, "Consider providing more detailed answers with specific examples.")
	assert.Contains(t, fb, "Great job on the technical questions!")

	long := strings.Repeat("x", 400)
	s.Settings.Role = "Astronaut"
	for i := 0; i < s.Total(); i++ {
		require.NoError(t, s.SetAnswer(long))
		require.NoError(t, s.Next())
	}
	fb = Feedback(s)
	assert.NotContains(t, fb, "Consider providing more detailed answers with specific examples.")
	assert.Contains(t, fb, "Keep practicing to improve your interview skills.")
}

func TestTranscriptAndExport(t *testing.T) {
	s := newTestSession(t, DifficultyBeginner)
	require.NoError(t, s.SetAnswer("use a map"))

	want := "Question 1: Q1?\nAnswer: use a map\n\n" +
		"Question 2: Q2?\nAnswer: No response\n\n" +
		"Question 3: Q3?\nAnswer: No response"
	assert.Equal(t, want, Transcript(s))

	dir := filepath.Join(t.TempDir(), "out")
	path, err := Export(dir, s, t0)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "interview_responses-20261017-090000.txt"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, want+"\n", string(data))
}
