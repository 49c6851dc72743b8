package interview

import (
	"fmt"
	"time"

	apperrors "github.com/NotMugil/interview-tui/internal/errors"
)

// MaxQuestions bounds how many questions a single session may hold.
const MaxQuestions = 8

// DefaultQuestions is the session length used when none is configured.
const DefaultQuestions = 5

// Duration returns the time allowed for a session at difficulty d.
func Duration(d Difficulty) time.Duration {
	if d == DifficultyBeginner {
		return 3 * time.Minute
	}
	return 5 * time.Minute
}

// Session is one practice interview: a fixed list of questions, the
// answers typed so far and a countdown started at creation.
type Session struct {
	Settings  Settings
	questions []string
	answers   map[int]string
	current   int
	started   time.Time
	finished  bool
}

// NewSession starts a session over questions at now.
func NewSession(s Settings, questions []string, now time.Time) (*Session, error) {
	if len(questions) == 0 {
		return nil, fmt.Errorf("start session: %w", apperrors.ErrNotEnoughQuestions)
	}
	qs := make([]string, len(questions))
	copy(qs, questions)
	return &Session{
		Settings:  s,
		questions: qs,
		answers:   make(map[int]string),
		started:   now,
	}, nil
}

func (s *Session) Total() int { return len(s.questions) }
func (s *Session) Current() int { return s.current }
func (s *Session) Question() string { return s.questions[s.current] }
func (s *Session) Finished() bool { return s.finished }
func (s *Session) HasPrev() bool { return s.current > 0 }
func (s *Session) HasNext() bool { return s.current < len(s.questions)-1 }

// QuestionAt returns question i, or "" when i is out of range.
func (s *Session) QuestionAt(i int) string {
	if i < 0 || i >= len(s.questions) {
		return ""
	}
	return s.questions[i]
}

// Answer returns the answer recorded for question i.
func (s *Session) Answer(i int) string {
	return s.answers[i]
}

// SetAnswer records text as the answer to the current question.
func (s *Session) SetAnswer(text string) error {
	if s.finished {
		return apperrors.ErrSessionFinished
	}
	s.answers[s.current] = text
	return nil
}

// Next moves to the following question; it stays put on the last one.
func (s *Session) Next() error {
	if s.finished {
		return apperrors.ErrSessionFinished
	}
	if s.HasNext() {
		s.current++
	}
	return nil
}

// Prev moves to the preceding question; it stays put on the first one.
func (s *Session) Prev() error {
	if s.finished {
		return apperrors.ErrSessionFinished
	}
	if s.HasPrev() {
		s.current--
	}
	return nil
}

// Finish closes the session. Answers are frozen afterwards.
func (s *Session) Finish() error {
	if s.finished {
		return apperrors.ErrSessionFinished
	}
	s.finished = true
	return nil
}

// Duration is the countdown length for this session.
func (s *Session) Duration() time.Duration {
	return Duration(s.Settings.Difficulty)
}

// Elapsed is the time since the session started, clamped to [0, Duration].
func (s *Session) Elapsed(now time.Time) time.Duration {
	e := now.Sub(s.started)
	if e < 0 {
		return 0
	}
	if d := s.Duration(); e > d {
		return d
	}
	return e
}

func (s *Session) Remaining(now time.Time) time.Duration {
	return s.Duration() - s.Elapsed(now)
}

func (s *Session) Expired(now time.Time) bool {
	return s.Remaining(now) <= 0
}

// Progress is the fraction of the countdown used, in [0, 1].
func (s *Session) Progress(now time.Time) float64 {
	d := s.Duration()
	if d <= 0 {
		return 1
	}
	return float64(s.Elapsed(now)) / float64(d)
}

// AnswerLengths returns the character count of each answer in question order.
func (s *Session) AnswerLengths() []int {
	out := make([]int, len(s.questions))
	for i := range s.questions {
		out[i] = len([]rune(s.answers[i]))
	}
	return out
}
