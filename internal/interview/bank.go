package interview

import (
	_ "embed"
	"fmt"
	"math/rand"
	"strings"

	"github.com/BurntSushi/toml"

	apperrors "github.com/NotMugil/interview-tui/internal/errors"
)

// Round is the kind of interview being practised.
type Round string

const (
	RoundWarmUp      Round = "Warm Up"
	RoundCoding      Round = "Coding"
	RoundRoleRelated Round = "Role Related"
	RoundBehavioral  Round = "Behavioral"
)

// Rounds lists the rounds in display order.
var Rounds = []Round{RoundWarmUp, RoundCoding, RoundRoleRelated, RoundBehavioral}

// Difficulty selects the question pool and the session length.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyProfessional Difficulty = "Professional"
)

var Difficulties = []Difficulty{DifficultyBeginner, DifficultyProfessional}

// ParseRound matches s against the known rounds, ignoring case and
// surrounding space.
func ParseRound(s string) (Round, error) {
	s = strings.TrimSpace(s)
	for _, r := range Rounds {
		if strings.EqualFold(string(r), s) {
			return r, nil
		}
	}
	return "", fmt.Errorf("%w: %q", apperrors.ErrUnknownRound, s)
}

// ParseDifficulty matches s against the known difficulty levels.
func ParseDifficulty(s string) (Difficulty, error) {
	s = strings.TrimSpace(s)
	for _, d := range Difficulties {
		if strings.EqualFold(string(d), s) {
			return d, nil
		}
	}
	return "", fmt.Errorf("%w: %q", apperrors.ErrUnknownDifficulty, s)
}

// Settings describes the interview being practised.
type Settings struct {
	Role       string
	Company    string
	Round      Round
	Difficulty Difficulty
}

// CompanyOrDefault returns the company name, or a generic stand-in.
func (s Settings) CompanyOrDefault() string {
	if c := strings.TrimSpace(s.Company); c != "" {
		return c
	}
	return "a tech company"
}

// RoleOrDefault returns the role, or "Software Engineer" when unset.
func (s Settings) RoleOrDefault() string {
	if r := strings.TrimSpace(s.Role); r != "" {
		return r
	}
	return "Software Engineer"
}

//go:embed questions.toml
var defaultQuestions string

type bankFile struct {
	Rounds []struct {
		Name         string   `toml:"name"`
		Beginner     []string `toml:"beginner"`
		Professional []string `toml:"professional"`
	} `toml:"round"`
}

// Bank is a read-only pool of question templates per round and difficulty.
type Bank struct {
	pools map[Round]map[Difficulty][]string
}

// DefaultBank parses the question bank compiled into the binary.
func DefaultBank() (*Bank, error) {
	return LoadBank(defaultQuestions)
}

// LoadBank parses a TOML question bank.
func LoadBank(data string) (*Bank, error) {
	var f bankFile
	if _, err := toml.Decode(data, &f); err != nil {
		return nil, fmt.Errorf("decode question bank: %w", err)
	}

	b := &Bank{pools: make(map[Round]map[Difficulty][]string)}
	for _, r := range f.Rounds {
		round, err := ParseRound(r.Name)
		if err != nil {
			return nil, err
		}
		b.pools[round] = map[Difficulty][]string{
			DifficultyBeginner:     r.Beginner,
			DifficultyProfessional: r.Professional,
		}
	}
	return b, nil
}

// Size returns how many templates exist for a round and difficulty.
func (b *Bank) Size(r Round, d Difficulty) int {
	return len(b.pools[r][d])
}

// Pick returns n distinct questions for the settings, in random order, with
// {role} and {company} filled in.
func (b *Bank) Pick(s Settings, n int, rng *rand.Rand) ([]string, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", apperrors.ErrInvalidQuestionCount, n)
	}
	pool := b.pools[s.Round][s.Difficulty]
	if len(pool) < n {
		return nil, fmt.Errorf("%w: want %d %s/%s questions, have %d",
			apperrors.ErrNotEnoughQuestions, n, s.Round, s.Difficulty, len(pool))
	}

	replacer := strings.NewReplacer(
		"{role}", s.RoleOrDefault(),
		"{company}", s.CompanyOrDefault(),
	)

	out := make([]string, 0, n)
	for _, i := range rng.Perm(len(pool))[:n] {
		out = append(out, normalizeQuestion(replacer.Replace(pool[i])))
	}
	return out, nil
}

func normalizeQuestion(q string) string {
	q = strings.TrimSpace(q)
	if q != "" && !strings.HasSuffix(q, "?") {
		q += "?"
	}
	return q
}
