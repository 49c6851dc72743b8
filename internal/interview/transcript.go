package interview

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Transcript renders every question with its answer as plain text.
func Transcript(s *Session) string {
	blocks := make([]string, 0, s.Total())
	for i := 0; i < s.Total(); i++ {
		answer := s.Answer(i)
		if strings.TrimSpace(answer) == "" {
			answer = "No response"
		}
		blocks = append(blocks, fmt.Sprintf("Question %d: %s\nAnswer: %s", i+1, s.QuestionAt(i), answer))
	}
	return strings.Join(blocks, "\n\n")
}

// ExportFileName is the transcript file name for a session exported at t.
func ExportFileName(t time.Time) string {
	return fmt.Sprintf("interview_responses-%s.txt", t.Format("20060102-150405"))
}

// Export writes the transcript of s into dir and returns the file path.
func Export(dir string, s *Session, now time.Time) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(dir, ExportFileName(now))
	if err := os.WriteFile(path, []byte(Transcript(s)+"\n"), 0o600); err != nil {
		return "", fmt.Errorf("write transcript: %w", err)
	}
	return path, nil
}
