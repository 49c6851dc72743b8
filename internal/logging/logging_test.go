package logging

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestLoggerLevels(t *testing.T) {
	color.NoColor = true

	tests := []struct {
		name    string
		logger  Logger
		log     func(Logger)
		want    string
		wantOut bool
	}{
		{"info hidden by default", Logger{}, func(l Logger) { l.Infof("hello %d", 1) }, "", false},
		{"info shown when verbose", Logger{Verbose: true}, func(l Logger) { l.Infof("hello %d", 1) }, "[info] hello 1\n", true},
		{"debug hidden when only verbose", Logger{Verbose: true}, func(l Logger) { l.Debugf("x") }, "", false},
		{"debug shown when debug", Logger{Debug: true}, func(l Logger) { l.Debugf("x=%s", "y") }, "[debug] x=y\n", true},
		{"warn shown when debug", Logger{Debug: true}, func(l Logger) { l.Warnf("careful") }, "[warn] careful\n", true},
		{"error always shown", Logger{}, func(l Logger) { l.Errorf("boom") }, "[error] boom\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logger.Out = &buf
			tt.log(tt.logger)
			if tt.wantOut {
				assert.Equal(t, tt.want, buf.String())
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestLoggerNilWriter(t *testing.T) {
	assert.NotPanics(t, func() {
		Logger{Debug: true}.Errorf("nowhere")
	})
}
