package service

import (
	"errors"
	"fmt"
)

var ErrNoQuestionsAvailable = errors.New("no questions available")

// ValidationError reports a malformed glossary. Generation aborts and
// nothing is produced; the error names the offending term id.
type ValidationError struct {
	TermID string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid glossary: term %s: %s", e.TermID, e.Reason)
}

// ConfigError reports a compiler configuration problem detected before
// any question is emitted.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "invalid quiz config: " + e.Reason
}
