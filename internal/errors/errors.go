package errors

import "errors"

// Configuration errors indicate a bad flag or config file value.
var (
	// ErrUnknownRound indicates the interview round is not one of the known rounds.
	ErrUnknownRound = errors.New("unknown interview round")

	// ErrUnknownDifficulty indicates the difficulty level is not recognised.
	ErrUnknownDifficulty = errors.New("unknown difficulty level")

	// ErrInvalidQuestionCount indicates the requested number of questions is out of range.
	ErrInvalidQuestionCount = errors.New("invalid question count")

	// ErrInvalidConfig indicates the config file could not be parsed.
	ErrInvalidConfig = errors.New("config file is invalid")
)

// Session errors indicate a practice session cannot proceed.
var (
	// ErrNotEnoughQuestions indicates the question bank cannot satisfy the request.
	ErrNotEnoughQuestions = errors.New("not enough questions in bank")

	// ErrSessionFinished indicates the session no longer accepts changes.
	ErrSessionFinished = errors.New("session already finished")

	// ErrNoSession indicates there is no session to act on.
	ErrNoSession = errors.New("no practice session")

	// ErrNoAPIKey indicates a session was requested before an API key was entered.
	ErrNoAPIKey = errors.New("no API key entered")
)
