package service

import "errors"

// Sentinel errors for the failure classes the request boundary must
// distinguish. Controllers translate these into HTTP status + message;
// everything else surfaces as a generic 500.
var (
	ErrExamNotFound      = errors.New("exam not found")
	ErrQuestionNotFound  = errors.New("question not found")
	ErrCandidateNotFound = errors.New("candidate not found")
	ErrStaffNotFound     = errors.New("staff not found")
	ErrScoreNotFound     = errors.New("score not found")

	// ErrWrongStage and ErrExamClosed are kept distinct for testability.
	// Both surface as the same 403 so the API does not leak which gate
	// rejected the candidate.
	ErrWrongStage = errors.New("exam stage does not match candidate role")
	ErrExamClosed = errors.New("exam is not currently open")

	// ErrAlreadySubmitted is terminal: the client must not retry the payload.
	ErrAlreadySubmitted = errors.New("answers already submitted for this exam")

	ErrEmptyAnswers = errors.New("at least one answer must be provided")

	ErrNotPublished       = errors.New("leaderboard not published yet")
	ErrLeaderboardClosed  = errors.New("leaderboard is currently closed")
	ErrRegistrationClosed = errors.New("registration is currently closed")

	ErrUsernameTaken      = errors.New("username is already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidRole        = errors.New("invalid role")
)
