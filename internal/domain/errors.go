package domain

import "errors"

var (
	// ErrDuplicateUser is returned when registering a username that already exists.
	ErrDuplicateUser = errors.New("username already exists")
	// ErrUserNotFound is returned when no user is registered under a username.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials covers both unknown users and wrong passwords.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrInvalidInput indicates a required registration field was empty.
	ErrInvalidInput = errors.New("invalid input")
	// ErrQuizNotFound indicates no quiz exists with the requested id.
	ErrQuizNotFound = errors.New("quiz not found")
	// ErrDuplicateID is returned when adding a quiz whose id is already taken.
	ErrDuplicateID = errors.New("quiz id already exists")
	// ErrInvalidQuiz indicates a quiz without question text or correct answer.
	ErrInvalidQuiz = errors.New("quiz requires question text and correct answer")
	// ErrAuthorizationDenied is returned by callers whose policy check failed.
	ErrAuthorizationDenied = errors.New("operation not permitted for role")
	// ErrSessionNotFound indicates an unknown or expired session token.
	ErrSessionNotFound = errors.New("session not found")
)
