package domain

import "strings"

// Role is a closed-set label deciding which operations a principal may perform.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// ParseRole maps free-form input onto the closed role set. A leading "ROLE_"
// is accepted and case is ignored; anything unrecognized becomes RoleUser.
func ParseRole(raw string) Role {
	r := strings.ToUpper(strings.TrimSpace(raw))
	r = strings.TrimPrefix(r, "ROLE_")
	switch Role(r) {
	case RoleAdmin:
		return RoleAdmin
	default:
		return RoleUser
	}
}

// User is a registered account. PasswordHash is a bcrypt hash, never plaintext.
type User struct {
	Username     string
	Email        string
	PasswordHash string
	Role         Role
}

// Principal is the resolved identity of an authenticated caller.
type Principal struct {
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

// Quiz is a single question in the quiz bank.
type Quiz struct {
	ID            int      `json:"id" yaml:"-"`
	QuestionText  string   `json:"questionText" yaml:"question_text"`
	Options       []string `json:"options" yaml:"options"`
	CorrectAnswer string   `json:"correctAnswer" yaml:"correct_answer"`
}

// Clone returns a copy that shares no backing arrays with q.
func (q Quiz) Clone() Quiz {
	if q.Options != nil {
		q.Options = append([]string(nil), q.Options...)
	}
	return q
}

// Validate checks the fields an administrator must fill in.
func (q Quiz) Validate() error {
	if strings.TrimSpace(q.QuestionText) == "" {
		return ErrInvalidQuiz
	}
	if q.CorrectAnswer == "" {
		return ErrInvalidQuiz
	}
	return nil
}

// Attempt maps a zero-based quiz position to the submitted answer.
type Attempt map[int]string

// Result is the graded outcome of an Attempt.
type Result struct {
	CorrectCount       int      `json:"correctAnswers"`
	TotalQuestions     int      `json:"totalQuestions"`
	PerQuestionAnswers []string `json:"userAnswers"`
	Questions          []Quiz   `json:"quizzes"`
}
