// Package policy decides which operations a role may perform.
package policy

import "quizbank-service/internal/domain"

// Operation is an action gated by the policy.
type Operation int

const (
	OpViewQuizzes Operation = iota + 1
	OpCreateQuiz
	OpEditQuiz
	OpDeleteQuiz
	OpSubmitAnswers
)

func (o Operation) String() string {
	switch o {
	case OpViewQuizzes:
		return "view_quizzes"
	case OpCreateQuiz:
		return "create_quiz"
	case OpEditQuiz:
		return "edit_quiz"
	case OpDeleteQuiz:
		return "delete_quiz"
	case OpSubmitAnswers:
		return "submit_answers"
	default:
		return "unknown"
	}
}

var table = map[Operation]map[domain.Role]bool{
	OpViewQuizzes:   {domain.RoleAdmin: true, domain.RoleUser: true},
	OpCreateQuiz:    {domain.RoleAdmin: true},
	OpEditQuiz:      {domain.RoleAdmin: true},
	OpDeleteQuiz:    {domain.RoleAdmin: true},
	OpSubmitAnswers: {domain.RoleAdmin: true, domain.RoleUser: true},
}

// CanPerform reports whether role may perform op. Roles outside the closed
// set are evaluated as domain.RoleUser; unknown operations are denied.
func CanPerform(role domain.Role, op Operation) bool {
	return table[op][domain.ParseRole(string(role))]
}
