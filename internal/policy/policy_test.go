package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"quizbank-service/internal/domain"
)

var allOps = []Operation{OpViewQuizzes, OpCreateQuiz, OpEditQuiz, OpDeleteQuiz, OpSubmitAnswers}

func TestCanPerformTable(t *testing.T) {
	cases := []struct {
		op    Operation
		admin bool
		user  bool
	}{
		{OpViewQuizzes, true, true},
		{OpCreateQuiz, true, false},
		{OpEditQuiz, true, false},
		{OpDeleteQuiz, true, false},
		{OpSubmitAnswers, true, true},
	}
	for _, tc := range cases {
		t.Run(tc.op.String(), func(t *testing.T) {
			assert.Equal(t, tc.admin, CanPerform(domain.RoleAdmin, tc.op))
			assert.Equal(t, tc.user, CanPerform(domain.RoleUser, tc.op))
		})
	}
}

func TestUserCannotDelete(t *testing.T) {
	assert.False(t, CanPerform(domain.RoleUser, OpDeleteQuiz))
}

func TestUnrecognizedRoleBehavesAsUser(t *testing.T) {
	for _, role := range []domain.Role{"", "GUEST", "SUPERUSER", "ROLE_ROOT"} {
		for _, op := range allOps {
			assert.Equal(t, CanPerform(domain.RoleUser, op), CanPerform(role, op), "role %q op %s", role, op)
		}
	}
}

func TestPrefixedAdminRole(t *testing.T) {
	assert.True(t, CanPerform("ROLE_ADMIN", OpCreateQuiz))
}

func TestUnknownOperationDenied(t *testing.T) {
	assert.False(t, CanPerform(domain.RoleAdmin, Operation(99)))
	assert.False(t, CanPerform(domain.RoleAdmin, 0))
}
