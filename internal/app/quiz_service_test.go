package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quizbank-service/internal/app"
	"quizbank-service/internal/domain"
	"quizbank-service/internal/infra/memory"
)

var (
	admin = domain.Principal{Username: "root", Role: domain.RoleAdmin}
	user  = domain.Principal{Username: "alice", Role: domain.RoleUser}
	guest = domain.Principal{Username: "mallory", Role: "GUEST"}
)

// spyRepository records mutating calls so tests can assert the repository
// was never reached.
type spyRepository struct {
	app.QuizRepository
	mutations int
}

func (r *spyRepository) Add(q domain.Quiz) error {
	r.mutations++
	return r.QuizRepository.Add(q)
}

func (r *spyRepository) Update(q domain.Quiz) error {
	r.mutations++
	return r.QuizRepository.Update(q)
}

func (r *spyRepository) Delete(id int) error {
	r.mutations++
	return r.QuizRepository.Delete(id)
}

func newTestService() (*app.QuizService, *spyRepository) {
	repo := &spyRepository{QuizRepository: memory.NewQuizRepository()}
	return app.NewQuizService(repo, discardLogger()), repo
}

func TestAdminManagesQuizBank(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestService()

	paris, err := service.Create(ctx, admin, domain.Quiz{QuestionText: "Capital of France?", Options: []string{"Paris", "Rome"}, CorrectAnswer: "Paris"})
	require.NoError(t, err)
	answer, err := service.Create(ctx, admin, domain.Quiz{QuestionText: "Six times seven?", Options: []string{"41", "42"}, CorrectAnswer: "42"})
	require.NoError(t, err)
	assert.Greater(t, answer.ID, paris.ID)

	paris.CorrectAnswer = "Rome"
	require.NoError(t, service.Edit(ctx, admin, paris))
	got, err := service.Get(ctx, admin, paris.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rome", got.CorrectAnswer)

	require.NoError(t, service.Delete(ctx, admin, paris.ID))
	assert.ErrorIs(t, service.Delete(ctx, admin, paris.ID), domain.ErrQuizNotFound)

	list, err := service.List(ctx, admin)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, answer.ID, list[0].ID)
}

func TestUserMutationsNeverReachRepository(t *testing.T) {
	ctx := context.Background()
	service, repo := newTestService()
	created, err := service.Create(ctx, admin, domain.Quiz{QuestionText: "q", CorrectAnswer: "a"})
	require.NoError(t, err)
	repo.mutations = 0

	for _, p := range []domain.Principal{user, guest} {
		_, err := service.Create(ctx, p, domain.Quiz{QuestionText: "q", CorrectAnswer: "a"})
		assert.ErrorIs(t, err, domain.ErrAuthorizationDenied)
		assert.ErrorIs(t, service.Edit(ctx, p, created), domain.ErrAuthorizationDenied)
		assert.ErrorIs(t, service.Delete(ctx, p, created.ID), domain.ErrAuthorizationDenied)
		_, err = service.Get(ctx, p, created.ID)
		assert.ErrorIs(t, err, domain.ErrAuthorizationDenied)
	}
	assert.Zero(t, repo.mutations)

	list, err := service.List(ctx, user)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestCreateRejectsIncompleteQuiz(t *testing.T) {
	service, repo := newTestService()
	_, err := service.Create(context.Background(), admin, domain.Quiz{QuestionText: "  ", CorrectAnswer: "a"})
	assert.ErrorIs(t, err, domain.ErrInvalidQuiz)
	_, err = service.Create(context.Background(), admin, domain.Quiz{QuestionText: "q"})
	assert.ErrorIs(t, err, domain.ErrInvalidQuiz)
	assert.Zero(t, repo.mutations)
}

func TestEditUnknownQuiz(t *testing.T) {
	service, _ := newTestService()
	err := service.Edit(context.Background(), admin, domain.Quiz{ID: 99, QuestionText: "q", CorrectAnswer: "a"})
	assert.ErrorIs(t, err, domain.ErrQuizNotFound)
}

func TestHomeViewDependsOnRole(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestService()

	home, err := service.Home(ctx, admin)
	require.NoError(t, err)
	assert.Equal(t, app.ViewQuizList, home.View)

	home, err = service.Home(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, app.ViewQuiz, home.View)
	assert.Equal(t, "alice", home.Username)

	home, err = service.Home(ctx, guest)
	require.NoError(t, err)
	assert.Equal(t, app.ViewQuiz, home.View)
}

func TestSubmitGradesCurrentBank(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestService()
	_, err := service.Seed(ctx, memory.NewStaticQuizSource(parisAnd42()))
	require.NoError(t, err)

	result, err := service.Submit(ctx, user, domain.Attempt{0: "Paris", 1: "41"})
	require.NoError(t, err)
	assert.Equal(t, 1, result.CorrectCount)
	assert.Equal(t, 2, result.TotalQuestions)
	assert.Equal(t, []string{"Paris", "41"}, result.PerQuestionAnswers)
	assert.Len(t, result.Questions, 2)
}

func TestSeedAssignsFreshIDs(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestService()

	n, err := service.Seed(ctx, memory.NewStaticQuizSource(parisAnd42()))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	n, err = service.Seed(ctx, memory.NewStaticQuizSource(parisAnd42()))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	list, err := service.List(ctx, admin)
	require.NoError(t, err)
	ids := map[int]bool{}
	for _, q := range list {
		ids[q.ID] = true
	}
	assert.Len(t, ids, 4)
}

type failingSource struct{}

func (failingSource) LoadQuizzes(context.Context) ([]domain.Quiz, error) {
	return nil, errors.New("boom")
}

func TestSeedPropagatesSourceError(t *testing.T) {
	service, _ := newTestService()
	_, err := service.Seed(context.Background(), failingSource{})
	assert.Error(t, err)
}
