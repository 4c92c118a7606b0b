package http

import (
	"quizbank-service/internal/app"
	"quizbank-service/internal/domain"
	"quizbank-service/internal/policy"
)

type quizView struct {
	ID            int      `json:"id"`
	QuestionText  string   `json:"questionText"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer,omitempty"`
}

type homeView struct {
	Username string     `json:"username"`
	View     string     `json:"view"`
	Quizzes  []quizView `json:"quizzes"`
}

// quizViews hides correct answers from principals who cannot edit quizzes.
func quizViews(p domain.Principal, quizzes []domain.Quiz) []quizView {
	reveal := policy.CanPerform(p.Role, policy.OpEditQuiz)
	views := make([]quizView, 0, len(quizzes))
	for _, q := range quizzes {
		v := quizView{ID: q.ID, QuestionText: q.QuestionText, Options: q.Options}
		if reveal {
			v.CorrectAnswer = q.CorrectAnswer
		}
		views = append(views, v)
	}
	return views
}

func newHomeView(p domain.Principal, home app.HomeView) homeView {
	return homeView{Username: home.Username, View: home.View, Quizzes: quizViews(p, home.Quizzes)}
}
