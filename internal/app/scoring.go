package app

import "quizbank-service/internal/domain"

// Grade scores attempt against quizzes by position. Missing answers count as
// empty and never match; comparison is exact. Grade never fails.
func Grade(quizzes []domain.Quiz, attempt domain.Attempt) domain.Result {
	result := domain.Result{
		TotalQuestions:     len(quizzes),
		PerQuestionAnswers: make([]string, len(quizzes)),
		Questions:          quizzes,
	}
	for i, quiz := range quizzes {
		answer, ok := attempt[i]
		result.PerQuestionAnswers[i] = answer
		if ok && answer == quiz.CorrectAnswer {
			result.CorrectCount++
		}
	}
	return result
}
