package http

import (
	"strconv"
	"strings"

	"quizbank-service/internal/domain"
)

const answerKeyPrefix = "answer"

// ParseAttempt builds an attempt from flat submission fields named
// answer0, answer1, ... Other keys are ignored.
func ParseAttempt(fields map[string]string) domain.Attempt {
	attempt := make(domain.Attempt, len(fields))
	for key, value := range fields {
		digits, ok := strings.CutPrefix(key, answerKeyPrefix)
		if !ok || digits == "" || strings.TrimLeft(digits, "0123456789") != "" {
			continue
		}
		pos, err := strconv.Atoi(digits)
		if err != nil {
			continue
		}
		attempt[pos] = value
	}
	return attempt
}
