package service

import (
	"math"
	"strings"

	"github.com/edulink/mentor-service/internal/dto"
)

// GradingService computes a deterministic percentage score for a submitted
// answer set.
type GradingService interface {
	Grade(correctByQuestionID map[uint]string, answers []dto.SubmittedAnswer, totalQuestions int) (correctCount int, score float64)
}

type gradingService struct{}

func NewGradingService() GradingService {
	return &gradingService{}
}

// Grade compares each submitted answer case-insensitively against the stored
// correct option. Answers for question ids outside the frozen set are
// ignored. The score is always relative to totalQuestions as issued, never a
// hardcoded denominator; a zero denominator yields a zero score.
func (s *gradingService) Grade(correctByQuestionID map[uint]string, answers []dto.SubmittedAnswer, totalQuestions int) (int, float64) {
	correctCount := 0
	for _, answer := range answers {
		correct, ok := correctByQuestionID[answer.QuestionID]
		if ok && strings.EqualFold(answer.Answer, correct) {
			correctCount++
		}
	}

	if totalQuestions <= 0 {
		return correctCount, 0
	}
	score := math.Round(float64(correctCount)/float64(totalQuestions)*100*100) / 100
	return correctCount, score
}
