package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/edulink/mentor-service/internal/dto"
)

func answerKey(n int) map[uint]string {
	key := make(map[uint]string, n)
	for i := 1; i <= n; i++ {
		key[uint(i)] = "A"
	}
	return key
}

func TestGradeScoresAgainstIssuedDenominator(t *testing.T) {
	grader := NewGradingService()
	key := answerKey(15)

	answers := make([]dto.SubmittedAnswer, 0, 11)
	for i := 1; i <= 11; i++ {
		answers = append(answers, dto.SubmittedAnswer{QuestionID: uint(i), Answer: "A"})
	}
	for i := 12; i <= 15; i++ {
		answers = append(answers, dto.SubmittedAnswer{QuestionID: uint(i), Answer: "B"})
	}

	correct, score := grader.Grade(key, answers, 15)
	assert.Equal(t, 11, correct)
	assert.Equal(t, 73.33, score)
}

func TestGradeShortExamUsesRealizedSize(t *testing.T) {
	grader := NewGradingService()
	key := answerKey(12)

	answers := make([]dto.SubmittedAnswer, 0, 12)
	for i := 1; i <= 9; i++ {
		answers = append(answers, dto.SubmittedAnswer{QuestionID: uint(i), Answer: "A"})
	}

	correct, score := grader.Grade(key, answers, 12)
	assert.Equal(t, 9, correct)
	assert.Equal(t, 75.0, score)
}

func TestGradeIsCaseInsensitive(t *testing.T) {
	grader := NewGradingService()
	key := map[uint]string{1: "A", 2: "b"}

	correct, score := grader.Grade(key, []dto.SubmittedAnswer{
		{QuestionID: 1, Answer: "a"},
		{QuestionID: 2, Answer: "B"},
	}, 2)
	assert.Equal(t, 2, correct)
	assert.Equal(t, 100.0, score)
}

func TestGradeIgnoresAnswersOutsideFrozenSet(t *testing.T) {
	grader := NewGradingService()
	key := answerKey(2)

	correct, score := grader.Grade(key, []dto.SubmittedAnswer{
		{QuestionID: 1, Answer: "A"},
		{QuestionID: 999, Answer: "A"},
	}, 2)
	assert.Equal(t, 1, correct)
	assert.Equal(t, 50.0, score)
}

func TestGradeUnansweredQuestionsCountAsWrong(t *testing.T) {
	grader := NewGradingService()
	key := answerKey(10)

	correct, score := grader.Grade(key, []dto.SubmittedAnswer{
		{QuestionID: 1, Answer: "A"},
	}, 10)
	assert.Equal(t, 1, correct)
	assert.Equal(t, 10.0, score)
}

func TestGradeZeroDenominatorYieldsZeroScore(t *testing.T) {
	grader := NewGradingService()

	correct, score := grader.Grade(map[uint]string{}, nil, 0)
	assert.Equal(t, 0, correct)
	assert.Equal(t, 0.0, score)
}

func TestGradeRoundsToTwoDecimals(t *testing.T) {
	grader := NewGradingService()
	key := answerKey(3)

	_, score := grader.Grade(key, []dto.SubmittedAnswer{
		{QuestionID: 1, Answer: "A"},
	}, 3)
	assert.Equal(t, 33.33, score)

	_, score = grader.Grade(key, []dto.SubmittedAnswer{
		{QuestionID: 1, Answer: "A"},
		{QuestionID: 2, Answer: "A"},
	}, 3)
	assert.Equal(t, 66.67, score)
}
