package service

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/edulink/mentor-service/internal/model"
	"github.com/edulink/mentor-service/internal/repository"
)

// backfillThreshold is the minimum primary draw below which the selector
// reaches into the general pool.
const backfillThreshold = 10

// QuestionSelectorService draws a randomized, non-repeating question set for
// one exam.
type QuestionSelectorService interface {
	SelectQuestions(category string, count int) ([]model.Question, error)
}

type questionSelectorService struct {
	questionRepo repository.QuestionRepository
	mu           sync.Mutex
	rng          *rand.Rand
}

func NewQuestionSelectorService(questionRepo repository.QuestionRepository) QuestionSelectorService {
	return NewQuestionSelectorServiceWithSource(questionRepo, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewQuestionSelectorServiceWithSource accepts an explicit random source so
// tests can pin a seed and assert exact draws. The shuffle does not need
// cryptographic randomness; the session token is what guards the exam.
func NewQuestionSelectorServiceWithSource(questionRepo repository.QuestionRepository, rng *rand.Rand) QuestionSelectorService {
	return &questionSelectorService{questionRepo: questionRepo, rng: rng}
}

// SelectQuestions draws up to count active questions tagged with category or
// the general pool, in random order without replacement. When the primary
// draw comes up short it backfills from the remaining active questions of
// any category. The realized set may be smaller than count if the bank is
// exhausted; the caller records the realized size as the denominator.
func (s *questionSelectorService) SelectQuestions(category string, count int) ([]model.Question, error) {
	primary, err := s.questionRepo.FindActiveByCategories([]string{category, model.GeneralCategory})
	if err != nil {
		return nil, fmt.Errorf("failed to load questions for category %q: %w", category, err)
	}

	s.shuffle(primary)
	selected := primary
	if len(selected) > count {
		selected = selected[:count]
	}

	if len(selected) < backfillThreshold {
		excluded := make([]uint, 0, len(selected))
		for _, q := range selected {
			excluded = append(excluded, q.ID)
		}
		rest, err := s.questionRepo.FindActiveExcluding(excluded)
		if err != nil {
			return nil, fmt.Errorf("failed to backfill question set: %w", err)
		}
		s.shuffle(rest)
		for _, q := range rest {
			if len(selected) >= count {
				break
			}
			selected = append(selected, q)
		}
	}

	return selected, nil
}

func (s *questionSelectorService) shuffle(questions []model.Question) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rng.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})
}
