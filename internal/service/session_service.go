package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/edulink/mentor-service/internal/dto"
	"github.com/edulink/mentor-service/internal/model"
	"github.com/edulink/mentor-service/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Exam parameters. The token validity window is independent of the exam
// timer: the candidate has 48 hours to click the link and 20 minutes once
// started.
const (
	tokenValidityHours   = 48
	examTimeLimitMinutes = 20
	targetQuestionCount  = 15
	minimumBankSize      = 10
	graceMinutes         = 1
)

// TestSessionService owns the lifecycle of one assessment attempt up to
// submission: token issuance, verification and the (idempotent) start.
type TestSessionService interface {
	IssueSession(application *model.Application) (*model.TestSession, error)
	VerifyToken(token string) (*dto.VerifyTokenResponse, error)
	StartSession(token string) (*dto.StartTestResponse, error)
}

type testSessionService struct {
	sessionRepo  repository.TestSessionRepository
	questionRepo repository.QuestionRepository
	selector     QuestionSelectorService
}

func NewTestSessionService(
	sessionRepo repository.TestSessionRepository,
	questionRepo repository.QuestionRepository,
	selector QuestionSelectorService,
) TestSessionService {
	return &testSessionService{
		sessionRepo:  sessionRepo,
		questionRepo: questionRepo,
		selector:     selector,
	}
}

// IssueSession creates a Pending session with a fresh single-use token. It
// refuses loudly when the bank cannot supply the minimum exam size, so a
// candidate is never mailed a link to an exam that cannot be assembled.
func (s *testSessionService) IssueSession(application *model.Application) (*model.TestSession, error) {
	active, err := s.questionRepo.CountActive()
	if err != nil {
		return nil, fmt.Errorf("failed to count active questions: %w", err)
	}
	if active < minimumBankSize {
		log.Error().Int64("activeQuestions", active).Msg("IssueSession: question bank below minimum exam size")
		return nil, ErrInsufficientQuestionBank
	}

	token, err := NewSessionToken()
	if err != nil {
		return nil, err
	}

	session := &model.TestSession{
		ApplicationID:    application.ID,
		Token:            token,
		Status:           model.SessionPending,
		ExpiresAt:        time.Now().Add(tokenValidityHours * time.Hour),
		TimeLimitMinutes: examTimeLimitMinutes,
		TotalQuestions:   targetQuestionCount,
	}
	if err := s.sessionRepo.Create(session); err != nil {
		return nil, fmt.Errorf("failed to create test session: %w", err)
	}

	log.Info().Uint("applicationID", application.ID).Uint("sessionID", session.ID).Msg("Test session issued")
	return session, nil
}

// VerifyToken reports validity plus candidate-facing metadata. Invalid
// tokens are a normal answer here, not an error: the response carries
// is_valid=false and a reason.
func (s *testSessionService) VerifyToken(token string) (*dto.VerifyTokenResponse, error) {
	session, err := s.sessionRepo.FindByToken(token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &dto.VerifyTokenResponse{IsValid: false, Message: "Invalid test token."}, nil
		}
		return nil, fmt.Errorf("failed to look up test session: %w", err)
	}

	if session.Status == model.SessionCompleted {
		return &dto.VerifyTokenResponse{IsValid: false, Message: "This test has already been completed."}, nil
	}
	if time.Now().After(session.ExpiresAt) {
		return &dto.VerifyTokenResponse{IsValid: false, Message: "This test link has expired."}, nil
	}

	expiresAt := session.ExpiresAt
	return &dto.VerifyTokenResponse{
		IsValid:          true,
		ApplicantName:    session.Application.FullName,
		Specialization:   session.Application.Specialization,
		TimeLimitMinutes: session.TimeLimitMinutes,
		TotalQuestions:   session.TotalQuestions,
		ExpiresAt:        &expiresAt,
	}, nil
}

// StartSession freezes the question set on the first call and starts the
// exam timer. Subsequent calls before completion resume the same frozen set.
func (s *testSessionService) StartSession(token string) (*dto.StartTestResponse, error) {
	session, err := s.sessionRepo.FindByToken(token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to look up test session: %w", err)
	}

	if session.Status == model.SessionCompleted {
		return nil, ErrAlreadyCompleted
	}
	if time.Now().After(session.ExpiresAt) {
		return nil, ErrTokenExpired
	}

	if session.Status == model.SessionInProgress && session.StartedAt != nil {
		return s.resumeSession(session)
	}

	questions, err := s.selector.SelectQuestions(session.Application.Specialization, targetQuestionCount)
	if err != nil {
		return nil, err
	}
	if len(questions) < minimumBankSize {
		log.Error().Int("selected", len(questions)).Msg("StartSession: question bank below minimum exam size")
		return nil, ErrInsufficientQuestionBank
	}

	ids := make([]uint, len(questions))
	for i, q := range questions {
		ids[i] = q.ID
	}
	encodedIDs, err := encodeQuestionIDs(ids)
	if err != nil {
		return nil, err
	}

	startedAt := time.Now()
	started, err := s.sessionRepo.StartIfNotStarted(session, map[string]interface{}{
		"status":          model.SessionInProgress,
		"started_at":      startedAt,
		"total_questions": len(questions),
		"question_ids":    encodedIDs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start test session: %w", err)
	}
	if !started {
		// Lost a race against another first start: re-read and resume the
		// set that won.
		session, err = s.sessionRepo.FindByToken(token)
		if err != nil {
			return nil, fmt.Errorf("failed to reload test session: %w", err)
		}
		if session.Status == model.SessionCompleted {
			return nil, ErrAlreadyCompleted
		}
		if session.StartedAt == nil {
			return nil, ErrNotStarted
		}
		return s.resumeSession(session)
	}

	log.Info().Uint("sessionID", session.ID).Int("questions", len(questions)).Msg("Test session started")
	return &dto.StartTestResponse{
		TestID:           session.ID,
		Questions:        toTestQuestions(questions),
		TimeLimitMinutes: session.TimeLimitMinutes,
		StartedAt:        startedAt,
		MustSubmitBy:     startedAt.Add(time.Duration(session.TimeLimitMinutes) * time.Minute),
	}, nil
}

// resumeSession returns the already-frozen question set, never a new draw.
func (s *testSessionService) resumeSession(session *model.TestSession) (*dto.StartTestResponse, error) {
	mustSubmitBy := session.StartedAt.Add(time.Duration(session.TimeLimitMinutes) * time.Minute)
	if time.Now().After(mustSubmitBy) {
		return nil, ErrTimeExpired
	}

	ids, err := decodeQuestionIDs(session.QuestionIDs)
	if err != nil {
		return nil, err
	}
	questions, err := s.questionRepo.FindByIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load frozen question set: %w", err)
	}
	questions = orderByFrozenIDs(questions, ids)

	return &dto.StartTestResponse{
		TestID:           session.ID,
		Questions:        toTestQuestions(questions),
		TimeLimitMinutes: session.TimeLimitMinutes,
		StartedAt:        *session.StartedAt,
		MustSubmitBy:     mustSubmitBy,
	}, nil
}

func toTestQuestions(questions []model.Question) []dto.TestQuestion {
	out := make([]dto.TestQuestion, 0, len(questions))
	for _, q := range questions {
		var tq dto.TestQuestion
		if err := copier.Copy(&tq, &q); err != nil {
			log.Error().Err(err).Uint("questionID", q.ID).Msg("Failed to map question to DTO")
			continue
		}
		out = append(out, tq)
	}
	return out
}

// orderByFrozenIDs restores the draw order recorded at start time, so a
// resumed exam shows questions in the same sequence.
func orderByFrozenIDs(questions []model.Question, ids []uint) []model.Question {
	byID := make(map[uint]model.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}
	ordered := make([]model.Question, 0, len(questions))
	for _, id := range ids {
		if q, ok := byID[id]; ok {
			ordered = append(ordered, q)
		}
	}
	return ordered
}

func encodeQuestionIDs(ids []uint) (string, error) {
	raw, err := json.Marshal(ids)
	if err != nil {
		return "", fmt.Errorf("failed to encode question ids: %w", err)
	}
	return string(raw), nil
}

func decodeQuestionIDs(encoded string) ([]uint, error) {
	if encoded == "" {
		return nil, nil
	}
	var ids []uint
	if err := json.Unmarshal([]byte(encoded), &ids); err != nil {
		return nil, fmt.Errorf("failed to decode question ids: %w", err)
	}
	return ids, nil
}
