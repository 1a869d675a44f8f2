package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/edulink/mentor-service/internal/dto"
	"github.com/edulink/mentor-service/internal/model"
	"github.com/edulink/mentor-service/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// TestSubmissionService grades a submission and persists its outcome:
// session completion, application transition, cooldown or provisioning, and
// the result emails.
type TestSubmissionService interface {
	SubmitSession(token string, req dto.SubmitTestRequest) (*dto.TestResultResponse, error)
}

type testSubmissionService struct {
	sessionRepo  repository.TestSessionRepository
	questionRepo repository.QuestionRepository
	grader       GradingService
	retryPolicy  RetryPolicyService
	accounts     AccountService
	mailer       EmailService
	db           *gorm.DB // transactions for the atomic check-and-set
}

func NewTestSubmissionService(
	sessionRepo repository.TestSessionRepository,
	questionRepo repository.QuestionRepository,
	grader GradingService,
	retryPolicy RetryPolicyService,
	accounts AccountService,
	mailer EmailService,
	db *gorm.DB,
) TestSubmissionService {
	return &testSubmissionService{
		sessionRepo:  sessionRepo,
		questionRepo: questionRepo,
		grader:       grader,
		retryPolicy:  retryPolicy,
		accounts:     accounts,
		mailer:       mailer,
		db:           db,
	}
}

// SubmitSession enforces the exam timing (including the one-minute grace
// period), grades against the frozen set and commits the outcome in a
// single transaction keyed on the session still being InProgress. A
// concurrent duplicate submission observes zero affected rows and fails
// with ErrAlreadyCompleted instead of re-grading.
func (s *testSubmissionService) SubmitSession(token string, req dto.SubmitTestRequest) (*dto.TestResultResponse, error) {
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
	if session.Status != model.SessionInProgress || session.StartedAt == nil {
		return nil, ErrNotStarted
	}

	deadline := session.StartedAt.Add(time.Duration(session.TimeLimitMinutes+graceMinutes) * time.Minute)
	if time.Now().After(deadline) {
		// The attempt is consumed without a score; the candidate must apply
		// again from scratch.
		expireErr := s.db.Model(&model.TestSession{}).
			Where("id = ? AND status = ?", session.ID, model.SessionInProgress).
			Update("status", model.SessionExpired).Error
		if expireErr != nil {
			log.Error().Err(expireErr).Uint("sessionID", session.ID).Msg("SubmitSession: failed to mark session expired")
		}
		return nil, ErrTimeExpired
	}

	ids, err := decodeQuestionIDs(session.QuestionIDs)
	if err != nil {
		return nil, err
	}
	questions, err := s.questionRepo.FindByIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load correct answers: %w", err)
	}
	correctByID := make(map[uint]string, len(questions))
	for _, q := range questions {
		correctByID[q.ID] = q.CorrectAnswer
	}

	correctCount, score := s.grader.Grade(correctByID, req.Answers, session.TotalQuestions)
	outcome := s.retryPolicy.Evaluate(score)

	submittedRaw, err := json.Marshal(req.Answers)
	if err != nil {
		return nil, fmt.Errorf("failed to encode submitted answers: %w", err)
	}

	application := session.Application
	now := time.Now()
	var retryAllowedAt *time.Time

	err = s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.TestSession{}).
			Where("id = ? AND status = ?", session.ID, model.SessionInProgress).
			Updates(map[string]interface{}{
				"status":            model.SessionCompleted,
				"completed_at":      now,
				"correct_answers":   correctCount,
				"score":             score,
				"submitted_answers": string(submittedRaw),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Another submission won the race; its score stands.
			return ErrAlreadyCompleted
		}

		applicationUpdates := map[string]interface{}{
			"test_attempts": gorm.Expr("test_attempts + 1"),
			"final_score":   score,
		}
		if outcome.Passed {
			applicationUpdates["status"] = model.ApplicationApproved
			applicationUpdates["retry_allowed_at"] = nil
		} else {
			retryAt := now.AddDate(0, 0, outcome.CooldownDays)
			retryAllowedAt = &retryAt
			applicationUpdates["status"] = model.ApplicationRejected
			applicationUpdates["retry_allowed_at"] = retryAt
		}
		return tx.Model(&model.Application{}).
			Where("id = ?", application.ID).
			Updates(applicationUpdates).Error
	})
	if err != nil {
		if errors.Is(err, ErrAlreadyCompleted) {
			return nil, ErrAlreadyCompleted
		}
		return nil, fmt.Errorf("failed to persist test outcome: %w", err)
	}

	application.FinalScore = &score
	application.TestAttempts++
	application.RetryAllowedAt = retryAllowedAt

	var message string
	if outcome.Passed {
		application.Status = model.ApplicationApproved
		message = fmt.Sprintf("Congratulations! You passed with %.2f%%! You are now an EduLink Mentor.", score)
		s.provisionAndNotify(&application, score)
	} else {
		application.Status = model.ApplicationRejected
		message = fmt.Sprintf("You scored %.2f%%. You need at least 70%% to pass. You can retry after %d days.", score, outcome.CooldownDays)
		if mailErr := s.mailer.SendRejection(&application, score, *retryAllowedAt); mailErr != nil {
			log.Error().Err(mailErr).Str("email", application.Email).Msg("SubmitSession: failed to send rejection email")
		}
	}

	log.Info().
		Uint("sessionID", session.ID).
		Float64("score", score).
		Bool("passed", outcome.Passed).
		Int("attempts", application.TestAttempts).
		Msg("Test submission graded")

	return &dto.TestResultResponse{
		TestID:         session.ID,
		TotalQuestions: session.TotalQuestions,
		CorrectAnswers: correctCount,
		Score:          score,
		Passed:         outcome.Passed,
		Message:        message,
		Status:         application.Status,
		RetryAllowedAt: retryAllowedAt,
	}, nil
}

// provisionAndNotify runs the post-approval side effects. Both are
// fire-and-continue: the graded outcome is already committed and must not
// appear to fail from the candidate's point of view.
func (s *testSubmissionService) provisionAndNotify(application *model.Application, score float64) {
	generatedPassword := ""
	result, err := s.accounts.Provision(application)
	if err != nil {
		// Application stays Approved; provisioning is retried manually.
		log.Error().Err(err).Uint("applicationID", application.ID).Msg("SubmitSession: account provisioning failed, flagged for manual follow-up")
	} else {
		generatedPassword = result.GeneratedPassword
		application.LinkedAccountID = &result.AccountID
		linkErr := s.db.Model(&model.Application{}).
			Where("id = ?", application.ID).
			Update("linked_account_id", result.AccountID).Error
		if linkErr != nil {
			log.Error().Err(linkErr).Uint("applicationID", application.ID).Msg("SubmitSession: failed to link provisioned account")
		}
	}

	if mailErr := s.mailer.SendApproval(application, score, generatedPassword); mailErr != nil {
		log.Error().Err(mailErr).Str("email", application.Email).Msg("SubmitSession: failed to send approval email")
	}
}
