package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/edulink/mentor-service/internal/dto"
	"github.com/edulink/mentor-service/internal/model"
	"github.com/edulink/mentor-service/internal/repository"
)

type submissionFixture struct {
	db          *gorm.DB
	application *model.Application
	token       string
	questionIDs []uint
	mailer      *recordingMailer
	svc         TestSubmissionService
}

// newSubmissionFixture walks a candidate to an in-progress exam: seeded
// bank, issued token and a started session with a frozen question set. Every
// seeded question's correct answer is A.
func newSubmissionFixture(t *testing.T) *submissionFixture {
	t.Helper()

	db := newTestDB(t)
	seedQuestions(t, db, map[string]int{
		"Software Engineering": 10,
		model.GeneralCategory:  10,
	})
	application := createApplication(t, db, "linh@example.com", "Software Engineering")

	sessions := newSessionService(t, db)
	session, err := sessions.IssueSession(application)
	require.NoError(t, err)
	started, err := sessions.StartSession(session.Token)
	require.NoError(t, err)

	ids := make([]uint, len(started.Questions))
	for i, q := range started.Questions {
		ids[i] = q.ID
	}

	mailer := &recordingMailer{}
	svc := NewTestSubmissionService(
		repository.NewTestSessionRepository(db),
		repository.NewQuestionRepository(db),
		NewGradingService(),
		NewRetryPolicyService(),
		NewAccountService(repository.NewUserRepository(db)),
		mailer,
		db,
	)
	return &submissionFixture{
		db:          db,
		application: application,
		token:       session.Token,
		questionIDs: ids,
		mailer:      mailer,
		svc:         svc,
	}
}

// answers builds a submission with the first correctCount answers right and
// the rest wrong.
func (f *submissionFixture) answers(correctCount int) dto.SubmitTestRequest {
	req := dto.SubmitTestRequest{Token: f.token}
	for i, id := range f.questionIDs {
		answer := "B"
		if i < correctCount {
			answer = "A"
		}
		req.Answers = append(req.Answers, dto.SubmittedAnswer{QuestionID: id, Answer: answer})
	}
	return req
}

func (f *submissionFixture) reloadApplication(t *testing.T) *model.Application {
	t.Helper()
	var application model.Application
	require.NoError(t, f.db.First(&application, f.application.ID).Error)
	return &application
}

func (f *submissionFixture) backdateStart(t *testing.T, elapsed time.Duration) {
	t.Helper()
	require.NoError(t, f.db.Model(&model.TestSession{}).
		Where("application_id = ?", f.application.ID).
		Update("started_at", time.Now().Add(-elapsed)).Error)
}

func TestSubmitPassingScoreApprovesAndProvisions(t *testing.T) {
	f := newSubmissionFixture(t)

	result, err := f.svc.SubmitSession(f.token, f.answers(15))
	require.NoError(t, err)

	assert.Equal(t, 15, result.CorrectAnswers)
	assert.Equal(t, 100.0, result.Score)
	assert.True(t, result.Passed)
	assert.Equal(t, model.ApplicationApproved, result.Status)
	assert.Nil(t, result.RetryAllowedAt)

	application := f.reloadApplication(t)
	assert.Equal(t, model.ApplicationApproved, application.Status)
	assert.Equal(t, 1, application.TestAttempts)
	require.NotNil(t, application.FinalScore)
	assert.Equal(t, 100.0, *application.FinalScore)
	assert.Nil(t, application.RetryAllowedAt)
	require.NotNil(t, application.LinkedAccountID)

	var user model.User
	require.NoError(t, f.db.Where("email = ?", "linh@example.com").First(&user).Error)
	assert.Equal(t, *application.LinkedAccountID, user.ID)
	assert.Equal(t, model.RoleMentor, user.Role)
	assert.True(t, user.EmailVerified)

	mail := f.mailer.last(t)
	assert.Equal(t, "approval", mail.Kind)
	assert.NotEmpty(t, mail.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(mail.Password)),
		"the mailed password must match the stored hash")
}

func TestSubmitPassUpgradesExistingAccountInPlace(t *testing.T) {
	f := newSubmissionFixture(t)
	existing := &model.User{
		ID:           "7b4d2a90-1111-2222-3333-444455556666",
		Email:        "linh@example.com",
		PasswordHash: "$2a$10$existinghashexistinghashexisting",
		Role:         model.RoleStudent,
	}
	require.NoError(t, f.db.Create(existing).Error)

	_, err := f.svc.SubmitSession(f.token, f.answers(15))
	require.NoError(t, err)

	var users []model.User
	require.NoError(t, f.db.Where("email = ?", "linh@example.com").Find(&users).Error)
	require.Len(t, users, 1, "no second account may be created")
	assert.Equal(t, model.RoleMentor, users[0].Role)
	assert.Equal(t, existing.PasswordHash, users[0].PasswordHash, "upgrades must not touch the credential")

	mail := f.mailer.last(t)
	assert.Equal(t, "approval", mail.Kind)
	assert.Empty(t, mail.Password)
}

func TestSubmitLowScoreSetsLongCooldown(t *testing.T) {
	f := newSubmissionFixture(t)

	result, err := f.svc.SubmitSession(f.token, f.answers(0))
	require.NoError(t, err)

	assert.False(t, result.Passed)
	assert.Equal(t, 0.0, result.Score)
	assert.Equal(t, model.ApplicationRejected, result.Status)
	require.NotNil(t, result.RetryAllowedAt)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, 14), *result.RetryAllowedAt, time.Minute)

	application := f.reloadApplication(t)
	assert.Equal(t, model.ApplicationRejected, application.Status)
	assert.Equal(t, 1, application.TestAttempts)

	mail := f.mailer.last(t)
	assert.Equal(t, "rejection", mail.Kind)

	var users []model.User
	require.NoError(t, f.db.Find(&users).Error)
	assert.Empty(t, users, "failed candidates never get accounts")
}

func TestSubmitNearMissSetsShortCooldown(t *testing.T) {
	f := newSubmissionFixture(t)

	// 9/15 = 60%: below passing but above the low-score boundary.
	result, err := f.svc.SubmitSession(f.token, f.answers(9))
	require.NoError(t, err)

	assert.False(t, result.Passed)
	assert.Equal(t, 60.0, result.Score)
	require.NotNil(t, result.RetryAllowedAt)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, 7), *result.RetryAllowedAt, time.Minute)
}

// completingGrader grades normally but completes the session out-of-band
// first, interleaving like a concurrent submission that commits between this
// request's grading and its write.
type completingGrader struct {
	inner     GradingService
	db        *gorm.DB
	sessionID uint
	score     float64
}

func (g *completingGrader) Grade(correctByQuestionID map[uint]string, answers []dto.SubmittedAnswer, totalQuestions int) (int, float64) {
	g.db.Model(&model.TestSession{}).
		Where("id = ?", g.sessionID).
		Updates(map[string]interface{}{
			"status":       model.SessionCompleted,
			"completed_at": time.Now(),
			"score":        g.score,
		})
	return g.inner.Grade(correctByQuestionID, answers, totalQuestions)
}

func TestConcurrentSubmissionLoserDoesNotOverwriteScore(t *testing.T) {
	f := newSubmissionFixture(t)
	var session model.TestSession
	require.NoError(t, f.db.Where("application_id = ?", f.application.ID).First(&session).Error)

	grader := &completingGrader{inner: NewGradingService(), db: f.db, sessionID: session.ID, score: 60.0}
	svc := NewTestSubmissionService(
		repository.NewTestSessionRepository(f.db),
		repository.NewQuestionRepository(f.db),
		grader,
		NewRetryPolicyService(),
		NewAccountService(repository.NewUserRepository(f.db)),
		f.mailer,
		f.db,
	)

	_, err := svc.SubmitSession(f.token, f.answers(15))
	assert.ErrorIs(t, err, ErrAlreadyCompleted)

	var stored model.TestSession
	require.NoError(t, f.db.First(&stored, session.ID).Error)
	require.NotNil(t, stored.Score)
	assert.Equal(t, 60.0, *stored.Score, "the first committed score stands")

	application := f.reloadApplication(t)
	assert.Equal(t, 0, application.TestAttempts, "the losing submission must not touch the application")
	assert.Nil(t, application.FinalScore)
	assert.Empty(t, f.mailer.sent, "the losing submission must not notify")
}

func TestSubmitTwiceKeepsTheFirstScore(t *testing.T) {
	f := newSubmissionFixture(t)

	first, err := f.svc.SubmitSession(f.token, f.answers(9))
	require.NoError(t, err)

	_, err = f.svc.SubmitSession(f.token, f.answers(15))
	assert.ErrorIs(t, err, ErrAlreadyCompleted)

	var session model.TestSession
	require.NoError(t, f.db.Where("application_id = ?", f.application.ID).First(&session).Error)
	require.NotNil(t, session.Score)
	assert.Equal(t, first.Score, *session.Score, "the second submission must not re-grade")

	application := f.reloadApplication(t)
	assert.Equal(t, 1, application.TestAttempts)
}

func TestSubmitWithinGracePeriodIsGraded(t *testing.T) {
	f := newSubmissionFixture(t)
	f.backdateStart(t, 20*time.Minute+30*time.Second)

	result, err := f.svc.SubmitSession(f.token, f.answers(15))
	require.NoError(t, err)
	assert.True(t, result.Passed)
}

func TestSubmitAfterGracePeriodConsumesAttemptUngraded(t *testing.T) {
	f := newSubmissionFixture(t)
	f.backdateStart(t, 22*time.Minute)

	_, err := f.svc.SubmitSession(f.token, f.answers(15))
	assert.ErrorIs(t, err, ErrTimeExpired)

	var session model.TestSession
	require.NoError(t, f.db.Where("application_id = ?", f.application.ID).First(&session).Error)
	assert.Equal(t, model.SessionExpired, session.Status)
	assert.Nil(t, session.Score)

	application := f.reloadApplication(t)
	assert.Equal(t, 0, application.TestAttempts)
	assert.Nil(t, application.FinalScore)
}

func TestSubmitRequiresAStartedSession(t *testing.T) {
	db := newTestDB(t)
	seedQuestions(t, db, map[string]int{"DevOps": 15})
	application := createApplication(t, db, "linh@example.com", "DevOps")

	sessions := newSessionService(t, db)
	session, err := sessions.IssueSession(application)
	require.NoError(t, err)

	svc := NewTestSubmissionService(
		repository.NewTestSessionRepository(db),
		repository.NewQuestionRepository(db),
		NewGradingService(),
		NewRetryPolicyService(),
		NewAccountService(repository.NewUserRepository(db)),
		&recordingMailer{},
		db,
	)

	_, err = svc.SubmitSession(session.Token, dto.SubmitTestRequest{Token: session.Token})
	assert.ErrorIs(t, err, ErrNotStarted)

	_, err = svc.SubmitSession("no-such-token", dto.SubmitTestRequest{Token: "no-such-token"})
	assert.ErrorIs(t, err, ErrInvalidToken)
}
