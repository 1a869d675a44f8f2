package service

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/edulink/mentor-service/internal/model"
)

// newTestDB opens an isolated in-memory database migrated with the full
// schema. The DSN is keyed on the test name so parallel tests never share
// state.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.Application{},
		&model.TestSession{},
		&model.Question{},
		&model.User{},
	))
	return db
}

// seedQuestions inserts count active questions per category and returns the
// inserted rows. Every question's correct answer is option A.
func seedQuestions(t *testing.T, db *gorm.DB, counts map[string]int) []model.Question {
	t.Helper()

	var questions []model.Question
	for category, n := range counts {
		for i := 0; i < n; i++ {
			questions = append(questions, model.Question{
				Category:      category,
				QuestionText:  fmt.Sprintf("%s question %d?", category, i+1),
				OptionA:       "Right",
				OptionB:       "Wrong",
				OptionC:       "Wrong",
				OptionD:       "Wrong",
				CorrectAnswer: "A",
				Difficulty:    "Easy",
				IsActive:      true,
			})
		}
	}
	require.NoError(t, db.Create(&questions).Error)
	return questions
}

type sentMail struct {
	Kind  string // "invitation", "approval", "rejection"
	Email string
	Token string
	Score float64
	// Password is the generated credential included in an approval mail;
	// empty for upgraded accounts.
	Password       string
	RetryAllowedAt time.Time
}

// recordingMailer captures outbound mail instead of talking to an SMTP
// server.
type recordingMailer struct {
	mu   sync.Mutex
	sent []sentMail
	err  error
}

func (m *recordingMailer) SendTestInvitation(application *model.Application, token string) error {
	m.record(sentMail{Kind: "invitation", Email: application.Email, Token: token})
	return m.err
}

func (m *recordingMailer) SendApproval(application *model.Application, score float64, generatedPassword string) error {
	m.record(sentMail{Kind: "approval", Email: application.Email, Score: score, Password: generatedPassword})
	return m.err
}

func (m *recordingMailer) SendRejection(application *model.Application, score float64, retryAllowedAt time.Time) error {
	m.record(sentMail{Kind: "rejection", Email: application.Email, Score: score, RetryAllowedAt: retryAllowedAt})
	return m.err
}

func (m *recordingMailer) record(mail sentMail) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, mail)
}

func (m *recordingMailer) last(t *testing.T) sentMail {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.sent) == 0 {
		t.Fatal("no mail was sent")
	}
	return m.sent[len(m.sent)-1]
}
