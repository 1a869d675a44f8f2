package user

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/edulink/mentor-service/internal/dto"
	"github.com/edulink/mentor-service/internal/model"
	"github.com/edulink/mentor-service/internal/repository"
	"github.com/edulink/mentor-service/internal/service"
)

// noopMailer satisfies the outbound boundary without an SMTP server.
type noopMailer struct{}

func (noopMailer) SendTestInvitation(*model.Application, string) error        { return nil }
func (noopMailer) SendApproval(*model.Application, float64, string) error     { return nil }
func (noopMailer) SendRejection(*model.Application, float64, time.Time) error { return nil }

// newTestRouter wires the full candidate-facing stack over an isolated
// in-memory database.
func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Application{}, &model.TestSession{}, &model.Question{}, &model.User{}))

	var questions []model.Question
	for i := 0; i < 15; i++ {
		questions = append(questions, model.Question{
			Category:      "Software Engineering",
			QuestionText:  fmt.Sprintf("Question %d?", i+1),
			OptionA:       "Right",
			OptionB:       "Wrong",
			OptionC:       "Wrong",
			OptionD:       "Wrong",
			CorrectAnswer: "A",
			IsActive:      true,
		})
	}
	require.NoError(t, db.Create(&questions).Error)

	applicationRepo := repository.NewApplicationRepository(db)
	sessionRepo := repository.NewTestSessionRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	userRepo := repository.NewUserRepository(db)

	selector := service.NewQuestionSelectorService(questionRepo)
	sessions := service.NewTestSessionService(sessionRepo, questionRepo, selector)
	submissions := service.NewTestSubmissionService(
		sessionRepo, questionRepo,
		service.NewGradingService(),
		service.NewRetryPolicyService(),
		service.NewAccountService(userRepo),
		noopMailer{},
		db,
	)
	applications := service.NewApplicationService(applicationRepo, sessions, noopMailer{})

	ctrl := NewMentorApplicationController(applications, sessions, submissions)

	r := gin.New()
	api := r.Group("/api/v1/mentor-applications")
	api.GET("/specializations", ctrl.GetSpecializations)
	api.POST("/apply", ctrl.Apply)
	api.POST("/verify-token", ctrl.VerifyToken)
	api.POST("/start-test", ctrl.StartTest)
	api.POST("/submit-test", ctrl.SubmitTest)
	api.GET("/status/:email", ctrl.GetStatus)
	return r, db
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func applyBody() dto.CreateApplicationRequest {
	return dto.CreateApplicationRequest{
		FullName:       "Linh Tran",
		Email:          "linh@example.com",
		Specialization: "Software Engineering",
	}
}

func TestFullAssessmentFlowOverHTTP(t *testing.T) {
	router, db := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/mentor-applications/apply", applyBody())
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var applied dto.ApplicationSubmittedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &applied))
	assert.Equal(t, model.ApplicationTestSent, applied.Status)

	var session model.TestSession
	require.NoError(t, db.Where("application_id = ?", applied.ApplicationID).First(&session).Error)

	w = doJSON(t, router, http.MethodPost, "/api/v1/mentor-applications/verify-token", dto.VerifyTokenRequest{Token: session.Token})
	require.Equal(t, http.StatusOK, w.Code)
	var verified dto.VerifyTokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &verified))
	assert.True(t, verified.IsValid)

	w = doJSON(t, router, http.MethodPost, "/api/v1/mentor-applications/start-test", dto.StartTestRequest{Token: session.Token})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var started dto.StartTestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &started))
	require.Len(t, started.Questions, 15)

	// The wire payload must never leak the answer key.
	assert.NotContains(t, w.Body.String(), "correct_answer")
	assert.NotContains(t, w.Body.String(), "explanation")

	submit := dto.SubmitTestRequest{Token: session.Token}
	for _, q := range started.Questions {
		submit.Answers = append(submit.Answers, dto.SubmittedAnswer{QuestionID: q.ID, Answer: "A"})
	}
	w = doJSON(t, router, http.MethodPost, "/api/v1/mentor-applications/submit-test", submit)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var result dto.TestResultResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.True(t, result.Passed)
	assert.Equal(t, 100.0, result.Score)
	assert.Equal(t, model.ApplicationApproved, result.Status)

	w = doJSON(t, router, http.MethodGet, "/api/v1/mentor-applications/status/linh@example.com", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var status dto.ApplicationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.Equal(t, model.ApplicationApproved, status.Status)

	// A second submission of the same exam is refused.
	w = doJSON(t, router, http.MethodPost, "/api/v1/mentor-applications/submit-test", submit)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestApplyValidationErrors(t *testing.T) {
	router, _ := newTestRouter(t)

	body := applyBody()
	body.Email = "not-an-email"
	w := doJSON(t, router, http.MethodPost, "/api/v1/mentor-applications/apply", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	body = applyBody()
	body.FullName = ""
	w = doJSON(t, router, http.MethodPost, "/api/v1/mentor-applications/apply", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	body = applyBody()
	body.Specialization = "Time Travel"
	w = doJSON(t, router, http.MethodPost, "/api/v1/mentor-applications/apply", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDuplicateApplicationIsRejectedOverHTTP(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/mentor-applications/apply", applyBody())
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/v1/mentor-applications/apply", applyBody())
	assert.Equal(t, http.StatusBadRequest, w.Code)
	var errResp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
	assert.Contains(t, errResp.Message, "pending")
}

func TestStatusNotFoundOverHTTP(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/mentor-applications/status/nobody@example.com", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetSpecializationsOverHTTP(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/mentor-applications/specializations", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var tags []string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tags))
	assert.Len(t, tags, 14)
}

func TestInvalidTokenOverHTTP(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/mentor-applications/start-test", dto.StartTestRequest{Token: "bogus"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/v1/mentor-applications/verify-token", dto.VerifyTokenRequest{Token: "bogus"})
	require.Equal(t, http.StatusOK, w.Code)
	var verified dto.VerifyTokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &verified))
	assert.False(t, verified.IsValid)
}
