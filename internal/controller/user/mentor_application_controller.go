package user

import (
	"errors"
	"net/http"

	"github.com/edulink/mentor-service/internal/dto"
	"github.com/edulink/mentor-service/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type MentorApplicationController struct {
	applicationService service.ApplicationService
	sessionService     service.TestSessionService
	submissionService  service.TestSubmissionService
}

func NewMentorApplicationController(
	applicationService service.ApplicationService,
	sessionService service.TestSessionService,
	submissionService service.TestSubmissionService,
) *MentorApplicationController {
	return &MentorApplicationController{
		applicationService: applicationService,
		sessionService:     sessionService,
		submissionService:  submissionService,
	}
}

// GetSpecializations godoc
// @Summary List the allowed specialization tags
// @Tags Mentor Applications
// @Produce json
// @Success 200 {array} string
// @Router /mentor-applications/specializations [get]
func (c *MentorApplicationController) GetSpecializations(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.applicationService.Specializations())
}

// Apply godoc
// @Summary Submit a mentor application
// @Description Creates (or, after an expired cooldown, resubmits) an application and emails a test link.
// @Tags Mentor Applications
// @Accept json
// @Produce json
// @Param application body dto.CreateApplicationRequest true "Candidate profile"
// @Success 200 {object} dto.ApplicationSubmittedResponse
// @Failure 400 {object} dto.ErrorResponse "Validation error or conflicting application"
// @Failure 500 {object} dto.ErrorResponse
// @Router /mentor-applications/apply [post]
func (c *MentorApplicationController) Apply(ctx *gin.Context) {
	var req dto.CreateApplicationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.applicationService.Apply(req)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// VerifyToken godoc
// @Summary Verify a test token
// @Description Returns validity and candidate-facing metadata; never question content.
// @Tags Mentor Applications
// @Accept json
// @Produce json
// @Param request body dto.VerifyTokenRequest true "Test token"
// @Success 200 {object} dto.VerifyTokenResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /mentor-applications/verify-token [post]
func (c *MentorApplicationController) VerifyToken(ctx *gin.Context) {
	var req dto.VerifyTokenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.sessionService.VerifyToken(req.Token)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// StartTest godoc
// @Summary Start (or resume) the assessment
// @Description Freezes the question set on first call; repeated calls return the same set.
// @Tags Mentor Applications
// @Accept json
// @Produce json
// @Param request body dto.StartTestRequest true "Test token"
// @Success 200 {object} dto.StartTestResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid, expired or completed token"
// @Failure 500 {object} dto.ErrorResponse
// @Router /mentor-applications/start-test [post]
func (c *MentorApplicationController) StartTest(ctx *gin.Context) {
	var req dto.StartTestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.sessionService.StartSession(req.Token)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// SubmitTest godoc
// @Summary Submit answers and receive the graded result
// @Tags Mentor Applications
// @Accept json
// @Produce json
// @Param request body dto.SubmitTestRequest true "Token and answers"
// @Success 200 {object} dto.TestResultResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid token, expired exam or duplicate submission"
// @Failure 500 {object} dto.ErrorResponse
// @Router /mentor-applications/submit-test [post]
func (c *MentorApplicationController) SubmitTest(ctx *gin.Context) {
	var req dto.SubmitTestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.submissionService.SubmitSession(req.Token, req)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetStatus godoc
// @Summary Check application status by email
// @Tags Mentor Applications
// @Produce json
// @Param email path string true "Candidate email"
// @Success 200 {object} dto.ApplicationResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /mentor-applications/status/{email} [get]
func (c *MentorApplicationController) GetStatus(ctx *gin.Context) {
	email := ctx.Param("email")

	resp, err := c.applicationService.GetStatus(email)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// respondServiceError maps the service error taxonomy onto HTTP statuses.
func respondServiceError(ctx *gin.Context, err error) {
	var retryErr *service.RetryNotAllowedError
	switch {
	case errors.Is(err, service.ErrApplicationNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
	case errors.As(err, &retryErr),
		errors.Is(err, service.ErrAlreadyMentor),
		errors.Is(err, service.ErrAlreadyPending),
		errors.Is(err, service.ErrInvalidSpecialization),
		errors.Is(err, service.ErrInvalidToken),
		errors.Is(err, service.ErrAlreadyCompleted),
		errors.Is(err, service.ErrTokenExpired),
		errors.Is(err, service.ErrTimeExpired),
		errors.Is(err, service.ErrNotStarted):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, service.ErrInsufficientQuestionBank):
		log.Error().Err(err).Msg("Question bank cannot assemble an exam")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: err.Error()})
	default:
		log.Error().Err(err).Msg("Unhandled service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Internal server error"})
	}
}
