package admin

import (
	"net/http"

	"github.com/edulink/mentor-service/internal/dto"
	"github.com/edulink/mentor-service/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type AdminApplicationController struct {
	applicationService service.ApplicationService
}

func NewAdminApplicationController(applicationService service.ApplicationService) *AdminApplicationController {
	return &AdminApplicationController{applicationService: applicationService}
}

// GetAllApplications godoc
// @Summary (Admin) List mentor applications
// @Description Paginated listing of all applications, optionally filtered by status. Requires an Admin bearer token.
// @Tags Admin
// @Produce json
// @Param status query string false "Filter by status" Enums(Pending, TestSent, Approved, Rejected)
// @Param page query int false "Page number (1-based)"
// @Param page_size query int false "Page size (max 100)"
// @Security BearerAuth
// @Success 200 {object} dto.ApplicationListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /mentor-applications/admin/all [get]
func (c *AdminApplicationController) GetAllApplications(ctx *gin.Context) {
	var query dto.ListApplicationsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid query parameters", Details: []string{err.Error()}})
		return
	}

	resp, err := c.applicationService.ListApplications(query)
	if err != nil {
		log.Error().Err(err).Msg("Admin GetAllApplications: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to list applications"})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
