// Package controllers handles HTTP request handling for department
// registration and status.
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/campusreg/deptregistry/internal/app/models/dto"
	"github.com/campusreg/deptregistry/internal/app/services"
	"github.com/campusreg/deptregistry/internal/middleware"
	"github.com/campusreg/deptregistry/internal/pkg/dberrors"
)

// DepartmentController handles department-related endpoints.
type DepartmentController struct {
	registrationService *services.RegistrationService
	statusService       *services.StatusService
	approvalService     *services.ApprovalService
	logger              zerolog.Logger
}

// NewDepartmentController creates a new DepartmentController.
func NewDepartmentController(
	registrationService *services.RegistrationService,
	statusService *services.StatusService,
	approvalService *services.ApprovalService,
	logger zerolog.Logger,
) *DepartmentController {
	return &DepartmentController{
		registrationService: registrationService,
		statusService:       statusService,
		approvalService:     approvalService,
		logger:              logger,
	}
}

// Register handles POST /departments.
func (c *DepartmentController) Register(ctx *gin.Context) {
	var req dto.RegisterDepartmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid registration request payload")
		ctx.JSON(http.StatusBadRequest,
			dto.NewErrorResponse("Invalid request body").WithError(err.Error()))
		return
	}

	summary, err := c.registrationService.Register(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated,
		dto.NewSuccessResponse(summary, "Department registration successful. Wait for approval!"))
}

// GetStatus handles GET /departments/:id.
func (c *DepartmentController) GetStatus(ctx *gin.Context) {
	id, ok := c.parseID(ctx)
	if !ok {
		return
	}

	view, err := c.statusService.GetStatus(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(view, ""))
}

// Approve handles POST /departments/:id/approve.
func (c *DepartmentController) Approve(ctx *gin.Context) {
	id, ok := c.parseID(ctx)
	if !ok {
		return
	}

	view, err := c.approvalService.Approve(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(view, "Department approved"))
}

// Reject handles POST /departments/:id/reject.
func (c *DepartmentController) Reject(ctx *gin.Context) {
	id, ok := c.parseID(ctx)
	if !ok {
		return
	}

	view, err := c.approvalService.Reject(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(view, "Department rejected"))
}

// ActivatePassword handles POST /departments/activate.
func (c *DepartmentController) ActivatePassword(ctx *gin.Context) {
	var req dto.ActivatePasswordRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	if err := c.approvalService.ActivatePassword(ctx.Request.Context(), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Admin password set successfully"))
}

// parseID rejects malformed identifiers as client-input errors before any
// storage access.
func (c *DepartmentController) parseID(ctx *gin.Context) (uuid.UUID, bool) {
	idStr := ctx.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.logger.Warn().Str("id", idStr).Msg("Malformed department identifier")
		ctx.JSON(http.StatusBadRequest,
			dto.NewErrorResponse("Invalid id: "+idStr).WithErrorCode(dberrors.CodeInvalidIDFormat))
		return uuid.Nil, false
	}
	return id, true
}
