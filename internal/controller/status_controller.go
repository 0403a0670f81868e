// internal/controller/status_controller.go
package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"statusfeed/internal/model"
	"statusfeed/internal/service"
	"statusfeed/internal/utils"
	"statusfeed/pkg/logger"
)

type StatusController struct {
	statusService service.StatusService
	logger        logger.Logger
}

func NewStatusController(
	statusService service.StatusService,
	logger logger.Logger,
) *StatusController {
	return &StatusController{
		statusService: statusService,
		logger:        logger.With(zap.String("module", "status_controller")),
	}
}

type statusRequest struct {
	Text string `json:"text" binding:"required"`
}

// currentUserID reads the account id the JWT middleware stored on the
// context. The route group guarantees it is present.
func currentUserID(ctx *gin.Context) (uint, bool) {
	id, ok := ctx.Get("userID")
	if !ok {
		return 0, false
	}
	userID, ok := id.(uint)
	return userID, ok
}

func statusIDParam(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func (c *StatusController) Create(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, "authentication required")
		return
	}

	var req statusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, "status text is required")
		return
	}

	status, err := c.statusService.Post(userID, req.Text)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	c.logger.Info("status posted",
		zap.Uint("user_id", userID),
		zap.Uint("status_id", status.ID),
	)
	ctx.JSON(http.StatusCreated, gin.H{
		"code": http.StatusCreated,
		"data": status,
	})
}

func (c *StatusController) List(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, "authentication required")
		return
	}

	statuses, err := c.statusService.List(userID)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}
	if statuses == nil {
		// an empty feed is a valid result, not null
		statuses = []model.Status{}
	}
	utils.Success(ctx, statuses)
}

func (c *StatusController) Update(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, "authentication required")
		return
	}
	statusID, ok := statusIDParam(ctx)
	if !ok {
		utils.Error(ctx, http.StatusBadRequest, "invalid status id")
		return
	}

	var req statusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, "status text is required")
		return
	}

	if err := c.statusService.Edit(userID, statusID, req.Text); err != nil {
		respondDomainError(ctx, err)
		return
	}
	utils.Success(ctx, "status updated")
}

func (c *StatusController) Delete(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, "authentication required")
		return
	}
	statusID, ok := statusIDParam(ctx)
	if !ok {
		utils.Error(ctx, http.StatusBadRequest, "invalid status id")
		return
	}

	if err := c.statusService.Delete(userID, statusID); err != nil {
		respondDomainError(ctx, err)
		return
	}
	utils.Success(ctx, "status deleted")
}
