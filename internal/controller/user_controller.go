// internal/controller/user_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"statusfeed/internal/apperrors"
	"statusfeed/internal/service"
	"statusfeed/internal/utils"
	"statusfeed/internal/validation"
	"statusfeed/pkg/logger"
)

type UserController struct {
	userService service.UserService
	logger      logger.Logger
}

func NewUserController(
	userService service.UserService,
	logger logger.Logger,
) *UserController {
	return &UserController{
		userService: userService,
		logger:      logger.With(zap.String("module", "user_controller")),
	}
}

type registerRequest struct {
	Username        string `json:"username" binding:"required,notblank"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required,eqfield=Password"`
}

func (c *UserController) Register(ctx *gin.Context) {
	var req registerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, "invalid registration payload")
		return
	}

	user, err := c.userService.Register(req.Username, req.Password)
	if err != nil {
		c.logger.Warn("registration rejected",
			zap.String("username", req.Username),
			zap.Error(err),
		)
		// password failures also carry the strength label
		if ve := apperrors.AsValidation(err); ve != nil && ve.Field == "password" {
			report := validation.CheckPassword(req.Password)
			utils.PasswordRejected(ctx, ve.Reasons, report.Strength())
			return
		}
		respondDomainError(ctx, err)
		return
	}

	c.logger.Info("user registered", zap.Uint("id", user.ID))
	ctx.JSON(http.StatusCreated, gin.H{
		"code": http.StatusCreated,
		"data": gin.H{"id": user.ID, "username": user.Username},
	})
}

func (c *UserController) GetUser(ctx *gin.Context) {
	username := ctx.Param("username")

	user, err := c.userService.GetUserByUsername(username)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}
	utils.Success(ctx, user)
}
