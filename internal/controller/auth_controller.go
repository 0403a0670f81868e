// internal/controller/auth_controller.go
package controller

import (
	"net/http"
	"time"

	jwt "github.com/appleboy/gin-jwt/v2"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"statusfeed/internal/middleware"
	"statusfeed/internal/service"
	"statusfeed/pkg/logger"
)

type AuthController struct {
	jwtMiddleware *middleware.JWT
	userService   service.UserService
	logger        logger.Logger
}

func NewAuthController(
	jwtMiddleware *middleware.JWT,
	userService service.UserService,
	logger logger.Logger,
) *AuthController {
	return &AuthController{
		jwtMiddleware: jwtMiddleware,
		userService:   userService,
		logger:        logger.With(zap.String("module", "auth_controller")),
	}
}

// LoginHandler 登录接口
func (c *AuthController) LoginHandler(ctx *gin.Context) {
	c.jwtMiddleware.LoginHandler(ctx)
}

// RefreshHandler 刷新 Token 接口
func (c *AuthController) RefreshHandler(ctx *gin.Context) {
	c.jwtMiddleware.RefreshHandler(ctx)
}

// LogoutHandler 注销接口
func (c *AuthController) LogoutHandler(ctx *gin.Context) {
	c.jwtMiddleware.LogoutHandler(ctx)
}

type externalLoginRequest struct {
	Email       string `json:"email" binding:"required,email"`
	DisplayName string `json:"display_name"`
}

// ExternalLogin accepts the identity an external provider already
// verified, resolves or creates the matching account and mints a token.
// The provider handshake itself happens outside this service.
func (c *AuthController) ExternalLogin(ctx *gin.Context) {
	var req externalLoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"code":    http.StatusBadRequest,
			"message": "email is required",
		})
		return
	}

	user, err := c.userService.LoginExternal(req.Email, req.DisplayName)
	if err != nil {
		c.logger.Warn("external login rejected",
			zap.String("email", req.Email),
			zap.Error(err),
		)
		respondDomainError(ctx, err)
		return
	}

	token, expire, err := c.jwtMiddleware.TokenGenerator(user)
	if err != nil {
		c.logger.Error("token generation failed", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"code":    http.StatusInternalServerError,
			"message": "failed to issue token",
		})
		return
	}

	c.logger.Info("external login", zap.Uint("id", user.ID))
	ctx.JSON(http.StatusOK, gin.H{
		"code":    http.StatusOK,
		"token":   token,
		"expire":  expire.Format(time.RFC3339),
		"message": "login successful",
	})
}

// UserInfo 获取用户信息
func (c *AuthController) UserInfo(ctx *gin.Context) {
	claims := jwt.ExtractClaims(ctx)

	c.logger.Info("user info requested",
		zap.Any("claims", claims),
	)

	ctx.JSON(http.StatusOK, gin.H{
		"code": http.StatusOK,
		"data": claims,
	})
}
