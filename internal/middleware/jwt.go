// internal/middleware/jwt.go
package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	jwt "github.com/appleboy/gin-jwt/v2"
	"github.com/gin-gonic/gin"

	"statusfeed/internal/config"
	"statusfeed/internal/model"
	"statusfeed/internal/service"
	"statusfeed/pkg/jwtauth"
	"statusfeed/pkg/logger"
)

const (
	identityKey = "id"
)

var (
	ErrAccountLocked = errors.New("account temporarily locked, try again later")
)

type JWT struct {
	AuthMiddleware *jwt.GinJWTMiddleware
	logger         logger.Logger
	config         *config.Config
	blacklist      *jwtauth.Blacklist
}

func NewJWT(
	userService service.UserService,
	logger logger.Logger,
	config *config.Config,
	blacklist *jwtauth.Blacklist,
	userCache *jwtauth.UserCache,
	loginLock *jwtauth.LoginLock,
) (*JWT, error) {
	// 创建 JWT 中间件
	authMiddleware, err := jwt.New(&jwt.GinJWTMiddleware{
		Realm:       config.App.Name,
		Key:         []byte(config.JWT.SigningKey),
		Timeout:     config.JWT.Timeout,
		MaxRefresh:  config.JWT.MaxRefresh,
		IdentityKey: identityKey,

		// 登录回调函数
		Authenticator: func(c *gin.Context) (interface{}, error) {
			var login struct {
				Username string `json:"username" binding:"required"`
				Password string `json:"password" binding:"required"`
			}

			if err := c.ShouldBindJSON(&login); err != nil {
				return nil, jwt.ErrMissingLoginValues
			}

			logger.Info(fmt.Sprintf("Login attempt: %s", login.Username))

			locked, err := loginLock.IsLocked(c, login.Username)
			if err != nil {
				logger.Error(fmt.Sprintf("Lock lookup error: %v", err))
			}
			if locked {
				logger.Warn(fmt.Sprintf("Locked account login attempt: %s", login.Username))
				return nil, ErrAccountLocked
			}

			user, err := userService.Authenticate(login.Username, login.Password)
			if err != nil {
				logger.Warn(fmt.Sprintf("Failed login for user: %s", login.Username))
				if err := loginLock.RecordFailure(c, login.Username); err != nil {
					logger.Error(fmt.Sprintf("Failed to record login failure: %v", err))
				}
				return nil, jwt.ErrFailedAuthentication
			}

			// 登录成功后清除旧缓存和失败计数
			_ = userCache.Clear(c, user.ID)
			_ = loginLock.ClearFailures(c, login.Username)
			return user, nil
		},

		// 登录成功后返回数据
		LoginResponse: func(c *gin.Context, code int, token string, expire time.Time) {
			c.JSON(code, gin.H{
				"code":    code,
				"token":   token,
				"expire":  expire.Format(time.RFC3339),
				"message": "login successful",
			})
		},

		// 身份标识处理
		IdentityHandler: func(c *gin.Context) interface{} {
			claims := jwt.ExtractClaims(c)
			if id, ok := claims[identityKey].(float64); ok {
				return uint(id)
			}
			return nil
		},

		// 授权处理
		Authorizator: func(data interface{}, c *gin.Context) bool {
			userID, ok := data.(uint)
			if !ok {
				logger.Warn("Invalid JWT identity type")
				return false
			}

			// 检查令牌是否在黑名单中
			token := jwt.GetToken(c)
			if blacklist.IsBlacklisted(c, token) {
				logger.Warn(fmt.Sprintf("Revoked token used for user: %d", userID))
				return false
			}

			// 从缓存或数据库获取用户
			user, fromCache := userCache.Get(c, userID)
			if !fromCache {
				dbUser, err := userService.GetUserByID(userID)
				if err != nil {
					logger.Info(fmt.Sprintf("Unknown user in token: %d", userID))
					return false
				}
				user = dbUser
				if err := userCache.Set(c, user, config.JWT.CacheDuration); err != nil {
					logger.Error(fmt.Sprintf("Failed to cache user: %v", err))
				}
			}

			// 将用户信息存入上下文，供后续使用
			c.Set("currentUser", user)
			c.Set("userID", user.ID)

			return true
		},

		TokenLookup: "header: Authorization, query: token, cookie: jwt",

		TokenHeadName: "Bearer",

		TimeFunc: time.Now,

		// 统一错误响应
		Unauthorized: func(c *gin.Context, code int, message string) {
			c.JSON(code, gin.H{
				"code":    code,
				"message": message,
			})
		},

		// 在 JWT 中存储额外信息
		PayloadFunc: func(data interface{}) jwt.MapClaims {
			if user, ok := data.(*model.User); ok {
				return jwt.MapClaims{
					identityKey: user.ID,
				}
			}
			return jwt.MapClaims{}
		},
	})

	if err != nil {
		logger.Error(fmt.Sprintf("JWT middleware creation failed: %v", err))
		return nil, fmt.Errorf("failed to create JWT middleware: %w", err)
	}

	// 初始化中间件（重要！）
	if err := authMiddleware.MiddlewareInit(); err != nil {
		logger.Error(fmt.Sprintf("JWT middleware init failed: %v", err))
		return nil, fmt.Errorf("failed to init JWT middleware: %w", err)
	}

	return &JWT{
		AuthMiddleware: authMiddleware,
		logger:         logger,
		config:         config,
		blacklist:      blacklist,
	}, nil
}

func (j *JWT) MiddlewareFunc() gin.HandlerFunc {
	return j.AuthMiddleware.MiddlewareFunc()
}

func (j *JWT) LoginHandler(c *gin.Context) {
	j.AuthMiddleware.LoginHandler(c)
}

// TokenGenerator mints a token outside the password login path (external
// sign-in uses this after resolving the account).
func (j *JWT) TokenGenerator(user *model.User) (string, time.Time, error) {
	return j.AuthMiddleware.TokenGenerator(user)
}

func (j *JWT) RefreshHandler(c *gin.Context) {
	// 获取当前旧令牌
	oldToken := jwt.GetToken(c)

	j.AuthMiddleware.RefreshHandler(c)

	// 如果刷新成功，将旧令牌加入黑名单
	if c.Writer.Status() == http.StatusOK && oldToken != "" {
		claims, err := j.AuthMiddleware.GetClaimsFromJWT(c)
		if err == nil {
			if exp, ok := claims["exp"].(float64); ok {
				remaining := time.Until(time.Unix(int64(exp), 0))
				if err := j.blacklist.Add(c, oldToken, remaining); err != nil {
					j.logger.Error(fmt.Sprintf("Failed to revoke refreshed token: %v", err))
				}
			}
		}
	}
}

// LogoutHandler revokes the presented token for its remaining lifetime.
func (j *JWT) LogoutHandler(c *gin.Context) {
	token := jwt.GetToken(c)
	claims := jwt.ExtractClaims(c)

	if exp, ok := claims["exp"].(float64); ok {
		remaining := time.Until(time.Unix(int64(exp), 0))
		if err := j.blacklist.Add(c, token, remaining); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"code":    http.StatusInternalServerError,
				"message": "logout failed",
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    http.StatusOK,
		"message": "logout successful",
	})
}
