// internal/utils/response.go
package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Success 统一成功响应
func Success(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusOK, gin.H{
		"code": http.StatusOK,
		"data": data,
	})
}

// Error 统一错误响应
func Error(ctx *gin.Context, code int, message string) {
	ctx.JSON(code, gin.H{
		"code":    code,
		"message": message,
	})
}

// ValidationFailed reports every unmet rule for a field so the client can
// show one message per rule.
func ValidationFailed(ctx *gin.Context, field string, reasons []string) {
	ctx.JSON(http.StatusBadRequest, gin.H{
		"code":    http.StatusBadRequest,
		"message": "validation failed",
		"field":   field,
		"reasons": reasons,
	})
}

// PasswordRejected is ValidationFailed for the password field plus the
// strength label the register screen shows alongside the rule messages.
func PasswordRejected(ctx *gin.Context, reasons []string, strength string) {
	ctx.JSON(http.StatusBadRequest, gin.H{
		"code":     http.StatusBadRequest,
		"message":  "validation failed",
		"field":    "password",
		"reasons":  reasons,
		"strength": strength,
	})
}
