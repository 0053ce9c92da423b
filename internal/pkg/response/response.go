package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apperrors "github.com/lk2023060901/yt-scraper-api/internal/pkg/errors"
)

// Response is the envelope for error responses
type Response struct {
	Code    int         `json:"code"`              // business code, 0 on success
	Message string      `json:"message,omitempty"` // code message plus details
	Data    interface{} `json:"data"`
}

// JSON writes payload as-is with status 200
func JSON(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, payload)
}

// BadRequest 400
func BadRequest(c *gin.Context, message string) {
	ErrorWithCode(c, apperrors.ErrInvalidParams, message)
}

// NotFound 404
func NotFound(c *gin.Context, message string) {
	ErrorWithCode(c, apperrors.ErrNotFound, message)
}

// HandleError maps err to its code, HTTP status and message
func HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)

	code := apperrors.ExtractCode(err)
	ErrorWithCode(c, code, apperrors.GetDetails(err))
}

// ErrorWithCode writes an envelope for a business code
func ErrorWithCode(c *gin.Context, code int, details ...string) {
	c.AbortWithStatusJSON(apperrors.GetHTTPStatus(code), Response{
		Code:    code,
		Message: apperrors.FormatError(code, details...),
		Data:    struct{}{},
	})
}
