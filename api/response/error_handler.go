/*
Package response writes error responses for the API layer.

HTTP status mapping lives here so the domain and application layers stay free of
transport concepts. Internal errors are reported to clients as "internal server
error"; the real cause only goes to the log. Every response carries the request id.

Error envelope:

	{ success: false, error: "ERROR_CODE", message: "...", code: 4xx/5xx, details: [...], request_id: "..." }
*/
package response

import (
	stdErrors "errors"
	"net/http"
	"runtime"

	"tasklist/domain/shared"
	apperrors "tasklist/pkg/errors"
	"tasklist/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var httpStatusMap = map[apperrors.ErrorCode]int{
	apperrors.CodeInternal:       http.StatusInternalServerError,
	apperrors.CodeNotFound:       http.StatusNotFound,
	apperrors.CodeTooManyRequest: http.StatusTooManyRequests,
	apperrors.CodeValidation:     http.StatusUnprocessableEntity,
}

// StatusFor maps an application error code to its HTTP status.
func StatusFor(code apperrors.ErrorCode) int {
	if status, ok := httpStatusMap[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func getRequestID(c *gin.Context) string {
	if requestID, exists := c.Get(RequestIDKey); exists {
		if id, ok := requestID.(string); ok {
			return id
		}
	}
	return ""
}

func GetRequestID(c *gin.Context) string {
	return getRequestID(c)
}

func captureStack(skip int) []string {
	var pcs [16]uintptr
	n := runtime.Callers(skip, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])

	stack := make([]string, 0, 5)
	for i := 0; i < 5; i++ {
		frame, more := frames.Next()
		if frame.Function != "" {
			stack = append(stack, frame.Function)
		}
		if !more {
			break
		}
	}
	return stack
}

// Abort writes the envelope for appErr without logging and stops the handler chain.
func Abort(c *gin.Context, appErr *apperrors.AppError) {
	status := StatusFor(appErr.Code)
	c.AbortWithStatusJSON(status, &Response{
		Success:   false,
		Error:     string(appErr.Code),
		Message:   appErr.Message,
		Code:      status,
		Details:   appErr.Details,
		RequestID: getRequestID(c),
	})
}

// HandleAppError maps err to a status, logs the full chain and writes the envelope.
// Client errors are logged at warn, server errors at error with a stack.
func HandleAppError(c *gin.Context, err error) {
	requestID := getRequestID(c)
	appErr := apperrors.FromDomainError(err)
	httpStatus := StatusFor(appErr.Code)

	fields := []zap.Field{
		zap.String("request_id", requestID),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.String("error_code", string(appErr.Code)),
		zap.Int("http_status", httpStatus),
	}
	if appErr.Err != nil {
		fields = append(fields, zap.Error(appErr.Err))
	}

	userMessage := appErr.Message
	if httpStatus >= http.StatusInternalServerError {
		fields = append(fields, zap.Strings("stack", extractStack(err)))
		logger.Error(appErr.Message, fields...)
		userMessage = "internal server error"
	} else {
		logger.Warn(appErr.Message, fields...)
	}

	c.AbortWithStatusJSON(httpStatus, &Response{
		Success:   false,
		Error:     string(appErr.Code),
		Message:   userMessage,
		Code:      httpStatus,
		Details:   appErr.Details,
		RequestID: requestID,
	})
}

func extractStack(err error) []string {
	var stacker shared.Stacker
	if stdErrors.As(err, &stacker) {
		if stack := stacker.Stack(); len(stack) > 0 {
			return stack
		}
	}
	// skip: Callers, captureStack, extractStack, HandleAppError
	return captureStack(4)
}
