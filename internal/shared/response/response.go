package response

import (
	"github.com/gin-gonic/gin"

	"ph-payroll/internal/shared/contextutil"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// envelope is the uniform JSON shape every endpoint responds with. The
// request id mirrors the X-Request-ID header so clients can correlate
// payslips and batch runs with server logs.
type envelope struct {
	Ok        bool       `json:"ok"`
	RequestID string     `json:"request_id,omitempty"`
	Data      any        `json:"data,omitempty"`
	Error     *errorBody `json:"error,omitempty"`
}

func Success(c *gin.Context, status int, data any) {
	c.JSON(status, envelope{
		Ok:        true,
		RequestID: contextutil.GetRequestID(c.Request.Context()),
		Data:      data,
	})
}

func Error(c *gin.Context, status int, errorCode, message string, details any) {
	c.JSON(status, envelope{
		Ok:        false,
		RequestID: contextutil.GetRequestID(c.Request.Context()),
		Error: &errorBody{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
	})
}
