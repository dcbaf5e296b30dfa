package statutory

import (
	"net/http"

	"ph-payroll/internal/shared/apperror"
	"ph-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Suggest returns the table-driven contribution amounts for a monthly
// rate, the same defaults the deduction service applies on auto-compute.
func (h *Handler) Suggest(c *gin.Context) {
	raw := c.Query("monthly_rate")
	if raw == "" {
		httpErr := apperror.ToHTTP(apperror.RequiredField("monthly_rate"))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	monthlyRate, err := decimal.NewFromString(raw)
	if err != nil || monthlyRate.IsNegative() {
		httpErr := apperror.ToHTTP(apperror.InvalidField("monthly_rate"))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	response.Success(c, http.StatusOK, Suggest(monthlyRate))
}
