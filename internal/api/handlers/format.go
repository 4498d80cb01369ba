package handlers

import (
	"fmt"
	"math"
	"net/http"
	"strconv"

	"expgrowth/internal/api/models"
	"expgrowth/internal/format"

	"github.com/gin-gonic/gin"
)

const maxFormatDecimals = 12

// FormatHandler exposes the number formatter
type FormatHandler struct{}

// NewFormatHandler creates a new format handler
func NewFormatHandler() *FormatHandler {
	return &FormatHandler{}
}

// FormatNumber handles GET /api/v1/format?value=&decimals=
func (h *FormatHandler) FormatNumber(c *gin.Context) {
	value, err := strconv.ParseFloat(c.Query("value"), 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: fmt.Sprintf("value must be a finite number, got %q", c.Query("value")),
			},
		})
		return
	}

	decimals, err := strconv.Atoi(c.DefaultQuery("decimals", "0"))
	if err != nil || decimals < 0 || decimals > maxFormatDecimals {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: fmt.Sprintf("decimals must be an integer between 0 and %d", maxFormatDecimals),
			},
		})
		return
	}

	c.JSON(http.StatusOK, models.FormatResponse{
		Value:         value,
		Decimals:      decimals,
		Number:        format.Number(value, decimals),
		HumanReadable: format.HumanReadable(value),
	})
}
