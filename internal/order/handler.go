package order

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

const (
	MsgRequestInvalid  = "The request is not valid"
	MsgMalformedBody   = "Malformed request body"
	MsgUnexpectedError = "An unexpected error occurred"
	displayPricePlaces = 2
)

// ApiError is the body of every non-2xx pricing response.
type ApiError struct {
	Status  string   `json:"status"`
	Message string   `json:"message"`
	Errors  []string `json:"errors"`
}

func NewApiError(code int, message string, errs ...string) ApiError {
	if errs == nil {
		errs = []string{}
	}
	return ApiError{
		Status:  strings.ToUpper(strings.ReplaceAll(http.StatusText(code), " ", "_")),
		Message: message,
		Errors:  errs,
	}
}

type Handler struct {
	service *Service
	logger  *slog.Logger
}

func NewHandler(service *Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// --------------------------------------------------
// POST /calculateTotal
// --------------------------------------------------
func (h *Handler) CalculateTotal(c *gin.Context) {
	var lines []OrderLine
	if err := c.ShouldBindJSON(&lines); err != nil {
		c.JSON(http.StatusBadRequest, NewApiError(http.StatusBadRequest, MsgMalformedBody, err.Error()))
		return
	}

	result, err := h.service.CalculateTotal(c.Request.Context(), lines)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, NewApiError(http.StatusBadRequest, MsgRequestInvalid, verr.Messages()...))
			return
		}

		h.logger.Error("calculate_total_failed",
			"error", err,
			"price_not_found", errors.Is(err, ErrPriceNotFound),
			"out_of_range", errors.Is(err, ErrTotalOutOfRange),
			"request_id", c.GetString("requestID"),
		)
		c.JSON(http.StatusInternalServerError, NewApiError(http.StatusInternalServerError, MsgUnexpectedError))
		return
	}

	c.JSON(http.StatusOK, PricingResult{TotalPrice: DisplayPrice(result.TotalPrice)})
}

// DisplayPrice rounds a raw total to cents for the response body.
func DisplayPrice(v float64) float64 {
	return decimal.NewFromFloat(v).Round(displayPricePlaces).InexactFloat64()
}
