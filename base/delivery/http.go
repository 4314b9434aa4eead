package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/service/query"
)

type JsonResponseStatus string

const (
	JsonResponseStatusSuccess JsonResponseStatus = "success"
	JsonResponseStatusFail    JsonResponseStatus = "fail"
)

type JsonResponse struct {
	Data   interface{}        `json:"data"`
	Status JsonResponseStatus `json:"status"`
}

var kindStatus = map[error]int{
	domain.ErrValidation:       http.StatusBadRequest,
	domain.ErrAuthorization:    http.StatusForbidden,
	domain.ErrState:            http.StatusConflict,
	domain.ErrCurrencyMismatch: http.StatusBadRequest,
	domain.ErrInsufficientBid:  http.StatusUnprocessableEntity,
	domain.ErrNotFound:         http.StatusNotFound,
	domain.ErrPayment:          http.StatusPaymentRequired,
}

// StatusOf maps an error to the http status of its kind, fallback for
// unclassified errors.
func StatusOf(err error, fallback int) int {
	if errors.Is(err, query.ErrNotFound) {
		return http.StatusNotFound
	}
	if kind := domain.KindOf(err); kind != nil {
		return kindStatus[kind]
	}
	return fallback
}

func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		status = StatusOf(err, status)
		if status >= 500 {
			data = domain.ErrInternalServerError.Error()
		} else {
			data = err.Error()
		}
	}

	if status >= 400 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusFail})
	}

	if status >= 200 && status < 300 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusSuccess})
	}

	return c.JSON(status, data)
}
