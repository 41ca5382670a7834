package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/core-launch/goapi/domain"
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

// MakeJsonResp maps domain errors onto http statuses and renders the
// standard response envelope
func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			status = http.StatusNotFound
		case errors.Is(err, domain.ErrInvalidAmount),
			errors.Is(err, domain.ErrBadParamInput),
			errors.Is(err, domain.ErrOwnerCannotBid),
			errors.Is(err, domain.ErrOnlyOwnerCanAccept),
			errors.Is(err, domain.ErrNoActiveBid),
			errors.Is(err, domain.ErrAuctionNotActive):
			status = http.StatusBadRequest
		case errors.Is(err, domain.ErrWalletNotConnected),
			errors.Is(err, domain.ErrUserRejected):
			status = http.StatusUnauthorized
		case errors.Is(err, domain.ErrWrongNetwork):
			status = http.StatusPreconditionFailed
		case errors.Is(err, domain.ErrSubmissionInFlight):
			status = http.StatusConflict
		case errors.Is(err, domain.ErrRemoteRejected):
			status = http.StatusUnprocessableEntity
		case errors.Is(err, domain.ErrTransportFailure):
			status = http.StatusBadGateway
		}
		data = err.Error()
	}

	if status >= 400 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusFail})
	}

	if status >= 200 && status < 300 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusSuccess})
	}

	return c.JSON(status, data)
}
