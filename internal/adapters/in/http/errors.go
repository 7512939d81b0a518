package http

import (
	"errors"
	"net/http"

	"mangoshop/internal/core/application/usecases/commands"
	"mangoshop/internal/core/domain/model/order"
	"mangoshop/internal/generated/servers"
	"mangoshop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusOf maps a use case error to the response status and the message shown to the client.
func statusOf(err error) (int, string) {
	var rejection *commands.RejectionError
	if errors.As(err, &rejection) {
		if errors.Is(err, commands.ErrPaymentDeclined) {
			return http.StatusPaymentRequired, "Payment declined: " + rejection.Reason
		}
		return http.StatusBadRequest, rejection.Reason
	}

	switch {
	case errors.Is(err, order.ErrOrderNotOwned):
		return http.StatusForbidden, "Order does not belong to the customer"
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, order.ErrStatusTransitionNotAllowed):
		return http.StatusConflict, err.Error()
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

func (s *Server) respondError(ctx echo.Context, err error) error {
	code, message := statusOf(err)
	if code >= http.StatusInternalServerError {
		s.logger.Error("request failed",
			"method", ctx.Request().Method, "path", ctx.Path(), "error", err)
	}
	return errorJSON(ctx, code, message)
}

func errorJSON(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, servers.Error{
		Code:    code,
		Message: message,
	})
}
