package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"loan-ledger/internal/domain/auth"
	"loan-ledger/internal/domain/loan"
	"loan-ledger/internal/domain/repayment"
	"loan-ledger/internal/domain/user"
)

// writeError maps domain errors onto the wire contract. Anything
// unrecognized is an opaque 500 so backend details never leak to callers.
func writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, user.ErrMissingFields),
		errors.Is(err, user.ErrMissingCredentials),
		errors.Is(err, user.ErrDuplicateEmail),
		errors.Is(err, loan.ErrInvalidAmount),
		errors.Is(err, loan.ErrInvalidTerm),
		errors.Is(err, loan.ErrInvalidAction),
		errors.Is(err, repayment.ErrInvalidAmount):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, user.ErrInvalidCredentials),
		errors.Is(err, auth.ErrUnauthenticated):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	case errors.Is(err, auth.ErrForbidden):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case errors.Is(err, loan.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
