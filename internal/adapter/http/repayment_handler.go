package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	mw "loan-ledger/internal/adapter/middleware"
	"loan-ledger/internal/domain/auth"
	repaymentuc "loan-ledger/internal/usecase/repayment"
)

type RepaymentHandler struct{ uc *repaymentuc.Usecase }

func NewRepaymentHandler(uc *repaymentuc.Usecase) *RepaymentHandler {
	return &RepaymentHandler{uc: uc}
}

type recordRepaymentReq struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

func (h *RepaymentHandler) Record(c echo.Context) error {
	p := mw.Principal(c)
	if !p.Resolved() {
		return writeError(c, auth.ErrUnauthenticated)
	}
	var req recordRepaymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.Record(c.Request().Context(), p, loanIDParam(c), repaymentuc.RecordInput(req))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *RepaymentHandler) ListRepayments(c echo.Context) error {
	rows, err := h.uc.List(c.Request().Context(), mw.Principal(c), loanIDParam(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}
