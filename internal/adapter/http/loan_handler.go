package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	mw "loan-ledger/internal/adapter/middleware"
	"loan-ledger/internal/domain/auth"
	loanuc "loan-ledger/internal/usecase/loan"
)

type LoanHandler struct{ uc *loanuc.Usecase }

func NewLoanHandler(uc *loanuc.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type submitLoanReq struct {
	Amount     float64 `json:"amount" validate:"required,gt=0,lte=1000000"`
	TermMonths int     `json:"term_months" validate:"required,gt=0"`
}

type decisionReq struct {
	Action string `json:"action"`
}

// loanIDParam parses the :id path segment. A malformed id maps to 0, which
// matches no loan and falls through to not-found.
func loanIDParam(c echo.Context) uint64 {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	return id
}

func (h *LoanHandler) Submit(c echo.Context) error {
	p := mw.Principal(c)
	if !p.Resolved() {
		return writeError(c, auth.ErrUnauthenticated)
	}
	var req submitLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.Submit(c.Request().Context(), p, loanuc.SubmitInput(req))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanHandler) Decide(c echo.Context) error {
	var req decisionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	// authorization and action checks live in the usecase so the 403/400/404
	// ordering stays with the engine
	dto, err := h.uc.Decide(c.Request().Context(), mw.Principal(c), loanIDParam(c), req.Action)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) List(c echo.Context) error {
	loans, err := h.uc.List(c.Request().Context(), mw.Principal(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, loans)
}
