package http

import (
	stdhttp "net/http"
	"testing"

	"loan-ledger/internal/adapter/middleware"
)

// TestLoanLifecycle walks one loan from registration through an approved
// decision and a first repayment, the way a client would drive the API.
func TestLoanLifecycle(t *testing.T) {
	e := newMemoryServer()

	rec := doJSON(t, e, stdhttp.MethodPost, "/api/register", map[string]any{
		"name": "Asep", "email": "asep@example.com", "password": "s3cret",
	}, nil)
	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("register: got %d: %s", rec.Code, rec.Body.String())
	}
	var u map[string]any
	decode(t, rec, &u)
	if u["id"] != float64(1) || u["email"] != "asep@example.com" {
		t.Fatalf("unexpected user payload: %v", u)
	}

	rec = doJSON(t, e, stdhttp.MethodPost, "/api/login", map[string]any{
		"email": "asep@example.com", "password": "s3cret",
	}, nil)
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("login: got %d: %s", rec.Code, rec.Body.String())
	}

	asOwner := map[string]string{middleware.HeaderUserID: "1"}
	rec = doJSON(t, e, stdhttp.MethodPost, "/api/loans", map[string]any{"amount": 50000, "term_months": 12}, asOwner)
	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("submit: got %d: %s", rec.Code, rec.Body.String())
	}
	var l map[string]any
	decode(t, rec, &l)
	if l["id"] != float64(1) || l["status"] != "pending" {
		t.Fatalf("unexpected loan payload: %v", l)
	}

	asAdmin := map[string]string{middleware.HeaderAdmin: "true"}
	rec = doJSON(t, e, stdhttp.MethodPost, "/api/loans/1/decision", map[string]any{"action": "approve"}, asAdmin)
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("decide: got %d: %s", rec.Code, rec.Body.String())
	}
	decode(t, rec, &l)
	if l["id"] != float64(1) || l["status"] != "approved" {
		t.Fatalf("expected loan 1 approved, got %v", l)
	}

	rec = doJSON(t, e, stdhttp.MethodPost, "/api/loans/1/repayment", map[string]any{"amount": 5000}, asOwner)
	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("repay: got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, e, stdhttp.MethodGet, "/api/loans/1/repayments", nil, asOwner)
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("ledger: got %d", rec.Code)
	}
	var rows []map[string]any
	decode(t, rec, &rows)
	if len(rows) != 1 || rows[0]["amount"] != float64(5000) {
		t.Fatalf("unexpected ledger: %v", rows)
	}

	rec = doJSON(t, e, stdhttp.MethodGet, "/api/loans", nil, asOwner)
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("list: got %d", rec.Code)
	}
	var loans []map[string]any
	decode(t, rec, &loans)
	if len(loans) != 1 || loans[0]["status"] != "approved" {
		t.Fatalf("owner listing should show the approved loan: %v", loans)
	}
	if loans[0]["decided_by"] != nil {
		t.Fatalf("header-asserted decision must not bind an actor: %v", loans[0])
	}
	if loans[0]["decided_at"] == nil {
		t.Fatalf("decided loan must carry a decision time: %v", loans[0])
	}
}
