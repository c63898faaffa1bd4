package loan

type SubmitInput struct {
	Amount     float64 `json:"amount"`
	TermMonths int     `json:"term_months"`
}

type LoanDTO struct {
	ID     uint64 `json:"id"`
	Status string `json:"status"`
}
