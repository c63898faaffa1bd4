package repayment

type RecordInput struct {
	Amount float64 `json:"amount"`
}

type RepaymentDTO struct {
	ID     uint64  `json:"id"`
	LoanID uint64  `json:"loan_id"`
	Amount float64 `json:"amount"`
}
