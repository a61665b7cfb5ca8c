package request

import "jiyajewellery/internal/usecase"

type StartVisitRequest struct {
	CustomerName  string `json:"customer_name" validate:"required,max=120"`
	CustomerPhone string `json:"customer_phone" validate:"required,min=7,max=20"`
	Purpose       string `json:"purpose" validate:"required,max=200"`
	Notes         string `json:"notes" validate:"max=1000"`
}

func (r StartVisitRequest) ToCommand() usecase.StartVisitCommand {
	return usecase.StartVisitCommand{
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		Purpose:       r.Purpose,
		Notes:         r.Notes,
	}
}

// VerifyVisitRequest carries the code the customer read back. Format checks
// happen in the use case so every caller gets the same error.
type VerifyVisitRequest struct {
	Code string `json:"code" validate:"required"`
}
