package response

import (
	"time"

	"jiyajewellery/internal/domain/entities"
)

// VisitResponse never carries the OTP; only the customer's phone receives it.
type VisitResponse struct {
	ID            string     `json:"id"`
	CustomerName  string     `json:"customer_name"`
	CustomerPhone string     `json:"customer_phone"`
	Purpose       string     `json:"purpose"`
	Notes         string     `json:"notes,omitempty"`
	VisitDate     string     `json:"visit_date"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	VerifiedAt    *time.Time `json:"verified_at,omitempty"`
}

func FromVisit(v entities.VisitLog) VisitResponse {
	return VisitResponse{
		ID:            v.ID,
		CustomerName:  v.CustomerName,
		CustomerPhone: v.CustomerPhone,
		Purpose:       v.Purpose,
		Notes:         v.Notes,
		VisitDate:     v.VisitDate,
		Status:        string(v.Status),
		CreatedAt:     v.CreatedAt,
		VerifiedAt:    v.VerifiedAt,
	}
}

func FromVisits(list []entities.VisitLog) []VisitResponse {
	out := make([]VisitResponse, 0, len(list))
	for _, v := range list {
		out = append(out, FromVisit(v))
	}
	return out
}
