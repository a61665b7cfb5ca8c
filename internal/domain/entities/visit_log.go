package entities

import "time"

type VisitStatus string

const (
	VisitPendingVerification VisitStatus = "pending_verification"
	VisitVerified            VisitStatus = "verified"
)

// VisitLog records a salesperson's visit to a customer. The visit is only
// trusted once the customer confirms it with the OTP sent to their phone.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (salesperson_id-index): salesperson_id + visit_date
type VisitLog struct {
	ID            string      `json:"id"`
	SalespersonID string      `json:"salesperson_id"`
	CustomerName  string      `json:"customer_name"`
	CustomerPhone string      `json:"customer_phone"`
	Purpose       string      `json:"purpose"`
	Notes         string      `json:"notes,omitempty"`
	VisitDate     string      `json:"visit_date"`
	Status        VisitStatus `json:"status"`
	CreatedAt     time.Time   `json:"created_at"`
	VerifiedAt    *time.Time  `json:"verified_at,omitempty"`
}

// OTPChallenge is the server-side half of a visit verification. Only the hash
// of the code is stored.
type OTPChallenge struct {
	VisitID   string    `json:"visit_id"`
	CodeHash  string    `json:"code_hash"`
	Attempts  int       `json:"attempts"`
	ExpiresAt time.Time `json:"expires_at"`
}
