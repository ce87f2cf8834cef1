package dto

import "time"

type CreateStudentRequest struct {
	FullName string  `json:"full_name"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
}

type CreateHostelRequest struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Price          int64    `json:"price"`
	Facilities     []string `json:"facilities"`
	Photos         []string `json:"photos"`
	DistanceMeters int      `json:"distance_meters"`
	CaretakerID    string   `json:"caretaker_id"`
}

type VerifyHostelRequest struct {
	IsVerified *bool `json:"is_verified"`
}

type CreateReservationRequest struct {
	StudentID     string `json:"student_id"`
	HostelID      string `json:"hostel_id"`
	DepositAmount int64  `json:"deposit_amount"`
	ProviderRef   string `json:"provider_ref,omitempty"`
}

type CreateBookingRequest struct {
	HostelID   string     `json:"hostel_id"`
	StudentID  string     `json:"student_id"`
	MoveInDate *time.Time `json:"move_in_date"`
}

type CreateInspectionRequest struct {
	HostelID       string     `json:"hostel_id"`
	StudentID      string     `json:"student_id"`
	InspectionDate *time.Time `json:"inspection_date"`
}

type InitializePaymentRequest struct {
	Email  string `json:"email"`
	Amount int64  `json:"amount"` // major currency unit
}

// PaystackWebhookEvent mirrors the fields of a provider delivery this
// service acts on; everything else in the payload is carried only in the
// audit record.
type PaystackWebhookEvent struct {
	Event string `json:"event"`
	Data  struct {
		Reference string `json:"reference"`
		Amount    int64  `json:"amount"` // minor currency unit (kobo)
		Status    string `json:"status"`
	} `json:"data"`
}
