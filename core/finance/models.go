package finance

import (
	"github.com/go-playground/validator/v10"

	"github.com/officialmikal/cbc-edutrac-automation/core"
)

// DateLayout is the calendar-date format payments are recorded with.
const DateLayout = "2006-01-02"

// Method is a supported payment channel.
type Method string

const (
	MethodCash  Method = "Cash"
	MethodMpesa Method = "M-Pesa"
	MethodBank  Method = "Bank"
)

// Category is the fee line a payment settles.
type Category string

const (
	CategoryTuition   Category = "Tuition"
	CategoryActivity  Category = "Activity"
	CategoryExam      Category = "Exam"
	CategoryLunch     Category = "Lunch"
	CategoryTransport Category = "Transport"
	CategoryBoarding  Category = "Boarding"
)

// Payment is one ledger entry. The ledger is append-only: entries are never
// mutated or deleted once recorded.
type Payment struct {
	ID        string   `json:"id"`
	StudentID string   `json:"studentId"`
	Amount    float64  `json:"amount"`
	Date      string   `json:"date"` // DateLayout
	Method    Method   `json:"method"`
	Category  Category `json:"category"`
}

// NewPayment is the receive-payment form data.
type NewPayment struct {
	StudentID string  `json:"studentId" validate:"required"`
	Amount    float64 `json:"amount" validate:"required,gt=0"`
	Method    string  `json:"method" validate:"required,oneof=Cash M-Pesa Bank"`
	Category  string  `json:"category" validate:"required,oneof=Tuition Activity Exam Lunch Transport Boarding"`
}

func (np *NewPayment) Validate(validate *validator.Validate) error {
	np.StudentID = core.CleanString(np.StudentID)
	return validate.Struct(np)
}
