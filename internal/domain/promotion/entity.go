package promotion

import (
	"errors"
	"strings"
	"time"

	"petstore-backend/internal/domain/category"
	"petstore-backend/internal/domain/user"
)

var (
	ErrEmptyName        = errors.New("promotion name cannot be empty")
	ErrNegativeDiscount = errors.New("discount value must not be negative")
	ErrMissingDates     = errors.New("start date and end date are required")
	ErrInvalidDateRange = errors.New("end date must not be before start date")
)

// Promotion is a percentage discount over a closed range of calendar days.
// Status is the persisted label and may disagree with IsCurrentlyValid.
type Promotion struct {
	ID            int64
	Name          string
	Description   string
	StartDate     time.Time
	EndDate       time.Time
	DiscountValue float64
	Status        *Status
	Category      *category.Category
	User          *user.User
}

func (p *Promotion) Validate() error {
	return p.ValidateChanges(Changes{Name: true, Discount: true, Dates: true})
}

// Changes names the fields a partial update supplied.
type Changes struct {
	Name     bool
	Discount bool
	Dates    bool
}

// ValidateChanges applies only the rules of the supplied fields. Stored rows
// are not checked for the date order, so an untouched range is accepted as is.
func (p *Promotion) ValidateChanges(c Changes) error {
	if c.Name && strings.TrimSpace(p.Name) == "" {
		return ErrEmptyName
	}
	if c.Discount && p.DiscountValue < 0 {
		return ErrNegativeDiscount
	}
	if !c.Dates {
		return nil
	}
	if p.StartDate.IsZero() || p.EndDate.IsZero() {
		return ErrMissingDates
	}
	if DateOf(p.EndDate).Before(DateOf(p.StartDate)) {
		return ErrInvalidDateRange
	}
	return nil
}

func (p *Promotion) StatusName() string {
	if p.Status == nil {
		return ""
	}
	return p.Status.Name
}
