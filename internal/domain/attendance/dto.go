package attendance

import (
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/timerecord"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/validator"
)

// ========================================
// REPORT DTOs
// ========================================

// ReportRequest selects a month. Zero Month or Year means the current one.
type ReportRequest struct {
	UserID string `json:"-"`
	Month  int    `json:"month"`
	Year   int    `json:"year"`
}

func (r *ReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	if r.Month < 0 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if r.Year < 0 || r.Year > 9999 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 1 and 9999",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ReportDay struct {
	Date       string                     `json:"date"`
	Weekday    string                     `json:"weekday"`
	Records    map[timerecord.Kind]string `json:"records"`
	TotalHours string                     `json:"total_hours"`
	Status     Status                     `json:"status"`
}

type ReportResponse struct {
	Month                int         `json:"month"`
	MonthName            string      `json:"month_name"`
	Year                 int         `json:"year"`
	Years                []int       `json:"years"`
	Days                 []ReportDay `json:"days"`
	TotalHours           string      `json:"total_hours"`
	TotalAbsences        int         `json:"total_absences"`
	TotalInconsistencies int         `json:"total_inconsistencies"`
}
