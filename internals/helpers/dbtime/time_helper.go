// file: internals/helpers/dbtime/time_helper.go
package dbtime

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"

	"wellness_backend/internals/configs"
	helper "wellness_backend/internals/helpers"
)

const DateLayout = "2006-01-02"

var (
	locOnce sync.Once
	loc     *time.Location
)

// ProgramLocation is PROGRAM_TIMEZONE, falling back to UTC.
func ProgramLocation() *time.Location {
	locOnce.Do(func() {
		loc = time.UTC
		name := strings.TrimSpace(configs.ProgramTimezone)
		if name == "" {
			return
		}
		l, err := time.LoadLocation(name)
		if err != nil {
			configs.Log.Warnf("unknown PROGRAM_TIMEZONE %q, using UTC", name)
			return
		}
		loc = l
	})
	return loc
}

// ParseDate parses YYYY-MM-DD as midnight UTC, matching DATE columns.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(s))
}

// TodayInProgram is today's date in the program timezone, as midnight UTC.
func TodayInProgram() time.Time {
	now := time.Now().In(ProgramLocation())
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// DateRange is an inclusive [Start, End] range of session dates.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Validate rejects a range whose start is after its end.
func (r DateRange) Validate() error {
	if r.Start.After(r.End) {
		return fmt.Errorf("%w: start_date must not be after end_date", helper.ErrValidation)
	}
	return nil
}

func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// ParseDateRange reads ?start_date= and ?end_date=. Both are required and
// start must not be after end.
func ParseDateRange(c *fiber.Ctx) (DateRange, error) {
	rawStart, rawEnd := c.Query("start_date"), c.Query("end_date")
	if strings.TrimSpace(rawStart) == "" || strings.TrimSpace(rawEnd) == "" {
		return DateRange{}, fiber.NewError(fiber.StatusBadRequest, "start_date and end_date are required (YYYY-MM-DD)")
	}
	start, err := ParseDate(rawStart)
	if err != nil {
		return DateRange{}, fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("invalid start_date %q", rawStart))
	}
	end, err := ParseDate(rawEnd)
	if err != nil {
		return DateRange{}, fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("invalid end_date %q", rawEnd))
	}
	if start.After(end) {
		return DateRange{}, fiber.NewError(fiber.StatusBadRequest, "start_date must not be after end_date")
	}
	return DateRange{Start: start, End: end}, nil
}

// AgeAt is the age in whole years on date at.
func AgeAt(dob, at time.Time) int {
	age := at.Year() - dob.Year()
	if at.Month() < dob.Month() || (at.Month() == dob.Month() && at.Day() < dob.Day()) {
		age--
	}
	return age
}
