// client/form.go
package client

import (
	"regexp"
	"time"
)

var (
	nonDigits    = regexp.MustCompile(`\D`)
	digitPattern = regexp.MustCompile(`^[1-9]\d{0,15}$`)
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// BookingForm collects new-appointment input. Validate must pass before the
// form is submitted; the server re-validates and remains authoritative.
type BookingForm struct {
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	StylistID     string
	ServiceID     string
	ScheduledTime time.Time
	Consent       bool
}

// Validate returns per-field messages; an empty map means the form may be
// submitted. No network traffic happens while any check fails.
func (f BookingForm) Validate() map[string]string {
	fieldErrors := map[string]string{}

	if f.CustomerName == "" {
		fieldErrors["customerName"] = "Name is required"
	}

	digits := nonDigits.ReplaceAllString(f.CustomerPhone, "")
	if !digitPattern.MatchString(digits) {
		fieldErrors["customerPhone"] = "Invalid phone number"
	}

	if f.CustomerEmail != "" && !emailPattern.MatchString(f.CustomerEmail) {
		fieldErrors["customerEmail"] = "Invalid email address"
	}

	if f.StylistID == "" {
		fieldErrors["stylistId"] = "Stylist is required"
	}
	if f.ServiceID == "" {
		fieldErrors["serviceId"] = "Service is required"
	}

	if f.ScheduledTime.IsZero() {
		fieldErrors["scheduledTime"] = "Scheduled time is required"
	} else if !f.ScheduledTime.After(time.Now()) {
		fieldErrors["scheduledTime"] = "Scheduled time must be in the future"
	}

	if !f.Consent {
		fieldErrors["consent"] = "Consent is required"
	}

	return fieldErrors
}

// Request converts the validated form into the wire payload.
func (f BookingForm) Request() CreateAppointmentRequest {
	return CreateAppointmentRequest{
		CustomerName:  f.CustomerName,
		CustomerPhone: nonDigits.ReplaceAllString(f.CustomerPhone, ""),
		CustomerEmail: f.CustomerEmail,
		StylistID:     f.StylistID,
		ServiceID:     f.ServiceID,
		ScheduledTime: f.ScheduledTime,
	}
}
