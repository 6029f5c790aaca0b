package client

import (
	"testing"
	"time"
)

func TestBookingFormValidate(t *testing.T) {
	base := validForm()

	tests := []struct {
		name      string
		mutate    func(*BookingForm)
		wantField string
	}{
		{"valid form", func(f *BookingForm) {}, ""},
		{"missing name", func(f *BookingForm) { f.CustomerName = "" }, "customerName"},
		{"alphabetic phone", func(f *BookingForm) { f.CustomerPhone = "abc" }, "customerPhone"},
		{"empty phone", func(f *BookingForm) { f.CustomerPhone = "" }, "customerPhone"},
		{"leading zero phone", func(f *BookingForm) { f.CustomerPhone = "0123456" }, "customerPhone"},
		{"too long phone", func(f *BookingForm) { f.CustomerPhone = "12345678901234567" }, "customerPhone"},
		{"formatted phone ok", func(f *BookingForm) { f.CustomerPhone = "+1 (555) 123-4567" }, ""},
		{"bad email", func(f *BookingForm) { f.CustomerEmail = "not-an-email" }, "customerEmail"},
		{"email without tld", func(f *BookingForm) { f.CustomerEmail = "jane@host" }, "customerEmail"},
		{"email ok", func(f *BookingForm) { f.CustomerEmail = "jane@example.com" }, ""},
		{"empty email ok", func(f *BookingForm) { f.CustomerEmail = "" }, ""},
		{"missing stylist", func(f *BookingForm) { f.StylistID = "" }, "stylistId"},
		{"missing service", func(f *BookingForm) { f.ServiceID = "" }, "serviceId"},
		{"zero time", func(f *BookingForm) { f.ScheduledTime = time.Time{} }, "scheduledTime"},
		{"past time", func(f *BookingForm) { f.ScheduledTime = time.Now().Add(-time.Hour) }, "scheduledTime"},
		{"no consent", func(f *BookingForm) { f.Consent = false }, "consent"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := base
			tt.mutate(&form)
			fieldErrors := form.Validate()

			if tt.wantField == "" {
				if len(fieldErrors) != 0 {
					t.Fatalf("expected no errors, got %v", fieldErrors)
				}
				return
			}
			if fieldErrors[tt.wantField] == "" {
				t.Fatalf("expected error on %q, got %v", tt.wantField, fieldErrors)
			}
		})
	}
}

func TestBookingFormRequestNormalizesPhone(t *testing.T) {
	form := validForm()
	form.CustomerPhone = "+1 (555) 123-4567"

	req := form.Request()
	if req.CustomerPhone != "15551234567" {
		t.Fatalf("expected digits only, got %q", req.CustomerPhone)
	}
}
