package models

import "testing"

func TestAppointmentStatusCanTransition(t *testing.T) {
	tests := []struct {
		from, to AppointmentStatus
		want     bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusCompleted, false},
		{StatusPending, StatusPending, false},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusPending, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCompleted, StatusConfirmed, false},
		{StatusCancelled, StatusPending, false},
		{StatusCancelled, StatusConfirmed, false},
	}

	for _, tt := range tests {
		if got := tt.from.CanTransition(tt.to); got != tt.want {
			t.Errorf("%s -> %s: got %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestAppointmentStatusValid(t *testing.T) {
	for _, s := range []AppointmentStatus{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled} {
		if !s.Valid() {
			t.Errorf("%s should be valid", s)
		}
	}
	if AppointmentStatus("rescheduled").Valid() {
		t.Error("unknown status should be invalid")
	}
}

func TestRoleCapabilities(t *testing.T) {
	if !CanManageStaff(RoleAdmin) || !CanManageStaff(RoleSuperadmin) {
		t.Error("admin roles must manage staff")
	}
	if CanManageStaff(RoleCustomer) || CanManageStaff(RoleStyler) || CanManageStaff(Role("bogus")) {
		t.Error("non-admin roles must not manage staff")
	}
}
