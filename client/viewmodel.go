// client/viewmodel.go
package client

import (
	"context"
	"errors"
	"sync"

	"github.com/BelskviK/Styler-sub001/models"
)

// AppointmentList is the in-memory collection of appointments for the
// signed-in role. Mutations are optimistic: local state changes first, then
// the adapter call goes out. When the server rejects a mutation the list
// resynchronizes with a full reload rather than patching back individual
// fields, so client state never diverges from server truth for more than one
// round trip.
type AppointmentList struct {
	mu        sync.Mutex
	api       AppointmentAPI
	items     []models.Appointment
	isLoading bool
	lastError error

	scope    Scope
	hasScope bool
}

func NewAppointmentList(api AppointmentAPI) *AppointmentList {
	return &AppointmentList{api: api}
}

// Items returns a copy of the current collection.
func (l *AppointmentList) Items() []models.Appointment {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]models.Appointment, len(l.items))
	copy(out, l.items)
	return out
}

func (l *AppointmentList) IsLoading() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.isLoading
}

func (l *AppointmentList) LastError() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lastError
}

// Load resolves the caller's scope and replaces the collection wholesale.
// On failure the previous items are kept: stale-but-valid data beats an
// empty view.
func (l *AppointmentList) Load(ctx context.Context, role models.Role, ident Identity) error {
	scope, err := ResolveScope(role, ident)
	if err != nil {
		l.mu.Lock()
		l.lastError = err
		l.mu.Unlock()
		return err
	}

	l.mu.Lock()
	l.scope = scope
	l.hasScope = true
	l.mu.Unlock()

	return l.loadScope(ctx, scope)
}

func (l *AppointmentList) loadScope(ctx context.Context, scope Scope) error {
	l.mu.Lock()
	l.isLoading = true
	l.mu.Unlock()

	var fetched []models.Appointment
	var err error
	switch scope.Kind {
	case ScopeCompany:
		fetched, err = l.api.ListByCompany(ctx, scope.ID)
	case ScopeStylist:
		fetched, err = l.api.ListByStyler(ctx, scope.ID)
	default:
		fetched, err = l.api.ListByCustomer(ctx, scope.ID)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.isLoading = false
	if err != nil {
		l.lastError = err
		return err
	}
	l.items = dedupeByID(fetched)
	l.lastError = nil
	return nil
}

// UpdateStatus rewrites the matching item's status immediately, then tells
// the server. A rejected update triggers a full reload so the item snaps
// back to the server's authoritative value.
func (l *AppointmentList) UpdateStatus(ctx context.Context, id string, status models.AppointmentStatus) error {
	l.mu.Lock()
	idx := l.indexOf(id)
	if idx < 0 {
		l.mu.Unlock()
		return &NotFoundError{Message: "appointment not in view"}
	}
	l.items[idx].Status = status
	l.mu.Unlock()

	updated, err := l.api.UpdateStatus(ctx, id, status)
	if err != nil {
		l.resync(ctx, err)
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	// The item may have been deleted locally while the request was in
	// flight; a response for a vanished id is dropped.
	if idx := l.indexOf(id); idx >= 0 {
		l.items[idx] = updated
	}
	return nil
}

// Delete removes the item immediately, then tells the server. A not-found
// answer means someone else already deleted it, which is the outcome the
// caller wanted anyway.
func (l *AppointmentList) Delete(ctx context.Context, id string) error {
	l.mu.Lock()
	if idx := l.indexOf(id); idx >= 0 {
		l.items = append(l.items[:idx], l.items[idx+1:]...)
	}
	l.mu.Unlock()

	err := l.api.Delete(ctx, id)
	if err == nil {
		return nil
	}

	var notFound *NotFoundError
	if errors.As(err, &notFound) {
		return nil
	}

	l.resync(ctx, err)
	return err
}

// Create validates the booking form and submits it. There is no optimistic
// insert: the server assigns the id, so a successful create triggers a
// reload to pick up the canonical record. Validation failures, local or
// remote, leave the collection untouched.
func (l *AppointmentList) Create(ctx context.Context, form BookingForm) error {
	if fieldErrors := form.Validate(); len(fieldErrors) > 0 {
		return &ValidationError{Message: "booking validation failed", FieldErrors: fieldErrors}
	}

	if _, err := l.api.Create(ctx, form.Request()); err != nil {
		var validation *ValidationError
		if errors.As(err, &validation) {
			return err
		}
		l.mu.Lock()
		l.lastError = err
		l.mu.Unlock()
		return err
	}

	l.mu.Lock()
	scope, ok := l.scope, l.hasScope
	l.mu.Unlock()
	if ok {
		return l.loadScope(ctx, scope)
	}
	return nil
}

// resync restores server truth after a failed mutation and records the
// original failure as the surfaced error.
func (l *AppointmentList) resync(ctx context.Context, cause error) {
	l.mu.Lock()
	scope, ok := l.scope, l.hasScope
	l.mu.Unlock()
	if ok {
		l.loadScope(ctx, scope)
	}
	l.mu.Lock()
	l.lastError = cause
	l.mu.Unlock()
}

// indexOf must be called with the lock held.
func (l *AppointmentList) indexOf(id string) int {
	for i := range l.items {
		if l.items[i].ID.String() == id {
			return i
		}
	}
	return -1
}

// dedupeByID keeps the first occurrence of each id, preserving order. The
// collection never holds two entries with the same id.
func dedupeByID(items []models.Appointment) []models.Appointment {
	seen := make(map[string]bool, len(items))
	out := items[:0:0]
	for _, item := range items {
		key := item.ID.String()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, item)
	}
	return out
}
