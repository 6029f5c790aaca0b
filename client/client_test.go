package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/BelskviK/Styler-sub001/models"
)

func TestClientListDecodesEnvelope(t *testing.T) {
	id := uuid.New()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/appointments" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if got := r.URL.Query().Get("stylistId"); got != "S1" {
			t.Fatalf("expected stylistId=S1, got %q", got)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Fatalf("expected bearer token, got %q", got)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": []models.Appointment{appt(id, "Jane", models.StatusPending)},
		})
	}))
	defer server.Close()

	c := New(server.URL, "tok")
	appointments, err := c.ListByStyler(context.Background(), "S1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(appointments) != 1 || appointments[0].ID != id {
		t.Fatalf("unexpected appointments: %v", appointments)
	}
}

func TestClientDeleteNoContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/api/appointments/A1" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	if err := New(server.URL, "tok").Delete(context.Background(), "A1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
}

func TestClientErrorTaxonomy(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		check  func(t *testing.T, err error)
	}{
		{
			name:   "401 auth",
			status: http.StatusUnauthorized,
			body:   `{"error":"Invalid token"}`,
			check: func(t *testing.T, err error) {
				var authErr *AuthError
				if !errors.As(err, &authErr) {
					t.Fatalf("want AuthError, got %T: %v", err, err)
				}
				if authErr.Message != "Invalid token" {
					t.Fatalf("unexpected message %q", authErr.Message)
				}
			},
		},
		{
			name:   "403 auth",
			status: http.StatusForbidden,
			body:   `{"error":"Insufficient permissions"}`,
			check: func(t *testing.T, err error) {
				var authErr *AuthError
				if !errors.As(err, &authErr) {
					t.Fatalf("want AuthError, got %T: %v", err, err)
				}
			},
		},
		{
			name:   "404 not found",
			status: http.StatusNotFound,
			body:   `{"error":"Appointment not found"}`,
			check: func(t *testing.T, err error) {
				var notFound *NotFoundError
				if !errors.As(err, &notFound) {
					t.Fatalf("want NotFoundError, got %T: %v", err, err)
				}
			},
		},
		{
			name:   "422 validation with field errors",
			status: 422,
			body:   `{"message":"Appointment validation failed","fieldErrors":{"customerPhone":"Invalid phone number"}}`,
			check: func(t *testing.T, err error) {
				var verr *ValidationError
				if !errors.As(err, &verr) {
					t.Fatalf("want ValidationError, got %T: %v", err, err)
				}
				if verr.FieldErrors["customerPhone"] != "Invalid phone number" {
					t.Fatalf("field errors not decoded: %v", verr.FieldErrors)
				}
			},
		},
		{
			name:   "500 retryable",
			status: http.StatusInternalServerError,
			body:   `{"error":"boom"}`,
			check: func(t *testing.T, err error) {
				var netErr *NetworkError
				if !errors.As(err, &netErr) {
					t.Fatalf("want NetworkError, got %T: %v", err, err)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := New(server.URL, "tok").ListByCustomer(context.Background(), "U1")
			if err == nil {
				t.Fatal("expected an error")
			}
			tt.check(t, err)
		})
	}
}

func TestClientTransportFailureIsNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close() // connection refused from here on

	_, err := New(server.URL, "tok").ListByCustomer(context.Background(), "U1")
	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("want NetworkError, got %T: %v", err, err)
	}
}

func TestClientUpdateStatusSendsPatch(t *testing.T) {
	id := uuid.New()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch || r.URL.Path != "/api/appointments/"+id.String()+"/status" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["status"] != "confirmed" {
			t.Fatalf("unexpected body: %v", body)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": appt(id, "Jane", models.StatusConfirmed),
		})
	}))
	defer server.Close()

	updated, err := New(server.URL, "tok").UpdateStatus(context.Background(), id.String(), models.StatusConfirmed)
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if updated.Status != models.StatusConfirmed {
		t.Fatalf("unexpected status %q", updated.Status)
	}
}
