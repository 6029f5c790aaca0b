// client/client.go
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/BelskviK/Styler-sub001/models"
)

// AppointmentAPI is the remote appointment store as the view-model sees it.
// Each call maps 1:1 to a REST endpoint; failures are one of the typed
// errors in errors.go. No caching happens here.
type AppointmentAPI interface {
	ListByCompany(ctx context.Context, companyID string) ([]models.Appointment, error)
	ListByStyler(ctx context.Context, stylistID string) ([]models.Appointment, error)
	ListByCustomer(ctx context.Context, customerID string) ([]models.Appointment, error)
	Create(ctx context.Context, req CreateAppointmentRequest) (models.Appointment, error)
	UpdateStatus(ctx context.Context, id string, status models.AppointmentStatus) (models.Appointment, error)
	Delete(ctx context.Context, id string) error
}

// CreateAppointmentRequest is the booking payload. The server assigns the id
// and the created timestamp.
type CreateAppointmentRequest struct {
	CustomerName  string    `json:"customerName"`
	CustomerPhone string    `json:"customerPhone"`
	CustomerEmail string    `json:"customerEmail,omitempty"`
	StylistID     string    `json:"stylistId"`
	ServiceID     string    `json:"serviceId"`
	ScheduledTime time.Time `json:"scheduledTime"`
}

// Client is the HTTP implementation of AppointmentAPI.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

var _ AppointmentAPI = (*Client)(nil)

func New(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

type dataEnvelope struct {
	Data json.RawMessage `json:"data"`
}

type errorBody struct {
	Error       string            `json:"error"`
	Message     string            `json:"message"`
	FieldErrors map[string]string `json:"fieldErrors"`
}

func (c *Client) ListByCompany(ctx context.Context, companyID string) ([]models.Appointment, error) {
	return c.list(ctx, "companyId", companyID)
}

func (c *Client) ListByStyler(ctx context.Context, stylistID string) ([]models.Appointment, error) {
	return c.list(ctx, "stylistId", stylistID)
}

func (c *Client) ListByCustomer(ctx context.Context, customerID string) ([]models.Appointment, error) {
	return c.list(ctx, "customerId", customerID)
}

func (c *Client) list(ctx context.Context, scopeParam, scopeID string) ([]models.Appointment, error) {
	query := url.Values{scopeParam: []string{scopeID}}
	var appointments []models.Appointment
	err := c.do(ctx, http.MethodGet, "/api/appointments?"+query.Encode(), nil, &appointments)
	return appointments, err
}

func (c *Client) Create(ctx context.Context, req CreateAppointmentRequest) (models.Appointment, error) {
	var appointment models.Appointment
	err := c.do(ctx, http.MethodPost, "/api/appointments", req, &appointment)
	return appointment, err
}

func (c *Client) UpdateStatus(ctx context.Context, id string, status models.AppointmentStatus) (models.Appointment, error) {
	var appointment models.Appointment
	body := map[string]models.AppointmentStatus{"status": status}
	err := c.do(ctx, http.MethodPatch, "/api/appointments/"+id+"/status", body, &appointment)
	return appointment, err
}

func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/appointments/"+id, nil, nil)
}

// LoginResponse is what the auth endpoint returns on success.
type LoginResponse struct {
	Token string          `json:"token"`
	User  json.RawMessage `json:"user"`
}

// Login exchanges credentials for a bearer token. Not part of the
// appointment adapter contract, but the CLI needs a way in.
func (c *Client) Login(ctx context.Context, identifier, password string) (LoginResponse, error) {
	payload := map[string]string{"identifier": identifier, "password": password}
	body, err := json.Marshal(payload)
	if err != nil {
		return LoginResponse{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/login", bytes.NewReader(body))
	if err != nil {
		return LoginResponse{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return LoginResponse{}, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return LoginResponse{}, &NetworkError{Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		return LoginResponse{}, decodeError(resp.StatusCode, raw)
	}

	var out LoginResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return LoginResponse{}, &NetworkError{Err: fmt.Errorf("decode login response: %w", err)}
	}
	return out, nil
}

// do issues one authenticated request and decodes the {data: ...} envelope
// into out when out is non-nil.
func (c *Client) do(ctx context.Context, method, path string, payload, out interface{}) error {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Err: err}
	}

	if resp.StatusCode >= 400 {
		return decodeError(resp.StatusCode, raw)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	var envelope dataEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return &NetworkError{Err: fmt.Errorf("decode response: %w", err)}
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return &NetworkError{Err: fmt.Errorf("decode response data: %w", err)}
	}
	return nil
}

// decodeError maps HTTP status codes onto the error taxonomy. Server errors
// are reported as network errors since retrying may succeed.
func decodeError(status int, raw []byte) error {
	var body errorBody
	_ = json.Unmarshal(raw, &body)

	message := body.Message
	if message == "" {
		message = body.Error
	}

	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return &AuthError{Status: status, Message: message}
	case status == http.StatusNotFound:
		return &NotFoundError{Message: message}
	case status >= 400 && status < 500:
		return &ValidationError{Message: message, FieldErrors: body.FieldErrors}
	default:
		return &NetworkError{Err: fmt.Errorf("server returned %d: %s", status, message)}
	}
}
