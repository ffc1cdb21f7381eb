// Package client provides a typed HTTP client for the adapta API. It is
// the programmatic counterpart of the REST surface: one method per
// endpoint, bearer-token authentication, and message-bearing errors.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/mvsilva/adapta/internal/app/models/dto"
)

// APIError is a structured error returned by the server.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("api error %d (%s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// TransportError wraps network failures and responses that are not
// valid JSON. It is never a server-side rejection.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Client talks to an adapta server. It is safe for concurrent use once
// the token is set; SetToken and Login must not race with requests.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithToken sets the bearer token up front.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// New creates a Client for the given base URL, e.g. "http://localhost:8080".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken replaces the bearer token used for subsequent requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

// Token returns the bearer token currently in use.
func (c *Client) Token() string {
	return c.token
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reqBody *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &TransportError{Err: fmt.Errorf("encoding request: %w", err)}
		}
		reqBody = bytes.NewReader(payload)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/api/v1"+path, reqBody)
	if err != nil {
		return &TransportError{Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var errResp dto.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil {
			return &TransportError{Err: fmt.Errorf("decoding error response (status %d): %w", resp.StatusCode, err)}
		}
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if errResp.Error != nil {
			apiErr.Code = string(errResp.Error.Code)
			apiErr.Message = errResp.Error.Message
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &TransportError{Err: fmt.Errorf("decoding response: %w", err)}
	}
	return nil
}

// SignUp creates a new account. It does not authenticate the client.
func (c *Client) SignUp(ctx context.Context, req *SignUpRequest) (*User, error) {
	var out struct {
		User *User `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/signup", req, &out); err != nil {
		return nil, err
	}
	return out.User, nil
}

// Login authenticates and stores the returned bearer token for
// subsequent requests.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	var out AuthResponse
	req := &LoginRequest{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/login", req, &out); err != nil {
		return nil, err
	}
	c.token = out.Token.AccessToken
	return &out, nil
}

// Me returns the profile of the authenticated user.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var out struct {
		User *User `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/me", nil, &out); err != nil {
		return nil, err
	}
	return out.User, nil
}

// GetStudents lists every registered student.
func (c *Client) GetStudents(ctx context.Context) ([]*Student, error) {
	var out struct {
		Students []*Student `json:"students"`
	}
	if err := c.do(ctx, http.MethodGet, "/students", nil, &out); err != nil {
		return nil, err
	}
	return out.Students, nil
}

// CreateStudent registers a new student.
func (c *Client) CreateStudent(ctx context.Context, req *CreateStudentRequest) (*Student, error) {
	var out struct {
		Student *Student `json:"student"`
	}
	if err := c.do(ctx, http.MethodPost, "/students", req, &out); err != nil {
		return nil, err
	}
	return out.Student, nil
}

// UpdateStudent merges the provided fields over an existing student.
func (c *Client) UpdateStudent(ctx context.Context, id string, req *UpdateStudentRequest) (*Student, error) {
	var out struct {
		Student *Student `json:"student"`
	}
	if err := c.do(ctx, http.MethodPut, "/students/"+id, req, &out); err != nil {
		return nil, err
	}
	return out.Student, nil
}

// DeleteStudent deletes a student and its dependent records.
func (c *Client) DeleteStudent(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/students/"+id, nil, nil)
}

// GetAdaptations lists a student's curricular adaptations.
func (c *Client) GetAdaptations(ctx context.Context, studentID string) ([]*Adaptation, error) {
	var out struct {
		Adaptations []*Adaptation `json:"adaptations"`
	}
	if err := c.do(ctx, http.MethodGet, "/adaptations/"+studentID, nil, &out); err != nil {
		return nil, err
	}
	return out.Adaptations, nil
}

// CreateAdaptation registers a new adaptation.
func (c *Client) CreateAdaptation(ctx context.Context, req *CreateAdaptationRequest) (*Adaptation, error) {
	var out struct {
		Adaptation *Adaptation `json:"adaptation"`
	}
	if err := c.do(ctx, http.MethodPost, "/adaptations", req, &out); err != nil {
		return nil, err
	}
	return out.Adaptation, nil
}

// UpdateAdaptation merges the provided fields over an existing adaptation.
func (c *Client) UpdateAdaptation(ctx context.Context, studentID, id string, req *UpdateAdaptationRequest) (*Adaptation, error) {
	var out struct {
		Adaptation *Adaptation `json:"adaptation"`
	}
	if err := c.do(ctx, http.MethodPut, "/adaptations/"+studentID+"/"+id, req, &out); err != nil {
		return nil, err
	}
	return out.Adaptation, nil
}

// DeleteAdaptation deletes an adaptation.
func (c *Client) DeleteAdaptation(ctx context.Context, studentID, id string) error {
	return c.do(ctx, http.MethodDelete, "/adaptations/"+studentID+"/"+id, nil, nil)
}

// GetReports lists a student's follow-up reports.
func (c *Client) GetReports(ctx context.Context, studentID string) ([]*Report, error) {
	var out struct {
		Reports []*Report `json:"reports"`
	}
	if err := c.do(ctx, http.MethodGet, "/reports/"+studentID, nil, &out); err != nil {
		return nil, err
	}
	return out.Reports, nil
}

// CreateReport registers a new follow-up report authored by the
// authenticated user.
func (c *Client) CreateReport(ctx context.Context, req *CreateReportRequest) (*Report, error) {
	var out struct {
		Report *Report `json:"report"`
	}
	if err := c.do(ctx, http.MethodPost, "/reports", req, &out); err != nil {
		return nil, err
	}
	return out.Report, nil
}

// UpdateReport merges the provided fields over an existing report.
func (c *Client) UpdateReport(ctx context.Context, studentID, id string, req *UpdateReportRequest) (*Report, error) {
	var out struct {
		Report *Report `json:"report"`
	}
	if err := c.do(ctx, http.MethodPut, "/reports/"+studentID+"/"+id, req, &out); err != nil {
		return nil, err
	}
	return out.Report, nil
}

// DeleteReport deletes a report.
func (c *Client) DeleteReport(ctx context.Context, studentID, id string) error {
	return c.do(ctx, http.MethodDelete, "/reports/"+studentID+"/"+id, nil, nil)
}

// GetStudentReport returns a student together with every adaptation
// and report, reports ordered by date descending.
func (c *Client) GetStudentReport(ctx context.Context, studentID string) (*StudentReport, error) {
	var out StudentReport
	if err := c.do(ctx, http.MethodGet, "/student-report/"+studentID, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
