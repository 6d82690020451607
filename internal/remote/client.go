// Package remote implements the HTTP client for the task repository: listing
// assigned tasks, status mutations, stage submissions, reassignment requests,
// and customer snapshot reads. It owns the error taxonomy for remote calls.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/helioworks/fieldops/pkg/models"
)

// Result is the outcome of a remote mutation.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	// Partial is set by the server when artifacts were stored but the
	// metadata update failed.
	Partial bool     `json:"partial,omitempty"`
	Stored  []string `json:"stored,omitempty"`
}

// StageDocument is one artifact attached to a stage submission.
type StageDocument struct {
	Kind string
	Name string
	Path string
}

// StagePayload is a stage submission: per-stage fields plus attached
// documents, sent to the server as a single multipart request so fields are
// never recorded without their artifacts.
type StagePayload struct {
	HandlerID string
	Fields    map[string]string
	Documents []StageDocument
}

// TaskClient defines the remote operations on the task repository. It does
// not enforce the status transition rule; callers run the rule before
// calling, and the server's own check remains authoritative.
type TaskClient interface {
	ListByAssignee(ctx context.Context, assigneeID string) ([]models.Task, error)
	UpdateStatus(ctx context.Context, taskID string, status models.TaskStatus) (*Result, error)
	SubmitStageDocuments(ctx context.Context, taskID string, payload StagePayload) (*Result, error)
	CreateReassignmentRequest(ctx context.Context, taskID, fromUser, toUser string) (*Result, error)
	GetCustomerSnapshot(ctx context.Context, customerID string) (*models.CustomerSnapshot, error)
}

// httpTaskClient implements TaskClient over the console API.
type httpTaskClient struct {
	baseURL string
	auth    AuthContext
	client  *http.Client
}

// NewTaskClient creates a TaskClient for the given API base URL and session
// credentials.
func NewTaskClient(baseURL string, auth AuthContext, timeout time.Duration) TaskClient {
	return &httpTaskClient{
		baseURL: baseURL,
		auth:    auth,
		client:  &http.Client{Timeout: timeout},
	}
}

// newRequest builds a request with the bearer credential and a correlation ID.
func (c *httpTaskClient) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("building %s %s: %w", method, path, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.auth.Token)
	req.Header.Set("X-Request-ID", uuid.NewString())
	return req, nil
}

// do executes the request and maps error statuses to the remote error
// taxonomy. The response body is returned for 2xx statuses.
func (c *httpTaskClient) do(req *http.Request, resource, id string) ([]byte, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return body, nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, &AuthError{Message: serverMessage(body)}
	case resp.StatusCode == http.StatusNotFound:
		return nil, &NotFoundError{Resource: resource, ID: id}
	case resp.StatusCode == http.StatusConflict:
		return nil, &ConflictError{Message: serverMessage(body)}
	default:
		return nil, &NetworkError{Err: fmt.Errorf("server returned status %d: %s", resp.StatusCode, serverMessage(body))}
	}
}

// serverMessage extracts the message field from an error response body.
func serverMessage(body []byte) string {
	var r Result
	if err := json.Unmarshal(body, &r); err == nil && r.Message != "" {
		return r.Message
	}
	return ""
}

// ListByAssignee fetches all tasks currently assigned to the employee.
func (c *httpTaskClient) ListByAssignee(ctx context.Context, assigneeID string) ([]models.Task, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/assignees/"+assigneeID+"/tasks", nil)
	if err != nil {
		return nil, err
	}
	body, err := c.do(req, "assignee", assigneeID)
	if err != nil {
		return nil, err
	}

	var tasks []models.Task
	if err := json.Unmarshal(body, &tasks); err != nil {
		return nil, fmt.Errorf("decoding task list: %w", err)
	}
	return tasks, nil
}

// UpdateStatus attempts the remote status mutation. A 409 from the server
// means its authoritative state rejects the transition and surfaces as a
// ConflictError.
func (c *httpTaskClient) UpdateStatus(ctx context.Context, taskID string, status models.TaskStatus) (*Result, error) {
	payload, err := json.Marshal(map[string]string{"status": string(status)})
	if err != nil {
		return nil, fmt.Errorf("encoding status update: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPatch, "/tasks/"+taskID+"/status", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	body, err := c.do(req, "task", taskID)
	if err != nil {
		return nil, err
	}
	return decodeResult(body)
}

// SubmitStageDocuments uploads a stage submission as one multipart request:
// every field and every document travel together, so the server either
// records the whole submission or none of it. A partial server response
// (artifacts stored, metadata update failed) maps to PartialFailureError.
func (c *httpTaskClient) SubmitStageDocuments(ctx context.Context, taskID string, payload StagePayload) (*Result, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if err := w.WriteField("handler", payload.HandlerID); err != nil {
		return nil, fmt.Errorf("encoding stage submission: %w", err)
	}
	for key, value := range payload.Fields {
		if err := w.WriteField(key, value); err != nil {
			return nil, fmt.Errorf("encoding stage field %s: %w", key, err)
		}
	}
	for _, doc := range payload.Documents {
		if err := attachDocument(w, doc); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("finalizing stage submission: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/tasks/"+taskID+"/stage", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	body, err := c.do(req, "task", taskID)
	if err != nil {
		return nil, err
	}

	result, err := decodeResult(body)
	if err != nil {
		return nil, err
	}
	if result.Partial {
		return nil, &PartialFailureError{Stored: result.Stored, Message: result.Message}
	}
	return result, nil
}

// attachDocument streams one artifact file into the multipart writer.
func attachDocument(w *multipart.Writer, doc StageDocument) error {
	f, err := os.Open(doc.Path)
	if err != nil {
		return fmt.Errorf("opening document %s: %w", doc.Path, err)
	}
	defer func() { _ = f.Close() }()

	name := doc.Name
	if name == "" {
		name = filepath.Base(doc.Path)
	}
	part, err := w.CreateFormFile(doc.Kind, name)
	if err != nil {
		return fmt.Errorf("attaching document %s: %w", doc.Kind, err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return fmt.Errorf("reading document %s: %w", doc.Path, err)
	}
	return nil
}

// CreateReassignmentRequest produces a new approval task for the handover.
// The original task's assignee is not mutated; approval is a separate
// workflow.
func (c *httpTaskClient) CreateReassignmentRequest(ctx context.Context, taskID, fromUser, toUser string) (*Result, error) {
	payload, err := json.Marshal(map[string]string{
		"request_id": uuid.NewString(),
		"from":       fromUser,
		"to":         toUser,
	})
	if err != nil {
		return nil, fmt.Errorf("encoding reassignment request: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/tasks/"+taskID+"/reassignment", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	body, err := c.do(req, "task", taskID)
	if err != nil {
		return nil, err
	}
	return decodeResult(body)
}

// GetCustomerSnapshot fetches the read-only customer projection for a task.
func (c *httpTaskClient) GetCustomerSnapshot(ctx context.Context, customerID string) (*models.CustomerSnapshot, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/customers/"+customerID, nil)
	if err != nil {
		return nil, err
	}
	body, err := c.do(req, "customer", customerID)
	if err != nil {
		return nil, err
	}

	var snap models.CustomerSnapshot
	if err := json.Unmarshal(body, &snap); err != nil {
		return nil, fmt.Errorf("decoding customer snapshot: %w", err)
	}
	return &snap, nil
}

// decodeResult parses a mutation response body.
func decodeResult(body []byte) (*Result, error) {
	var result Result
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("decoding mutation result: %w", err)
	}
	return &result, nil
}
