package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/junaifcp/swift-resume/pkg/resume"
)

const defaultTimeout = 10 * time.Second

// APIClient talks to the swift-resume backend API. It implements Remote
// and the remote half of the export flow. Every request carries the bearer
// credential supplied by the auth collaborator; any transport or non-2xx
// failure surfaces as a plain error, which callers treat identically.
type APIClient struct {
	baseURL string
	httpc   *http.Client
	auth    Auth
}

// NewAPIClient builds a client for the given base URL, e.g.
// "https://api.example.com". A nil http.Client gets a sane default timeout.
func NewAPIClient(baseURL string, auth Auth, httpc *http.Client) *APIClient {
	if httpc == nil {
		httpc = &http.Client{Timeout: defaultTimeout}
	}
	return &APIClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   httpc,
		auth:    auth,
	}
}

func (c *APIClient) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	token, err := c.auth.Token(ctx)
	if err != nil {
		return fmt.Errorf("resolve credential: %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%s %s: %s", method, path, apiErrorMessage(resp))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func apiErrorMessage(resp *http.Response) string {
	var payload struct {
		Error string `json:"error"`
	}
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if json.Unmarshal(data, &payload) == nil && payload.Error != "" {
		return fmt.Sprintf("%s (%s)", payload.Error, resp.Status)
	}
	return resp.Status
}

// List fetches all resumes of the authenticated user.
func (c *APIClient) List(ctx context.Context) ([]resume.Resume, error) {
	var out []resume.Resume
	if err := c.do(ctx, http.MethodGet, "/v1/resumes", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get fetches one resume by its remote identifier.
func (c *APIClient) Get(ctx context.Context, remoteID uint) (resume.Resume, error) {
	var out resume.Resume
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/v1/resumes/%d", remoteID), nil, &out); err != nil {
		return resume.Resume{}, err
	}
	return out, nil
}

// Create stores a new document; the response carries the assigned remote id.
func (c *APIClient) Create(ctx context.Context, r resume.Resume) (resume.Resume, error) {
	var out resume.Resume
	if err := c.do(ctx, http.MethodPost, "/v1/resumes", r, &out); err != nil {
		return resume.Resume{}, err
	}
	return out, nil
}

// Update overwrites the remote document.
func (c *APIClient) Update(ctx context.Context, r resume.Resume) (resume.Resume, error) {
	if r.RemoteID == 0 {
		return resume.Resume{}, fmt.Errorf("update: resume %s has no remote id", r.ID)
	}
	var out resume.Resume
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/v1/resumes/%d", r.RemoteID), r, &out); err != nil {
		return resume.Resume{}, err
	}
	return out, nil
}

// Delete removes the remote document.
func (c *APIClient) Delete(ctx context.Context, remoteID uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/v1/resumes/%d", remoteID), nil, nil)
}

// Duplicate asks the backend to clone a document server-side.
func (c *APIClient) Duplicate(ctx context.Context, remoteID uint) (resume.Resume, error) {
	var out resume.Resume
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/v1/resumes/%d/duplicate", remoteID), nil, &out); err != nil {
		return resume.Resume{}, err
	}
	return out, nil
}

// RequestExport enqueues server-side PDF generation and returns the task id.
func (c *APIClient) RequestExport(ctx context.Context, remoteID uint) (string, error) {
	var out struct {
		TaskID string `json:"task_id"`
	}
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/v1/resumes/%d/export", remoteID), nil, &out); err != nil {
		return "", err
	}
	return out.TaskID, nil
}

// ExportLink fetches a presigned download URL for a finished export.
func (c *APIClient) ExportLink(ctx context.Context, remoteID uint) (string, error) {
	var out struct {
		URL string `json:"url"`
	}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/v1/resumes/%d/export-link", remoteID), nil, &out); err != nil {
		return "", err
	}
	return out.URL, nil
}
