// Package client is the typed HTTP client for the SwiftDoc backend contract.
// Every call takes a context and an explicit Session; failures split into
// backend rejections (*APIError) and wrapped transport errors. The client
// never retries: generation calls are not known to be idempotent.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"time"

	"swiftdoc/internal/domain"
	"swiftdoc/internal/domain/services"
	"swiftdoc/internal/httputil"
)

// Client talks to one SwiftDoc backend.
type Client struct {
	baseURL string
	http    *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client (mainly for tests).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// New creates a client for the backend at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout: 120 * time.Second, // generation calls can be slow
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// TokenResponse is the login result.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Register creates an account.
func (c *Client) Register(ctx context.Context, email, password string) error {
	body := map[string]string{"email": email, "password": password}
	return c.do(ctx, nil, http.MethodPost, "/auth/register", body, nil)
}

// Login exchanges credentials for a session.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	body := map[string]string{"email": email, "password": password}
	var resp TokenResponse
	if err := c.do(ctx, nil, http.MethodPost, "/auth/login", body, &resp); err != nil {
		return nil, err
	}
	return NewSession(resp.AccessToken), nil
}

// ListProjects retrieves the user's projects.
func (c *Client) ListProjects(ctx context.Context, session *Session) ([]domain.Project, error) {
	var projects []domain.Project
	if err := c.do(ctx, session, http.MethodGet, "/api/projects", nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// CreateProject persists title/type/topic/outline as one atomic call and
// returns the created project. One section is created per outline entry,
// order preserved.
func (c *Client) CreateProject(ctx context.Context, session *Session, req *services.CreateProjectRequest) (*domain.Project, error) {
	var project domain.Project
	if err := c.do(ctx, session, http.MethodPost, "/api/projects", req, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// SuggestOutline asks the backend for an AI-drafted outline.
// The returned slice may be empty; callers treat that as "no change".
func (c *Client) SuggestOutline(ctx context.Context, session *Session, topic, docType string) ([]string, error) {
	req := services.SuggestOutlineRequest{Topic: topic, DocType: docType}
	var resp services.SuggestOutlineResponse
	if err := c.do(ctx, session, http.MethodPost, "/api/outline/suggest", req, &resp); err != nil {
		return nil, err
	}
	return resp.Outline, nil
}

// GetProject fetches the full project snapshot.
func (c *Client) GetProject(ctx context.Context, session *Session, projectID string) (*services.ProjectDetail, error) {
	var detail services.ProjectDetail
	path := "/api/projects/" + projectID
	if err := c.do(ctx, session, http.MethodGet, path, nil, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// DeleteProject removes a project and everything under it. Irreversible.
func (c *Client) DeleteProject(ctx context.Context, session *Session, projectID string) error {
	return c.do(ctx, session, http.MethodDelete, "/api/projects/"+projectID, nil, nil)
}

// GenerateSection asks the backend to draft content for a section.
func (c *Client) GenerateSection(ctx context.Context, session *Session, sectionID string) error {
	return c.do(ctx, session, http.MethodPost, "/api/sections/"+sectionID+"/generate", nil, nil)
}

// RefineSection asks the backend to rewrite a section per the instruction.
func (c *Client) RefineSection(ctx context.Context, session *Session, sectionID, instruction string) error {
	req := services.RefineRequest{Instruction: instruction}
	return c.do(ctx, session, http.MethodPost, "/api/sections/"+sectionID+"/refine", req, nil)
}

// SubmitFeedback records a reaction to a section's content.
func (c *Client) SubmitFeedback(ctx context.Context, session *Session, sectionID string, req *services.FeedbackRequest) error {
	return c.do(ctx, session, http.MethodPost, "/api/sections/"+sectionID+"/feedback", req, nil)
}

// ExportProject fetches the composed artifact. Returns the file bytes and the
// filename the backend suggested (document.<doc_type> when absent).
func (c *Client) ExportProject(ctx context.Context, session *Session, projectID, docType string) ([]byte, string, error) {
	req, err := c.newRequest(ctx, session, http.MethodGet, "/api/projects/"+projectID+"/export", nil)
	if err != nil {
		return nil, "", err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("export project: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", readAPIError(resp)
	}

	artifact, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("read export body: %w", err)
	}

	filename := "document." + docType
	if _, params, err := mime.ParseMediaType(resp.Header.Get("Content-Disposition")); err == nil {
		if name := params["filename"]; name != "" {
			filename = name
		}
	}

	return artifact, filename, nil
}

// do issues one JSON round trip. out may be nil for calls without a response
// body worth decoding.
func (c *Client) do(ctx context.Context, session *Session, method, path string, body, out interface{}) error {
	req, err := c.newRequest(ctx, session, method, path, body)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return readAPIError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response for %s %s: %w", method, path, err)
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, session *Session, method, path string, body interface{}) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if session.Valid() {
		req.Header.Set("Authorization", "Bearer "+session.Token)
	}
	return req, nil
}

// readAPIError turns a non-2xx response into an *APIError, pulling the detail
// out of the RFC 7807 body when there is one.
func readAPIError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}

	var problem httputil.ProblemDetail
	if err := json.NewDecoder(resp.Body).Decode(&problem); err == nil {
		if problem.Detail != "" {
			apiErr.Detail = problem.Detail
		} else {
			apiErr.Detail = problem.Title
		}
	}

	return apiErr
}
