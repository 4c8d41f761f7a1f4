package ticktick

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	pkgErrors "notes-copilot/pkg/errors"
	"notes-copilot/pkg/httpclient"
	pkgTickTick "notes-copilot/pkg/ticktick"
)

const providerName = "ticktick"

// Client is the HTTP wrapper for the TickTick Open API.
type Client struct {
	baseURL    string
	creds      *pkgTickTick.Credentials
	httpClient *httpclient.Client
}

// NewClient creates a new TickTick HTTP client. The bearer token is read
// from creds on every call so refreshed tokens are picked up.
func NewClient(baseURL string, creds *pkgTickTick.Credentials, httpClient *httpclient.Client) *Client {
	if baseURL == "" {
		baseURL = pkgTickTick.DefaultAPIURL
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		creds:      creds,
		httpClient: httpClient,
	}
}

// GetProjects lists projects via GET /project.
func (c *Client) GetProjects(ctx context.Context) ([]Project, error) {
	var projects []Project
	if err := c.get(ctx, "/project", &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// GetProjectData fetches a project with its tasks via GET /project/{id}/data.
func (c *Client) GetProjectData(ctx context.Context, projectID string) (*ProjectData, error) {
	var data ProjectData
	if err := c.get(ctx, "/project/"+url.PathEscape(projectID)+"/data", &data); err != nil {
		return nil, err
	}
	return &data, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build ticktick request: %w", err)
	}
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.creds.AccessToken()))
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(ctx, httpReq)
	if err != nil {
		return fmt.Errorf("ticktick GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &pkgErrors.BackendError{Provider: providerName, StatusCode: resp.StatusCode, Body: string(raw)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &pkgErrors.MalformedResponseError{Provider: providerName, Reason: fmt.Sprintf("decode %s: %v", path, err)}
	}
	return nil
}

// ---- Request/Response types scoped to this package ----

// Project is the TickTick project object.
type Project struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Color    string `json:"color"`
	Closed   bool   `json:"closed"`
	Kind     string `json:"kind"`
	ViewMode string `json:"viewMode"`
}

// Task is the TickTick task object.
type Task struct {
	ID        string   `json:"id"`
	ProjectID string   `json:"projectId"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Desc      string   `json:"desc"`
	Priority  int      `json:"priority"`
	Status    int      `json:"status"`
	DueDate   string   `json:"dueDate"`
	StartDate string   `json:"startDate"`
	TimeZone  string   `json:"timeZone"`
	IsAllDay  bool     `json:"isAllDay"`
	Tags      []string `json:"tags"`
	Items     []Item   `json:"items"`
}

// Item is a checklist entry inside a Task.
type Item struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Status int    `json:"status"`
}

// ProjectData is the body of GET /project/{id}/data.
type ProjectData struct {
	Project Project `json:"project"`
	Tasks   []Task  `json:"tasks"`
}
