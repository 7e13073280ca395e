package tracker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"golang.org/x/oauth2"
)

// Client is the HTTP wrapper for the tracker REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new tracker client. The access token is carried by
// an oauth2 static-token transport so every request is authenticated.
func NewClient(baseURL, accessToken string) *Client {
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: oauth2.NewClient(context.Background(), src),
	}
}

// ListProjectIssues lists open issues for a project, newest update first.
func (c *Client) ListProjectIssues(ctx context.Context, projectID int) ([]Issue, error) {
	url := fmt.Sprintf("%s/api/v4/projects/%d/issues?state=opened&order_by=updated_at&sort=desc", c.baseURL, projectID)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build list issues request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call tracker list API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("tracker API list error %d: %s", resp.StatusCode, string(raw))
	}

	var issues []Issue
	if err := json.NewDecoder(resp.Body).Decode(&issues); err != nil {
		return nil, fmt.Errorf("failed to decode tracker list response: %w", err)
	}
	return issues, nil
}

// GetIssue fetches one issue by project-scoped iid.
func (c *Client) GetIssue(ctx context.Context, projectID, issueIID int) (*Issue, error) {
	url := fmt.Sprintf("%s/api/v4/projects/%d/issues/%d", c.baseURL, projectID, issueIID)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build get issue request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call tracker get API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("tracker API get error %d: %s", resp.StatusCode, string(raw))
	}

	var issue Issue
	if err := json.NewDecoder(resp.Body).Decode(&issue); err != nil {
		return nil, fmt.Errorf("failed to decode tracker get response: %w", err)
	}
	return &issue, nil
}

// UpdateIssueLabels sends one add+remove label pair via PUT.
// The upstream error body is returned verbatim so callers can surface it.
func (c *Client) UpdateIssueLabels(ctx context.Context, projectID, issueIID int, add, remove []string) error {
	url := fmt.Sprintf("%s/api/v4/projects/%d/issues/%d", c.baseURL, projectID, issueIID)

	body, err := json.Marshal(UpdateLabelsRequest{
		AddLabels:    strings.Join(add, ","),
		RemoveLabels: strings.Join(remove, ","),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal update labels request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to build update labels request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call tracker update API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("tracker API update error %d: %s", resp.StatusCode, string(raw))
	}
	return nil
}

// IssueURL builds the user-facing deep link to an issue.
func (c *Client) IssueURL(projectID, issueIID int) string {
	return fmt.Sprintf("%s/projects/%d/issues/%d", c.baseURL, projectID, issueIID)
}
