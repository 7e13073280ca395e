package tracker

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestUpdateIssueLabels(t *testing.T) {
	ctx := context.Background()

	t.Run("sends one add+remove pair with bearer token", func(t *testing.T) {
		var gotPath, gotMethod, gotAuth string
		var gotBody UpdateLabelsRequest
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotMethod = r.Method
			gotAuth = r.Header.Get("Authorization")
			raw, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(raw, &gotBody)
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		c := NewClient(srv.URL, "tok-123")
		err := c.UpdateIssueLabels(ctx, 500, 41, []string{"qa::passed"}, []string{"qa::ready"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotMethod != http.MethodPut {
			t.Errorf("expected PUT, got %s", gotMethod)
		}
		if gotPath != "/api/v4/projects/500/issues/41" {
			t.Errorf("unexpected path %s", gotPath)
		}
		if gotAuth != "Bearer tok-123" {
			t.Errorf("unexpected auth header %q", gotAuth)
		}
		if gotBody.AddLabels != "qa::passed" || gotBody.RemoveLabels != "qa::ready" {
			t.Errorf("unexpected body %+v", gotBody)
		}
	})

	t.Run("upstream error body is surfaced verbatim", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"message":"insufficient permissions"}`))
		}))
		defer srv.Close()

		c := NewClient(srv.URL, "tok-123")
		err := c.UpdateIssueLabels(ctx, 500, 41, []string{"qa::passed"}, nil)
		if err == nil {
			t.Fatal("expected error")
		}
		if !strings.Contains(err.Error(), "insufficient permissions") {
			t.Errorf("upstream body lost: %v", err)
		}
	})
}

func TestListProjectIssues(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v4/projects/500/issues" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("state") != "opened" || q.Get("order_by") != "updated_at" {
			t.Errorf("unexpected query %s", r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(`[
			{"id": 1, "iid": 41, "project_id": 500, "title": "a", "labels": ["qa::ready"]},
			{"id": 2, "iid": 42, "project_id": 500, "title": "b", "labels": []}
		]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok-123")
	issues, err := c.ListProjectIssues(context.Background(), 500)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(issues) != 2 {
		t.Fatalf("expected 2 issues, got %d", len(issues))
	}
	if issues[0].IID != 41 || issues[0].Labels[0] != "qa::ready" {
		t.Errorf("unexpected first issue %+v", issues[0])
	}
}

func TestIssueURL(t *testing.T) {
	c := NewClient("https://tracker.example.com/", "tok")
	got := c.IssueURL(500, 41)
	want := "https://tracker.example.com/projects/500/issues/41"
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}
