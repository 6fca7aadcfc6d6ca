package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goliatone/go-devlog/internal/content"
	"github.com/google/uuid"
)

func setupAdminAPI(t *testing.T) (*http.ServeMux, content.Service) {
	t.Helper()

	projects := content.NewMemoryProjectRepository()
	devlogs := content.NewMemoryDevlogRepository()
	projects.BindDevlogs(devlogs)
	svc := content.NewService(projects, devlogs)

	api := NewAdminAPI(
		WithContentService(svc),
	)
	mux := http.NewServeMux()
	if err := api.Register(mux); err != nil {
		t.Fatalf("register api: %v", err)
	}
	return mux, svc
}

func doJSONRequest(t *testing.T, mux *http.ServeMux, method, path string, body any, wantStatus int) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != wantStatus {
		t.Fatalf("expected status %d got %d (%s)", wantStatus, rec.Code, rec.Body.String())
	}
	return rec
}

func decodeJSONBody(t *testing.T, rec *httptest.ResponseRecorder, target any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), target); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func TestAdminAPI_ProjectLifecycle(t *testing.T) {
	mux, _ := setupAdminAPI(t)

	createBody := map[string]any{
		"title":       "Admin Project",
		"description": "created over the wire",
		"is_featured": true,
	}
	createResp := doJSONRequest(t, mux, http.MethodPost, "/admin/api/projects", createBody, http.StatusCreated)

	var created content.Project
	decodeJSONBody(t, createResp, &created)
	if created.ID == uuid.Nil {
		t.Fatal("expected created project id")
	}
	if created.Slug != "admin-project" {
		t.Fatalf("expected slug admin-project got %q", created.Slug)
	}

	listResp := doJSONRequest(t, mux, http.MethodGet, "/admin/api/projects", nil, http.StatusOK)
	var list []*content.Project
	decodeJSONBody(t, listResp, &list)
	if len(list) != 1 {
		t.Fatalf("expected 1 project got %d", len(list))
	}

	getPath := "/admin/api/projects/" + created.ID.String()
	getResp := doJSONRequest(t, mux, http.MethodGet, getPath, nil, http.StatusOK)
	var fetched content.Project
	decodeJSONBody(t, getResp, &fetched)
	if fetched.ID != created.ID {
		t.Fatalf("expected fetched id %s got %s", created.ID, fetched.ID)
	}

	updateBody := map[string]any{"description": "updated"}
	updateResp := doJSONRequest(t, mux, http.MethodPut, getPath, updateBody, http.StatusOK)
	var updated content.Project
	decodeJSONBody(t, updateResp, &updated)
	if updated.Description != "updated" {
		t.Fatalf("expected updated description got %q", updated.Description)
	}

	doJSONRequest(t, mux, http.MethodDelete, getPath, nil, http.StatusNoContent)
	doJSONRequest(t, mux, http.MethodGet, getPath, nil, http.StatusNotFound)
}

func TestAdminAPI_DevlogLifecycle(t *testing.T) {
	mux, _ := setupAdminAPI(t)

	createBody := map[string]any{
		"title":   "Admin Devlog",
		"tagline": "created over the wire",
		"content": "# hi",
	}
	createResp := doJSONRequest(t, mux, http.MethodPost, "/admin/api/devlogs", createBody, http.StatusCreated)

	var created content.Devlog
	decodeJSONBody(t, createResp, &created)
	if created.Slug != "admin-devlog" {
		t.Fatalf("expected slug admin-devlog got %q", created.Slug)
	}
	if created.IsPublished {
		t.Fatal("expected devlog to default to unpublished")
	}

	getPath := "/admin/api/devlogs/" + created.ID.String()
	publish := map[string]any{"is_published": true}
	updateResp := doJSONRequest(t, mux, http.MethodPut, getPath, publish, http.StatusOK)
	var updated content.Devlog
	decodeJSONBody(t, updateResp, &updated)
	if !updated.IsPublished {
		t.Fatal("expected devlog to be published after update")
	}

	doJSONRequest(t, mux, http.MethodDelete, getPath, nil, http.StatusNoContent)
	doJSONRequest(t, mux, http.MethodGet, getPath, nil, http.StatusNotFound)
}

func TestAdminAPI_ValidationErrorsMapTo422(t *testing.T) {
	mux, _ := setupAdminAPI(t)

	resp := doJSONRequest(t, mux, http.MethodPost, "/admin/api/devlogs",
		map[string]any{"title": "No Tagline"}, http.StatusUnprocessableEntity)

	var payload errorResponse
	decodeJSONBody(t, resp, &payload)
	if payload.Error != "validation_failed" {
		t.Fatalf("expected validation_failed, got %q", payload.Error)
	}
	if payload.Field != "tagline" {
		t.Fatalf("expected tagline field, got %q", payload.Field)
	}
}

func TestAdminAPI_DuplicateSlugMapsTo409(t *testing.T) {
	mux, _ := setupAdminAPI(t)

	body := map[string]any{"title": "Duplicate"}
	doJSONRequest(t, mux, http.MethodPost, "/admin/api/projects", body, http.StatusCreated)
	resp := doJSONRequest(t, mux, http.MethodPost, "/admin/api/projects", body, http.StatusConflict)

	var payload errorResponse
	decodeJSONBody(t, resp, &payload)
	if payload.Error != "conflict" {
		t.Fatalf("expected conflict, got %q", payload.Error)
	}
}

func TestAdminAPI_BulkCreateDevlogs(t *testing.T) {
	mux, svc := setupAdminAPI(t)

	body := map[string]any{
		"devlogs": []map[string]any{
			{"title": "Bulk One", "tagline": "first of the batch"},
			{"title": "Bulk Two", "tagline": "second of the batch"},
		},
	}
	doJSONRequest(t, mux, http.MethodPost, "/admin/api/devlogs/bulk", body, http.StatusCreated)

	list, err := svc.ListDevlogs(context.Background(), content.DevlogQuery{})
	if err != nil {
		t.Fatalf("list devlogs: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 devlogs, got %d", len(list))
	}
}

func TestAdminAPI_BulkDeleteProjects(t *testing.T) {
	mux, svc := setupAdminAPI(t)

	first, err := svc.CreateProject(context.Background(), content.CreateProjectRequest{Title: "First"})
	if err != nil {
		t.Fatalf("seed first: %v", err)
	}
	second, err := svc.CreateProject(context.Background(), content.CreateProjectRequest{Title: "Second"})
	if err != nil {
		t.Fatalf("seed second: %v", err)
	}

	body := map[string]any{"ids": []string{first.ID.String(), second.ID.String()}}
	doJSONRequest(t, mux, http.MethodDelete, "/admin/api/projects", body, http.StatusNoContent)

	list, err := svc.ListProjects(context.Background(), content.ProjectQuery{})
	if err != nil {
		t.Fatalf("list projects: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected no projects, got %d", len(list))
	}
}

func TestAdminAPI_RegistryEndpoint(t *testing.T) {
	mux, _ := setupAdminAPI(t)

	resp := doJSONRequest(t, mux, http.MethodGet, "/admin/api/registry", nil, http.StatusOK)
	var entries []map[string]any
	decodeJSONBody(t, resp, &entries)
	if len(entries) != 2 {
		t.Fatalf("expected 2 registry entries, got %d", len(entries))
	}
}
