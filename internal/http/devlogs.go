package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/goliatone/go-devlog/internal/content"
	"github.com/google/uuid"
)

type devlogCreatePayload struct {
	Title       string     `json:"title"`
	Slug        string     `json:"slug,omitempty"`
	Tagline     string     `json:"tagline"`
	Content     string     `json:"content,omitempty"`
	IsPublished bool       `json:"is_published,omitempty"`
	ProjectID   *uuid.UUID `json:"project_id,omitempty"`
}

type devlogUpdatePayload struct {
	Title        *string    `json:"title,omitempty"`
	Tagline      *string    `json:"tagline,omitempty"`
	Content      *string    `json:"content,omitempty"`
	IsPublished  *bool      `json:"is_published,omitempty"`
	ProjectID    *uuid.UUID `json:"project_id,omitempty"`
	ClearProject bool       `json:"clear_project,omitempty"`
}

type devlogBulkCreatePayload struct {
	Devlogs []devlogCreatePayload `json:"devlogs"`
}

type devlogBulkDeletePayload struct {
	IDs []uuid.UUID `json:"ids"`
}

func (api *AdminAPI) registerDevlogRoutes(mux *http.ServeMux, base string) {
	if mux == nil {
		return
	}
	root := joinPath(base, "devlogs")
	mux.HandleFunc("GET "+root, api.handleDevlogList)
	mux.HandleFunc("POST "+root, api.handleDevlogCreate)
	mux.HandleFunc("DELETE "+root, api.handleDevlogBulkDelete)
	mux.HandleFunc("POST "+root+"/bulk", api.handleDevlogBulkCreate)
	mux.HandleFunc("GET "+root+"/{id}", api.handleDevlogGet)
	mux.HandleFunc("PUT "+root+"/{id}", api.handleDevlogUpdate)
	mux.HandleFunc("DELETE "+root+"/{id}", api.handleDevlogDelete)
}

func (api *AdminAPI) handleDevlogList(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.content == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	query := content.DevlogQuery{
		PublishedOnly: parseBoolQuery(r.URL.Query().Get("published"), false),
		Search:        r.URL.Query().Get("q"),
		Limit:         parseLimitQuery(r.URL.Query().Get("limit"), 0),
	}
	if raw := r.URL.Query().Get("project_id"); raw != "" {
		projectID, err := parseUUID(raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid project_id"})
			return
		}
		query.ProjectID = &projectID
	}
	list, err := api.content.ListDevlogs(r.Context(), query)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (api *AdminAPI) handleDevlogGet(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.content == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid id"})
		return
	}
	record, err := api.content.GetDevlog(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (api *AdminAPI) handleDevlogCreate(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.content == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	var payload devlogCreatePayload
	if err := decodeJSON(r, &payload); err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: err.Error()})
		return
	}
	record, err := api.content.CreateDevlog(r.Context(), devlogCreateRequest(payload))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, record)
}

func (api *AdminAPI) handleDevlogBulkCreate(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.content == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	var payload devlogBulkCreatePayload
	if err := decodeJSON(r, &payload); err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: err.Error()})
		return
	}
	reqs := make([]content.CreateDevlogRequest, 0, len(payload.Devlogs))
	for _, item := range payload.Devlogs {
		reqs = append(reqs, devlogCreateRequest(item))
	}
	records, err := api.content.CreateDevlogs(r.Context(), reqs)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, records)
}

func (api *AdminAPI) handleDevlogUpdate(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.content == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid id"})
		return
	}
	var payload devlogUpdatePayload
	if err := decodeJSON(r, &payload); err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: err.Error()})
		return
	}
	record, err := api.content.UpdateDevlog(r.Context(), content.UpdateDevlogRequest{
		ID:           id,
		Title:        payload.Title,
		Tagline:      payload.Tagline,
		Content:      payload.Content,
		IsPublished:  payload.IsPublished,
		ProjectID:    payload.ProjectID,
		ClearProject: payload.ClearProject,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (api *AdminAPI) handleDevlogDelete(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.content == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid id"})
		return
	}
	if err := api.content.DeleteDevlog(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (api *AdminAPI) handleDevlogBulkDelete(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.content == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	var payload devlogBulkDeletePayload
	if err := decodeJSON(r, &payload); err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: err.Error()})
		return
	}
	if err := api.content.DeleteDevlogs(r.Context(), payload.IDs); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func devlogCreateRequest(payload devlogCreatePayload) content.CreateDevlogRequest {
	return content.CreateDevlogRequest{
		Title:       payload.Title,
		Slug:        payload.Slug,
		Tagline:     payload.Tagline,
		Content:     payload.Content,
		IsPublished: payload.IsPublished,
		ProjectID:   payload.ProjectID,
	}
}
