package handlers

import (
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/ternarybob/arbor"

	"github.com/prismbrain/prism/internal/common"
	"github.com/prismbrain/prism/internal/interfaces"
	"github.com/prismbrain/prism/internal/models"
	"github.com/prismbrain/prism/internal/services/normalizer"
	pkgmodels "github.com/prismbrain/prism/pkg/models"
)

// ProjectHandler serves the project lifecycle endpoints: create, list,
// ingest and synthesize. Uploads are validated at the boundary, normalized
// into content units, then handed to the project service.
type ProjectHandler struct {
	projects   interfaces.ProjectService
	normalizer *normalizer.Service
	validate   *validator.Validate
	logger     arbor.ILogger
}

func NewProjectHandler(projects interfaces.ProjectService, norm *normalizer.Service) *ProjectHandler {
	return &ProjectHandler{
		projects:   projects,
		normalizer: norm,
		validate:   validator.New(),
		logger:     common.GetLogger(),
	}
}

type createProjectRequest struct {
	Name string `json:"name" validate:"required"`
}

// CreateProjectHandler registers a new (or reset) project
func (h *ProjectHandler) CreateProjectHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "POST") {
		return
	}

	var req createProjectRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		WriteError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	id, err := h.projects.CreateProject(r.Context(), req.Name)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, map[string]string{
		"project_id": id,
		"name":       req.Name,
	})
}

// ListProjectsHandler returns a summary of all projects
func (h *ProjectHandler) ListProjectsHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	projects, err := h.projects.ListProjects(r.Context())
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	summaries := make([]map[string]interface{}, 0, len(projects))
	for _, p := range projects {
		summaries = append(summaries, map[string]interface{}{
			"id":           p.ID,
			"name":         p.Name,
			"created_at":   p.CreatedAt,
			"updated_at":   p.UpdatedAt,
			"units":        len(p.Units),
			"sources":      len(p.Sources),
			"contributors": p.ContributorNames(),
		})
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"projects": summaries,
		"count":    len(summaries),
	})
}

// GetProjectHandler returns full project state including classified units
func (h *ProjectHandler) GetProjectHandler(w http.ResponseWriter, r *http.Request, projectID string) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	project, err := h.projects.GetProject(r.Context(), projectID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, project)
}

// IngestBoardHandler accepts a whiteboard export from the board collaborator
func (h *ProjectHandler) IngestBoardHandler(w http.ResponseWriter, r *http.Request, projectID string) {
	if !RequireMethod(w, r, "POST") {
		return
	}

	var upload pkgmodels.BoardUpload
	if err := DecodeJSON(r, &upload); err != nil {
		WriteError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if err := h.validate.Struct(&upload); err != nil {
		WriteError(w, http.StatusBadRequest, fmt.Sprintf("Invalid board upload: %v", err))
		return
	}

	units, connections := h.normalizer.Board(&upload)
	h.ingest(w, r, projectID, interfaces.IngestBatch{
		SourceType:  models.SourceTypeFigJam,
		DisplayName: upload.BoardName,
		Units:       units,
		Connections: connections,
	})
}

// IngestAudioHandler accepts a transcription result from the audio collaborator
func (h *ProjectHandler) IngestAudioHandler(w http.ResponseWriter, r *http.Request, projectID string) {
	if !RequireMethod(w, r, "POST") {
		return
	}

	var upload pkgmodels.AudioUpload
	if err := DecodeJSON(r, &upload); err != nil {
		WriteError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if err := h.validate.Struct(&upload); err != nil {
		WriteError(w, http.StatusBadRequest, fmt.Sprintf("Invalid audio upload: %v", err))
		return
	}
	if upload.Transcript == "" && len(upload.Segments) == 0 {
		WriteError(w, http.StatusBadRequest, "Either transcript or segments must be provided")
		return
	}

	units := h.normalizer.Audio(&upload)
	h.ingest(w, r, projectID, interfaces.IngestBatch{
		SourceType:  models.SourceTypeAudio,
		DisplayName: upload.FileName,
		Units:       units,
	})
}

// IngestDocumentHandler accepts extracted document text from the document collaborator
func (h *ProjectHandler) IngestDocumentHandler(w http.ResponseWriter, r *http.Request, projectID string) {
	if !RequireMethod(w, r, "POST") {
		return
	}

	var upload pkgmodels.DocumentUpload
	if err := DecodeJSON(r, &upload); err != nil {
		WriteError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if err := h.validate.Struct(&upload); err != nil {
		WriteError(w, http.StatusBadRequest, fmt.Sprintf("Invalid document upload: %v", err))
		return
	}

	units := h.normalizer.Document(&upload)
	h.ingest(w, r, projectID, interfaces.IngestBatch{
		SourceType:  models.SourceTypeDocument,
		DisplayName: upload.FileName,
		Units:       units,
	})
}

// SynthesizeHandler recomputes and returns the project's synthesis report
func (h *ProjectHandler) SynthesizeHandler(w http.ResponseWriter, r *http.Request, projectID string) {
	if r.Method != "GET" && r.Method != "POST" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	report, err := h.projects.Synthesize(r.Context(), projectID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, report)
}

func (h *ProjectHandler) ingest(w http.ResponseWriter, r *http.Request, projectID string, batch interfaces.IngestBatch) {
	accepted, err := h.projects.Ingest(r.Context(), projectID, batch)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":         "success",
		"project_id":     projectID,
		"source_kind":    string(batch.SourceType),
		"units_ingested": accepted,
		"connections":    len(batch.Connections),
	})
}
