package handlers

import (
	"net/http"

	"github.com/ternarybob/arbor"

	"github.com/prismbrain/prism/internal/common"
	"github.com/prismbrain/prism/internal/interfaces"
	"github.com/prismbrain/prism/internal/services/report"
)

// ReportHandler serves rendered synthesis reports. The format query
// parameter selects markdown (default) or html.
type ReportHandler struct {
	projects interfaces.ProjectService
	renderer *report.Service
	logger   arbor.ILogger
}

func NewReportHandler(projects interfaces.ProjectService, renderer *report.Service) *ReportHandler {
	return &ReportHandler{
		projects: projects,
		renderer: renderer,
		logger:   common.GetLogger(),
	}
}

// ReportHandler renders the project's synthesis report as a document
func (h *ReportHandler) ReportHandler(w http.ResponseWriter, r *http.Request, projectID string) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	result, err := h.projects.Synthesize(r.Context(), projectID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	switch r.URL.Query().Get("format") {
	case "html":
		rendered, err := h.renderer.HTML(result)
		if err != nil {
			WriteError(w, http.StatusInternalServerError, err.Error())
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(rendered))
	case "", "markdown":
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		w.Write([]byte(h.renderer.Markdown(result)))
	default:
		WriteError(w, http.StatusBadRequest, "Unsupported format, use markdown or html")
	}
}
