package server

import (
	"net/http"
	"strings"
)

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	// WebSocket route
	mux.HandleFunc("/ws", s.app.WSHandler.WebSocketHandler)

	// API routes - Projects
	mux.HandleFunc("/api/projects", s.handleProjectsRoute) // GET (list), POST (create)
	mux.HandleFunc("/api/projects/", s.handleProjectRoutes)

	// API routes - System
	mux.HandleFunc("/api/version", s.app.APIHandler.VersionHandler)
	mux.HandleFunc("/api/health", s.app.APIHandler.HealthHandler)

	// Catch-all for unknown API paths
	mux.HandleFunc("/api/", s.app.APIHandler.NotFoundHandler)

	return mux
}

// handleProjectsRoute routes the project collection endpoint
func (s *Server) handleProjectsRoute(w http.ResponseWriter, r *http.Request) {
	RouteByMethod(w, r, MethodRouter{
		"GET":  s.app.ProjectHandler.ListProjectsHandler,
		"POST": s.app.ProjectHandler.CreateProjectHandler,
	})
}

// handleProjectRoutes routes /api/projects/{id} and its subpaths:
//
//	GET      /api/projects/{id}
//	POST     /api/projects/{id}/ingest/figjam
//	POST     /api/projects/{id}/ingest/audio
//	POST     /api/projects/{id}/ingest/document
//	GET|POST /api/projects/{id}/synthesis
//	GET      /api/projects/{id}/report
func (s *Server) handleProjectRoutes(w http.ResponseWriter, r *http.Request) {
	projectID, rest, ok := splitProjectPath(r.URL.Path)
	if !ok {
		s.app.APIHandler.NotFoundHandler(w, r)
		return
	}

	switch rest {
	case "":
		s.app.ProjectHandler.GetProjectHandler(w, r, projectID)
	case "ingest/figjam":
		s.app.ProjectHandler.IngestBoardHandler(w, r, projectID)
	case "ingest/audio":
		s.app.ProjectHandler.IngestAudioHandler(w, r, projectID)
	case "ingest/document":
		s.app.ProjectHandler.IngestDocumentHandler(w, r, projectID)
	case "synthesis":
		s.app.ProjectHandler.SynthesizeHandler(w, r, projectID)
	case "report":
		s.app.ReportHandler.ReportHandler(w, r, projectID)
	default:
		s.app.APIHandler.NotFoundHandler(w, r)
	}
}

// splitProjectPath extracts the project id and remaining subpath from
// /api/projects/{id}[/rest...]
func splitProjectPath(path string) (projectID, rest string, ok bool) {
	trimmed := strings.TrimPrefix(path, "/api/projects/")
	if trimmed == path || trimmed == "" {
		return "", "", false
	}

	trimmed = strings.Trim(trimmed, "/")
	parts := strings.SplitN(trimmed, "/", 2)
	projectID = parts[0]
	if projectID == "" {
		return "", "", false
	}
	if len(parts) == 2 {
		rest = parts[1]
	}
	return projectID, rest, true
}
