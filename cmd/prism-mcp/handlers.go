package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/ternarybob/arbor"

	"github.com/prismbrain/prism/internal/interfaces"
	"github.com/prismbrain/prism/internal/models"
	"github.com/prismbrain/prism/internal/services/normalizer"
	"github.com/prismbrain/prism/internal/services/report"
	pkgmodels "github.com/prismbrain/prism/pkg/models"
)

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(text),
		},
	}
}

// handleCreateProject implements the create_project tool
func handleCreateProject(projects interfaces.ProjectService, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := request.RequireString("name")
		if err != nil || strings.TrimSpace(name) == "" {
			return textResult("Error: name parameter is required"), nil
		}

		id, err := projects.CreateProject(ctx, name)
		if err != nil {
			logger.Error().Err(err).Msg("Create project failed")
			return textResult(fmt.Sprintf("Error: %v", err)), nil
		}

		return textResult(fmt.Sprintf("Project %q created with id %s", name, id)), nil
	}
}

// handleListProjects implements the list_projects tool
func handleListProjects(projects interfaces.ProjectService, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		list, err := projects.ListProjects(ctx)
		if err != nil {
			logger.Error().Err(err).Msg("List projects failed")
			return textResult(fmt.Sprintf("Error: %v", err)), nil
		}

		return textResult(formatProjectList(list)), nil
	}
}

// handleSynthesizeProject implements the synthesize_project tool
func handleSynthesizeProject(projects interfaces.ProjectService, renderer *report.Service, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		projectID, err := request.RequireString("project_id")
		if err != nil || projectID == "" {
			return textResult("Error: project_id parameter is required"), nil
		}

		result, err := projects.Synthesize(ctx, projectID)
		if err != nil {
			logger.Error().Err(err).Str("project_id", projectID).Msg("Synthesis failed")
			return textResult(fmt.Sprintf("Error: %v", err)), nil
		}

		return textResult(renderer.Markdown(result)), nil
	}
}

// handleIngestNotes implements the ingest_notes tool
func handleIngestNotes(projects interfaces.ProjectService, norm *normalizer.Service, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		projectID, err := request.RequireString("project_id")
		if err != nil || projectID == "" {
			return textResult("Error: project_id parameter is required"), nil
		}

		notes := request.GetStringSlice("notes", nil)
		if len(notes) == 0 {
			return textResult("Error: notes parameter is required"), nil
		}

		sourceName := request.GetString("source_name", "notes")
		contributor := request.GetString("contributor", "")

		upload := pkgmodels.BoardUpload{BoardName: sourceName}
		for i, note := range notes {
			if strings.TrimSpace(note) == "" {
				continue
			}
			upload.Records = append(upload.Records, pkgmodels.BoardRecord{
				NodeID:      fmt.Sprintf("note-%d", i),
				Kind:        pkgmodels.BoardNodeText,
				Text:        note,
				Contributor: contributor,
			})
		}

		units, connections := norm.Board(&upload)
		return ingestBatch(ctx, projects, logger, projectID, interfaces.IngestBatch{
			SourceType:  models.SourceTypeFigJam,
			DisplayName: sourceName,
			Units:       units,
			Connections: connections,
		})
	}
}

// handleIngestTranscript implements the ingest_transcript tool
func handleIngestTranscript(projects interfaces.ProjectService, norm *normalizer.Service, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		projectID, err := request.RequireString("project_id")
		if err != nil || projectID == "" {
			return textResult("Error: project_id parameter is required"), nil
		}
		fileName, err := request.RequireString("file_name")
		if err != nil || fileName == "" {
			return textResult("Error: file_name parameter is required"), nil
		}
		transcript, err := request.RequireString("transcript")
		if err != nil || transcript == "" {
			return textResult("Error: transcript parameter is required"), nil
		}

		units := norm.Audio(&pkgmodels.AudioUpload{
			FileName:   fileName,
			Transcript: transcript,
			Speaker:    request.GetString("speaker", ""),
		})
		return ingestBatch(ctx, projects, logger, projectID, interfaces.IngestBatch{
			SourceType:  models.SourceTypeAudio,
			DisplayName: fileName,
			Units:       units,
		})
	}
}

// handleIngestDocument implements the ingest_document tool
func handleIngestDocument(projects interfaces.ProjectService, norm *normalizer.Service, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		projectID, err := request.RequireString("project_id")
		if err != nil || projectID == "" {
			return textResult("Error: project_id parameter is required"), nil
		}
		fileName, err := request.RequireString("file_name")
		if err != nil || fileName == "" {
			return textResult("Error: file_name parameter is required"), nil
		}
		text, err := request.RequireString("text")
		if err != nil || text == "" {
			return textResult("Error: text parameter is required"), nil
		}

		units := norm.Document(&pkgmodels.DocumentUpload{
			FileName: fileName,
			Text:     text,
			Author:   request.GetString("author", ""),
		})
		return ingestBatch(ctx, projects, logger, projectID, interfaces.IngestBatch{
			SourceType:  models.SourceTypeDocument,
			DisplayName: fileName,
			Units:       units,
		})
	}
}

func ingestBatch(ctx context.Context, projects interfaces.ProjectService, logger arbor.ILogger, projectID string, batch interfaces.IngestBatch) (*mcp.CallToolResult, error) {
	accepted, err := projects.Ingest(ctx, projectID, batch)
	if err != nil {
		logger.Error().Err(err).Str("project_id", projectID).Msg("Ingest failed")
		return textResult(fmt.Sprintf("Error: %v", err)), nil
	}

	return textResult(fmt.Sprintf("Ingested %d units from %q into project %s", accepted, batch.DisplayName, projectID)), nil
}
