package main

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// createCreateProjectTool returns the create_project tool definition
func createCreateProjectTool() mcp.Tool {
	return mcp.NewTool("create_project",
		mcp.WithDescription("Create a research project (or reset an existing one with the same name)"),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Project name; the project id is derived from it deterministically"),
		),
	)
}

// createListProjectsTool returns the list_projects tool definition
func createListProjectsTool() mcp.Tool {
	return mcp.NewTool("list_projects",
		mcp.WithDescription("List all research projects with unit and source counts"),
	)
}

// createSynthesizeProjectTool returns the synthesize_project tool definition
func createSynthesizeProjectTool() mcp.Tool {
	return mcp.NewTool("synthesize_project",
		mcp.WithDescription("Generate the synthesis report for a project: categories, priorities, themes, action items, contributors and timeline"),
		mcp.WithString("project_id",
			mcp.Required(),
			mcp.Description("Project id (8 hex chars)"),
		),
	)
}

// createIngestNotesTool returns the ingest_notes tool definition
func createIngestNotesTool() mcp.Tool {
	return mcp.NewTool("ingest_notes",
		mcp.WithDescription("Ingest freeform notes into a project. Each note becomes one classified content unit."),
		mcp.WithString("project_id",
			mcp.Required(),
			mcp.Description("Project id (8 hex chars)"),
		),
		mcp.WithArray("notes",
			mcp.Required(),
			mcp.WithStringItems(),
			mcp.Description("Note texts, one per content unit"),
		),
		mcp.WithString("source_name",
			mcp.Description("Display name for this batch (default: notes)"),
		),
		mcp.WithString("contributor",
			mcp.Description("Contributor name attached to every note (default: Unknown)"),
		),
	)
}

// createIngestTranscriptTool returns the ingest_transcript tool definition
func createIngestTranscriptTool() mcp.Tool {
	return mcp.NewTool("ingest_transcript",
		mcp.WithDescription("Ingest an interview transcript. The transcript is split into sentences; short fragments are discarded."),
		mcp.WithString("project_id",
			mcp.Required(),
			mcp.Description("Project id (8 hex chars)"),
		),
		mcp.WithString("file_name",
			mcp.Required(),
			mcp.Description("Transcript file name, used as the source display name"),
		),
		mcp.WithString("transcript",
			mcp.Required(),
			mcp.Description("Full transcript text"),
		),
		mcp.WithString("speaker",
			mcp.Description("Speaker name (default: Speaker)"),
		),
	)
}

// createIngestDocumentTool returns the ingest_document tool definition
func createIngestDocumentTool() mcp.Tool {
	return mcp.NewTool("ingest_document",
		mcp.WithDescription("Ingest extracted document text. Text is split on blank lines into paragraphs; short paragraphs are discarded and long ones truncated."),
		mcp.WithString("project_id",
			mcp.Required(),
			mcp.Description("Project id (8 hex chars)"),
		),
		mcp.WithString("file_name",
			mcp.Required(),
			mcp.Description("Document file name, used as the source display name"),
		),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Extracted document text"),
		),
		mcp.WithString("author",
			mcp.Description("Document author (default: Author)"),
		),
	)
}
