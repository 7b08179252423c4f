// Package report renders synthesis reports as markdown and HTML documents
// for human consumption. The JSON report stays the machine interface; this
// rendering is presentation only and derives everything from the report.
package report

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/ternarybob/arbor"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/prismbrain/prism/internal/models"
)

// Service renders synthesis reports
type Service struct {
	md     goldmark.Markdown
	logger arbor.ILogger
}

// NewService creates a report renderer
func NewService(logger arbor.ILogger) *Service {
	return &Service{
		md: goldmark.New(
			goldmark.WithExtensions(extension.Table, extension.Strikethrough),
			goldmark.WithRendererOptions(html.WithHardWraps()),
		),
		logger: logger,
	}
}

// Markdown renders the report as a markdown document
func (s *Service) Markdown(report *models.SynthesisReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Synthesis Report: %s\n\n", report.ProjectName)
	fmt.Fprintf(&b, "Last updated: %s\n\n", report.LastUpdated.Format("2006-01-02 15:04:05 UTC"))

	b.WriteString("## Overview\n\n")
	fmt.Fprintf(&b, "| Metric | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Content units | %d |\n", report.TotalUnits)
	fmt.Fprintf(&b, "| Sources | %d |\n", report.TotalSources)
	fmt.Fprintf(&b, "| Contributors | %d |\n", report.TotalContributors)
	fmt.Fprintf(&b, "| Connections | %d |\n", report.TotalConnections)
	fmt.Fprintf(&b, "| Average confidence | %.2f |\n\n", report.AverageConfidence)

	b.WriteString("## Categories\n\n")
	for _, c := range models.Categories {
		fmt.Fprintf(&b, "- **%s**: %d\n", c, report.ByCategory[c])
	}
	b.WriteString("\n")

	b.WriteString("## Priority\n\n")
	for _, bucket := range models.PriorityBuckets {
		fmt.Fprintf(&b, "- **%s**: %d\n", bucket, report.ByPriority[bucket])
	}
	b.WriteString("\n")

	b.WriteString("## Sentiment\n\n")
	for _, sentiment := range models.Sentiments {
		fmt.Fprintf(&b, "- **%s**: %d\n", sentiment, report.SentimentDistribution[sentiment])
	}
	b.WriteString("\n")

	if len(report.Themes) > 0 {
		b.WriteString("## Top Themes\n\n")
		for _, theme := range report.Themes {
			fmt.Fprintf(&b, "- %s (%d)\n", theme.Theme, theme.Frequency)
		}
		b.WriteString("\n")
	}

	if len(report.ActionItems) > 0 {
		b.WriteString("## Action Items\n\n")
		fmt.Fprintf(&b, "| Priority | Item | Contributor | Source |\n|---|---|---|---|\n")
		for _, item := range report.ActionItems {
			fmt.Fprintf(&b, "| %.2f | %s | %s | %s |\n",
				item.Priority, escapeCell(item.Text), escapeCell(item.Contributor), escapeCell(item.SourceName))
		}
		b.WriteString("\n")
	}

	if len(report.ByContributor) > 0 {
		b.WriteString("## Contributors\n\n")
		names := make([]string, 0, len(report.ByContributor))
		for name := range report.ByContributor {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			breakdown := report.ByContributor[name]
			fmt.Fprintf(&b, "- **%s**: %d units\n", name, breakdown.Total)
		}
		b.WriteString("\n")
	}

	if len(report.Timeline) > 0 {
		b.WriteString("## Timeline\n\n")
		for _, entry := range report.Timeline {
			fmt.Fprintf(&b, "- %s: %s %q (%d units)\n",
				entry.AddedAt.Format("2006-01-02 15:04"), entry.Kind, entry.DisplayName, entry.UnitCount)
		}
		b.WriteString("\n")
	}

	return b.String()
}

// HTML renders the report as an HTML fragment via goldmark
func (s *Service) HTML(report *models.SynthesisReport) (string, error) {
	markdown := s.Markdown(report)

	var buf bytes.Buffer
	if err := s.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("failed to render report HTML: %w", err)
	}
	return buf.String(), nil
}

// escapeCell keeps markdown table rows intact when cell text contains pipes
// or newlines
func escapeCell(text string) string {
	text = strings.ReplaceAll(text, "|", "\\|")
	text = strings.ReplaceAll(text, "\n", " ")
	return text
}
