package project

import (
	"sort"

	"github.com/prismbrain/prism/internal/models"
)

// maxActionItems caps the action item list in a report
const maxActionItems = 10

// buildReport derives the synthesis report from a project snapshot. The
// caller holds at least a read lock. Every category, bucket and sentiment
// key is present in the count maps even at zero, so consumers never need
// existence checks.
func (s *Service) buildReport(project *models.Project) *models.SynthesisReport {
	report := &models.SynthesisReport{
		ProjectID:   project.ID,
		ProjectName: project.Name,
		LastUpdated: project.UpdatedAt,

		TotalUnits:        len(project.Units),
		TotalSources:      len(project.Sources),
		TotalContributors: len(project.Contributor),
		TotalConnections:  len(project.Connections),

		ByCategory:            make(map[models.Category]int, len(models.Categories)),
		ByPriority:            make(map[models.PriorityBucket]int, len(models.PriorityBuckets)),
		ByContributor:         make(map[string]*models.ContributorBreakdown),
		SentimentDistribution: make(map[models.Sentiment]int, len(models.Sentiments)),
	}

	for _, c := range models.Categories {
		report.ByCategory[c] = 0
	}
	for _, b := range models.PriorityBuckets {
		report.ByPriority[b] = 0
	}
	for _, sentiment := range models.Sentiments {
		report.SentimentDistribution[sentiment] = 0
	}

	var confidenceSum float64
	var actionItems []models.ActionItem

	for _, unit := range project.Units {
		c := unit.Classification
		if c == nil {
			continue
		}

		report.ByCategory[c.Category]++
		report.ByPriority[models.BucketFor(c.Priority)]++
		report.SentimentDistribution[c.Sentiment]++
		confidenceSum += c.Confidence

		breakdown, ok := report.ByContributor[unit.Contributor]
		if !ok {
			breakdown = &models.ContributorBreakdown{
				ByCategory: make(map[models.Category]int),
			}
			report.ByContributor[unit.Contributor] = breakdown
		}
		breakdown.Total++
		breakdown.ByCategory[c.Category]++

		if c.Category == models.CategoryActionItem {
			actionItems = append(actionItems, models.ActionItem{
				UnitID:      unit.ID,
				Text:        unit.Text,
				Contributor: unit.Contributor,
				SourceName:  unit.SourceName,
				Priority:    c.Priority,
			})
		}
	}

	if len(project.Units) > 0 {
		report.AverageConfidence = confidenceSum / float64(len(project.Units))
	}

	// Highest priority first; equal priorities keep ingestion order.
	sort.SliceStable(actionItems, func(i, j int) bool {
		return actionItems[i].Priority > actionItems[j].Priority
	})
	if len(actionItems) > maxActionItems {
		actionItems = actionItems[:maxActionItems]
	}
	report.ActionItems = actionItems

	report.Themes = s.themes.Extract(project.Units)

	timeline := make([]models.TimelineEntry, 0, len(project.Sources))
	for _, src := range project.Sources {
		timeline = append(timeline, models.TimelineEntry{
			Kind:        src.Kind,
			DisplayName: src.DisplayName,
			AddedAt:     src.AddedAt,
			UnitCount:   src.UnitCount,
		})
	}
	sort.SliceStable(timeline, func(i, j int) bool {
		return timeline[i].AddedAt.Before(timeline[j].AddedAt)
	})
	report.Timeline = timeline

	return report
}
