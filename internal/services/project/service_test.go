package project

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"

	"github.com/prismbrain/prism/internal/common"
	"github.com/prismbrain/prism/internal/interfaces"
	"github.com/prismbrain/prism/internal/models"
	"github.com/prismbrain/prism/internal/services/classifier"
	"github.com/prismbrain/prism/internal/services/themes"
	"github.com/prismbrain/prism/internal/storage/badger"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	logger := arbor.NewLogger()

	manager, err := badger.NewManager(logger, &common.BadgerConfig{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { manager.Close() })

	service, err := NewService(
		manager.ProjectStorage(),
		classifier.NewService(logger),
		themes.NewService(logger),
		nil, // no event service in unit tests
		4,
		logger,
	)
	require.NoError(t, err)
	return service
}

func boardBatch(name string, texts ...string) interfaces.IngestBatch {
	units := make([]*models.ContentUnit, 0, len(texts))
	for _, text := range texts {
		units = append(units, &models.ContentUnit{
			Text:       text,
			SourceKind: models.SourceKindBoardSticky,
			SourceName: name,
		})
	}
	return interfaces.IngestBatch{
		SourceType:  models.SourceTypeFigJam,
		DisplayName: name,
		Units:       units,
	}
}

func TestCreateProject_DeterministicID(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	id, err := service.CreateProject(ctx, "mobile-redesign")
	require.NoError(t, err)

	assert.Equal(t, common.ProjectID("mobile-redesign"), id)
	assert.Len(t, id, 8)

	project, err := service.GetProject(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "mobile-redesign", project.Name)
	assert.Empty(t, project.Units)
}

func TestCreateProject_EmptyNameRejected(t *testing.T) {
	service := newTestService(t)

	_, err := service.CreateProject(context.Background(), "   ")
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}

func TestCreateProject_SameNameResets(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	id, err := service.CreateProject(ctx, "alpha")
	require.NoError(t, err)

	_, err = service.Ingest(ctx, id, boardBatch("b1", "The export is broken"))
	require.NoError(t, err)

	id2, err := service.CreateProject(ctx, "alpha")
	require.NoError(t, err)
	assert.Equal(t, id, id2)

	project, err := service.GetProject(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, project.Units)
	assert.Empty(t, project.Sources)
}

func TestCreateProject_CollisionRejected(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	// Seed the id "beta" would hash to with a project of a different name.
	id := common.ProjectID("beta")
	service.registry[id] = &projectState{
		project: models.NewProject(id, "something-else", service.now()),
	}

	_, err := service.CreateProject(ctx, "beta")
	assert.ErrorIs(t, err, models.ErrProjectCollision)

	// The existing project is untouched
	project, err := service.GetProject(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "something-else", project.Name)
}

func TestIngest_UnknownProject(t *testing.T) {
	service := newTestService(t)

	_, err := service.Ingest(context.Background(), "deadbeef", boardBatch("b1", "text"))
	assert.ErrorIs(t, err, models.ErrProjectNotFound)
}

func TestIngest_ClassifiesAndAppends(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	id, err := service.CreateProject(ctx, "alpha")
	require.NoError(t, err)

	accepted, err := service.Ingest(ctx, id, boardBatch("board-1",
		"This is URGENT, the login is broken and must be fixed ASAP",
		"How do users discover the search feature?",
	))
	require.NoError(t, err)
	assert.Equal(t, 2, accepted)

	project, err := service.GetProject(ctx, id)
	require.NoError(t, err)
	require.Len(t, project.Units, 2)
	require.Len(t, project.Sources, 1)

	urgent := project.Units[0]
	require.NotNil(t, urgent.Classification)
	assert.Equal(t, models.CategoryPainPoint, urgent.Classification.Category)
	assert.InDelta(t, 1.0, urgent.Classification.Priority, 1e-9)
	assert.Equal(t, models.SentimentNegative, urgent.Classification.Sentiment)
	assert.True(t, len(urgent.ID) > len("unit_"))
	assert.Equal(t, "Unknown", urgent.Contributor)

	question := project.Units[1]
	require.NotNil(t, question.Classification)
	assert.Equal(t, models.CategoryQuestion, question.Classification.Category)

	source := project.Sources[0]
	assert.Equal(t, models.SourceTypeFigJam, source.Kind)
	assert.Equal(t, "board-1", source.DisplayName)
	assert.Equal(t, 2, source.UnitCount)
}

func TestIngest_AccumulatesAcrossBatches(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	id, err := service.CreateProject(ctx, "alpha")
	require.NoError(t, err)

	_, err = service.Ingest(ctx, id, boardBatch("b1", "first sticky"))
	require.NoError(t, err)
	_, err = service.Ingest(ctx, id, boardBatch("b2", "second sticky", "third sticky"))
	require.NoError(t, err)

	project, err := service.GetProject(ctx, id)
	require.NoError(t, err)
	assert.Len(t, project.Units, 3)
	assert.Len(t, project.Sources, 2)
	assert.False(t, project.UpdatedAt.Before(project.CreatedAt))
}

func TestIngest_ContributorSetUnion(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	id, err := service.CreateProject(ctx, "alpha")
	require.NoError(t, err)

	batch := boardBatch("b1", "one", "two")
	batch.Units[0].Contributor = "Maya"
	batch.Units[1].Contributor = "Devon"
	_, err = service.Ingest(ctx, id, batch)
	require.NoError(t, err)

	batch2 := boardBatch("b2", "three")
	batch2.Units[0].Contributor = "Maya"
	_, err = service.Ingest(ctx, id, batch2)
	require.NoError(t, err)

	project, err := service.GetProject(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []string{"Devon", "Maya"}, project.ContributorNames())
}

func TestSynthesize_UnknownProject(t *testing.T) {
	service := newTestService(t)

	_, err := service.Synthesize(context.Background(), "deadbeef")
	assert.ErrorIs(t, err, models.ErrProjectNotFound)
}

func TestSynthesize_EmptyProject(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	id, err := service.CreateProject(ctx, "alpha")
	require.NoError(t, err)

	report, err := service.Synthesize(ctx, id)
	require.NoError(t, err)

	assert.Zero(t, report.TotalUnits)
	assert.Zero(t, report.AverageConfidence)
	assert.Empty(t, report.Themes)
	assert.Empty(t, report.ActionItems)
	assert.Empty(t, report.Timeline)

	// Every bucket key is present even at zero
	assert.Len(t, report.ByCategory, len(models.Categories))
	assert.Len(t, report.ByPriority, len(models.PriorityBuckets))
	assert.Len(t, report.SentimentDistribution, len(models.Sentiments))
}

func TestSynthesize_Aggregates(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	id, err := service.CreateProject(ctx, "alpha")
	require.NoError(t, err)

	batch := boardBatch("board-1",
		"This is URGENT, the login is broken and must be fixed ASAP", // pain_point, high
		"How do users discover the search feature?",                  // question, low
		"TODO: schedule user tests ASAP",                             // action_item, 0.7 = medium
	)
	batch.Units[0].Contributor = "Maya"
	batch.Units[1].Contributor = "Maya"
	batch.Units[2].Contributor = "Devon"
	_, err = service.Ingest(ctx, id, batch)
	require.NoError(t, err)

	report, err := service.Synthesize(ctx, id)
	require.NoError(t, err)

	assert.Equal(t, 3, report.TotalUnits)
	assert.Equal(t, 1, report.TotalSources)
	assert.Equal(t, 2, report.TotalContributors)

	assert.Equal(t, 1, report.ByCategory[models.CategoryPainPoint])
	assert.Equal(t, 1, report.ByCategory[models.CategoryQuestion])
	assert.Equal(t, 1, report.ByCategory[models.CategoryActionItem])
	assert.Equal(t, 0, report.ByCategory[models.CategoryGeneral])

	// Bucket partition: every unit lands in exactly one bucket
	total := 0
	for _, count := range report.ByPriority {
		total += count
	}
	assert.Equal(t, report.TotalUnits, total)
	assert.Equal(t, 1, report.ByPriority[models.PriorityHigh])
	assert.Equal(t, 1, report.ByPriority[models.PriorityMedium]) // 0.7 boundary is medium
	assert.Equal(t, 1, report.ByPriority[models.PriorityLow])

	assert.InDelta(t, models.RuleConfidence, report.AverageConfidence, 1e-9)

	maya := report.ByContributor["Maya"]
	require.NotNil(t, maya)
	assert.Equal(t, 2, maya.Total)
	assert.Equal(t, 1, maya.ByCategory[models.CategoryPainPoint])

	require.Len(t, report.ActionItems, 1)
	assert.Equal(t, "TODO: schedule user tests ASAP", report.ActionItems[0].Text)
	assert.Equal(t, "Devon", report.ActionItems[0].Contributor)

	require.Len(t, report.Timeline, 1)
	assert.Equal(t, "board-1", report.Timeline[0].DisplayName)
}

func TestSynthesize_Idempotent(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	id, err := service.CreateProject(ctx, "alpha")
	require.NoError(t, err)

	_, err = service.Ingest(ctx, id, boardBatch("b1",
		"TODO: fix the broken navigation menu",
		"users love the dashboard layout",
	))
	require.NoError(t, err)

	first, err := service.Synthesize(ctx, id)
	require.NoError(t, err)
	second, err := service.Synthesize(ctx, id)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, first.LastUpdated, second.LastUpdated)
}

func TestWarmLoadFromStorage(t *testing.T) {
	logger := arbor.NewLogger()

	manager, err := badger.NewManager(logger, &common.BadgerConfig{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { manager.Close() })

	newService := func() *Service {
		s, err := NewService(
			manager.ProjectStorage(),
			classifier.NewService(logger),
			themes.NewService(logger),
			nil,
			4,
			logger,
		)
		require.NoError(t, err)
		return s
	}

	ctx := context.Background()
	first := newService()
	id, err := first.CreateProject(ctx, "alpha")
	require.NoError(t, err)
	_, err = first.Ingest(ctx, id, boardBatch("b1", "persisted sticky"))
	require.NoError(t, err)

	// A fresh service over the same store sees the project
	second := newService()
	project, err := second.GetProject(ctx, id)
	require.NoError(t, err)
	assert.Len(t, project.Units, 1)
}
