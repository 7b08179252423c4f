// prism-dataset generates synthetic whiteboard exports for development and
// load testing. Boards are built from persona/template pairs with seeded
// randomization so a given seed always produces the same dataset.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sort"

	"github.com/ternarybob/arbor"
	arbor_models "github.com/ternarybob/arbor/models"

	pkgmodels "github.com/prismbrain/prism/pkg/models"
)

var (
	outDir   = flag.String("out", "testdata/boards", "Output directory for generated board JSON files")
	numBoard = flag.Int("boards", 3, "Number of boards to generate")
	stickies = flag.Int("stickies", 24, "Stickies per board")
	seed     = flag.Int64("seed", 42, "Random seed (same seed, same dataset)")
)

func main() {
	flag.Parse()

	logger := arbor.NewLogger().WithConsoleWriter(arbor_models.WriterConfiguration{
		Type:       arbor_models.LogWriterTypeConsole,
		TimeFormat: "15:04:05",
	}).WithLevelFromString("info")

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		logger.Fatal().Err(err).Str("dir", *outDir).Msg("Failed to create output directory")
	}

	rng := rand.New(rand.NewSource(*seed))
	gen := newGenerator(rng)

	manifest := datasetManifest{
		Seed:             *seed,
		ExpectedCategory: colorExpectations,
	}

	for i := 0; i < *numBoard; i++ {
		board := gen.board(i, *stickies)
		path := filepath.Join(*outDir, fmt.Sprintf("%s.json", board.BoardName))

		if err := writeJSON(path, board); err != nil {
			logger.Fatal().Err(err).Str("path", path).Msg("Failed to write board")
		}

		manifest.Boards = append(manifest.Boards, boardSummary{
			Name:    board.BoardName,
			File:    filepath.Base(path),
			Records: len(board.Records),
		})

		logger.Info().
			Str("board", board.BoardName).
			Int("records", len(board.Records)).
			Str("path", path).
			Msg("Board generated")
	}

	manifestPath := filepath.Join(*outDir, "manifest.json")
	if err := writeJSON(manifestPath, manifest); err != nil {
		logger.Fatal().Err(err).Msg("Failed to write manifest")
	}

	logger.Info().
		Int("boards", *numBoard).
		Int64("seed", *seed).
		Str("manifest", manifestPath).
		Msg("Dataset complete")
}

// datasetManifest records what was generated and the color-to-category
// expectations analytics tooling uses to score classifier output. The
// mapping lives here, not in the classifier: color never drives
// classification, it only encodes what a facilitator meant when they
// picked a sticky color.
type datasetManifest struct {
	Seed             int64             `json:"seed"`
	Boards           []boardSummary    `json:"boards"`
	ExpectedCategory map[string]string `json:"expected_category_by_color"`
}

type boardSummary struct {
	Name    string `json:"name"`
	File    string `json:"file"`
	Records int    `json:"records"`
}

var colorExpectations = map[string]string{
	"RED":    "pain_point",
	"ORANGE": "action_item",
	"YELLOW": "idea",
	"GREEN":  "insight",
	"BLUE":   "question",
	"PURPLE": "quote",
	"PINK":   "idea",
	"GRAY":   "general",
}

func writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// generator builds boards from persona/template pairs
type generator struct {
	rng *rand.Rand
}

func newGenerator(rng *rand.Rand) *generator {
	return &generator{rng: rng}
}

type persona struct {
	name string
	// phrase templates per sticky color, matching colorExpectations
	templates map[string][]string
}

var personas = []persona{
	{
		name: "Maya",
		templates: map[string][]string{
			"RED":    {"The %s flow is broken on checkout", "Really frustrated with the %s error messages", "Filtering by %s is a constant problem"},
			"BLUE":   {"How do users discover %s?", "Why does %s take three clicks?", "What should the %s default be?"},
			"GREEN":  {"Noticed most users skip %s entirely", "Users love the new %s layout", "Finding: %s works well for returning visitors"},
			"ORANGE": {"TODO: rework the %s screen", "Action: must validate %s with support team", "Need to schedule %s usability sessions"},
		},
	},
	{
		name: "Devon",
		templates: map[string][]string{
			"RED":    {"Search on %s is so confusing", "The %s page keeps throwing an error", "%s settings are difficult to find"},
			"YELLOW": {"What if we merged %s and favorites?", "Idea: auto-save %s drafts", "Consider a %s quick action"},
			"PURPLE": {"\"I just want %s to work on my phone\"", "\"The %s thing said my session expired\"", "One user said %s felt instant"},
			"GRAY":   {"Team reviewed %s last sprint", "%s stays unchanged this quarter", "Metrics for %s pending"},
		},
	},
	{
		name: "Priya",
		templates: map[string][]string{
			"RED":    {"Urgent: %s login is broken and must be fixed ASAP", "Critical %s outage reported again", "%s upload is failing for large files"},
			"GREEN":  {"Discovered that %s doubles conversion", "Observed new users pause at %s", "%s works well with keyboard navigation"},
			"ORANGE": {"Must complete the %s audit", "TODO: fix %s contrast for accessibility", "Action: resolve %s mobile overflow"},
			"BLUE":   {"Should %s be on the onboarding path?", "How does %s perform on slow networks?", "Why is %s hidden behind the menu?"},
		},
	},
}

var topics = []string{
	"navigation", "search", "onboarding", "profile", "checkout",
	"notifications", "dashboard", "settings", "export", "mobile menu",
}

// board builds one synthetic board upload. Roughly one connector is added
// per six stickies, linking random earlier nodes.
func (g *generator) board(index, stickyCount int) pkgmodels.BoardUpload {
	upload := pkgmodels.BoardUpload{
		BoardName: fmt.Sprintf("research-board-%02d", index+1),
	}

	for i := 0; i < stickyCount; i++ {
		p := personas[g.rng.Intn(len(personas))]

		colors := make([]string, 0, len(p.templates))
		for color := range p.templates {
			colors = append(colors, color)
		}
		// map iteration order is random; sort for seed-stable selection
		sort.Strings(colors)
		color := colors[g.rng.Intn(len(colors))]

		phrases := p.templates[color]
		text := fmt.Sprintf(phrases[g.rng.Intn(len(phrases))], topics[g.rng.Intn(len(topics))])

		upload.Records = append(upload.Records, pkgmodels.BoardRecord{
			NodeID:      fmt.Sprintf("node-%02d-%03d", index+1, i),
			Kind:        pkgmodels.BoardNodeSticky,
			Text:        text,
			Color:       color,
			Contributor: p.name,
			Position: map[string]float64{
				"x": float64(g.rng.Intn(2000)),
				"y": float64(g.rng.Intn(1200)),
			},
		})
	}

	for i := 0; i < stickyCount/6; i++ {
		from := upload.Records[g.rng.Intn(stickyCount)].NodeID
		to := upload.Records[g.rng.Intn(stickyCount)].NodeID
		if from == to {
			continue
		}
		upload.Records = append(upload.Records, pkgmodels.BoardRecord{
			NodeID: fmt.Sprintf("conn-%02d-%03d", index+1, i),
			Kind:   pkgmodels.BoardNodeConnector,
			From:   from,
			To:     to,
		})
	}

	return upload
}
