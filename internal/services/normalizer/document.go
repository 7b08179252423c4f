package normalizer

import (
	"strings"
	"unicode/utf8"

	"github.com/prismbrain/prism/internal/models"
	pkgmodels "github.com/prismbrain/prism/pkg/models"
)

const (
	// minParagraphLength - shorter paragraphs are discarded
	minParagraphLength = 20
	// maxParagraphLength - retained paragraph text is truncated to this
	maxParagraphLength = 500
)

// Document converts extracted document text into paragraph units.
// Paragraphs are split on blank-line boundaries; fragments shorter than
// 20 characters are dropped and the rest truncated to 500 characters.
func (s *Service) Document(upload *pkgmodels.DocumentUpload) []*models.ContentUnit {
	units := []*models.ContentUnit{}

	for i, paragraph := range SplitParagraphs(upload.Text) {
		text := strings.TrimSpace(paragraph)
		if utf8.RuneCountInString(text) < minParagraphLength {
			continue
		}
		if runes := []rune(text); len(runes) > maxParagraphLength {
			text = string(runes[:maxParagraphLength])
		}

		origin := map[string]interface{}{
			"paragraph_index": i,
		}
		if upload.Page > 0 {
			origin["page"] = upload.Page
		}

		contributor := upload.Author
		if contributor == "" {
			contributor = "Author"
		}

		units = append(units, s.newUnit(text, models.SourceKindDocumentParagraph, upload.FileName, contributor, origin))
	}
	return units
}

// SplitParagraphs splits document text on blank-line boundaries.
// Windows line endings are normalized first.
func SplitParagraphs(text string) []string {
	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	return strings.Split(normalized, "\n\n")
}
