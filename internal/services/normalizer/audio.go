package normalizer

import (
	"strings"
	"unicode/utf8"

	"github.com/prismbrain/prism/internal/models"
	pkgmodels "github.com/prismbrain/prism/pkg/models"
)

// minSentenceLength - trimmed sentences shorter than this are discarded
const minSentenceLength = 10

// Audio converts a transcription into audio-segment units. Pre-segmented
// sentences are used verbatim when supplied; otherwise the transcript is
// split on sentence boundaries. Short fragments carry no classifiable
// signal and are dropped before they reach the classifier.
func (s *Service) Audio(upload *pkgmodels.AudioUpload) []*models.ContentUnit {
	segments := upload.Segments
	if len(segments) == 0 {
		segments = SplitTranscript(upload.Transcript)
	}

	contributor := upload.Speaker
	if contributor == "" {
		contributor = "Speaker"
	}

	units := []*models.ContentUnit{}
	for i, segment := range segments {
		text := strings.TrimSpace(segment)
		if utf8.RuneCountInString(text) < minSentenceLength {
			continue
		}

		origin := map[string]interface{}{
			"segment_index": i,
		}
		units = append(units, s.newUnit(text, models.SourceKindAudioSegment, upload.FileName, contributor, origin))
	}
	return units
}

// SplitTranscript splits a transcript into sentences on '.', '!' and '?'
func SplitTranscript(transcript string) []string {
	return strings.FieldsFunc(transcript, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
}
