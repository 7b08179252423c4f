// Package models defines the wire contracts external collaborators use to
// hand content to the synthesis engine. The collaborators own all network
// and file I/O (board API fetching, audio transcription, document text
// extraction); the engine only ever sees these plain records.
package models

// Board record kinds as reported by the board collaborator
const (
	BoardNodeSticky    = "sticky"
	BoardNodeText      = "text"
	BoardNodeConnector = "connector"
)

// BoardRecord is one node exported from a whiteboard. The collaborator maps
// the board API's RGB fills to a color name before handing the record over;
// color is carried as metadata only and never drives classification.
type BoardRecord struct {
	NodeID      string             `json:"node_id"`
	Kind        string             `json:"kind" validate:"required,oneof=sticky text connector"`
	Text        string             `json:"text"`
	Color       string             `json:"color,omitempty"`
	Contributor string             `json:"contributor,omitempty"`
	From        string             `json:"from,omitempty"` // connector endpoint
	To          string             `json:"to,omitempty"`   // connector endpoint
	Position    map[string]float64 `json:"position,omitempty"`
}

// BoardUpload is a full board export from the board collaborator
type BoardUpload struct {
	BoardName string        `json:"board_name" validate:"required"`
	Records   []BoardRecord `json:"records" validate:"required,min=1,dive"`
}

// AudioUpload is a transcription result from the audio collaborator.
// Either the raw transcript (split by the engine on sentence boundaries)
// or pre-segmented sentences may be supplied.
type AudioUpload struct {
	FileName   string   `json:"file_name" validate:"required"`
	Transcript string   `json:"transcript,omitempty"`
	Segments   []string `json:"segments,omitempty"`
	Speaker    string   `json:"speaker,omitempty"`
}

// DocumentUpload is extracted document text from the document collaborator.
// Paragraph splitting and truncation happen in the engine's normalizer.
type DocumentUpload struct {
	FileName string `json:"file_name" validate:"required"`
	Text     string `json:"text" validate:"required"`
	Author   string `json:"author,omitempty"`
	Page     int    `json:"page,omitempty"`
}
