package history

import "github.com/tubenotes/tubenotes/internal/domain/entities"

// SaveRequest is the body of POST /api/history.
type SaveRequest struct {
	VideoID             string  `json:"videoId" validate:"required"`
	VideoTitle          string  `json:"videoTitle" validate:"required"`
	OriginalTranscript  string  `json:"originalTranscript" validate:"required"`
	FormattedTranscript string  `json:"formattedTranscript" validate:"required"`
	TemplateID          *uint   `json:"templateId,omitempty"`
	CustomPrompt        *string `json:"customPrompt,omitempty"`
}

// ToEntity converts the request to a history entity with a fresh id.
func (r *SaveRequest) ToEntity() *entities.TranscriptHistory {
	entry := entities.NewTranscriptHistory(r.VideoID, r.VideoTitle, r.OriginalTranscript, r.FormattedTranscript)
	entry.FormatTemplateID = r.TemplateID
	entry.CustomPrompt = r.CustomPrompt
	return entry
}
