package entities

import (
	"time"

	"github.com/google/uuid"
)

// TranscriptHistory records one processed transcript: the raw text that was
// fetched, the formatted result, and which prompt produced it.
type TranscriptHistory struct {
	ID                  uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	VideoID             string    `json:"video_id" gorm:"type:text;not null"`
	VideoTitle          string    `json:"video_title" gorm:"type:text;not null"`
	OriginalTranscript  string    `json:"original_transcript" gorm:"type:text;not null"`
	FormattedTranscript string    `json:"formatted_transcript" gorm:"type:text;not null"`
	FormatTemplateID    *uint     `json:"format_template_id,omitempty"`
	CustomPrompt        *string   `json:"custom_prompt,omitempty" gorm:"type:text"`
	CreatedAt           time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for GORM
func (TranscriptHistory) TableName() string {
	return "transcript_history"
}

// NewTranscriptHistory creates a new history record
func NewTranscriptHistory(videoID, videoTitle, original, formatted string) *TranscriptHistory {
	return &TranscriptHistory{
		ID:                  uuid.New(),
		VideoID:             videoID,
		VideoTitle:          videoTitle,
		OriginalTranscript:  original,
		FormattedTranscript: formatted,
		CreatedAt:           time.Now(),
	}
}
