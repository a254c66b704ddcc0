package entities

import (
	"time"
)

// FormatTemplate is a stored prompt used to instruct the generation service
// on how to reformat a transcript. Immutable once read.
type FormatTemplate struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"type:text;not null"`
	Description string    `json:"description" gorm:"type:text;not null"`
	Prompt      string    `json:"prompt" gorm:"type:text;not null"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (FormatTemplate) TableName() string {
	return "format_templates"
}

// DefaultTemplates returns the seed templates inserted the first time the
// store is found empty. Text is part of the external seed data and must be
// reproduced verbatim if the store is re-seeded.
func DefaultTemplates() []FormatTemplate {
	return []FormatTemplate{
		{
			Name:        "Summary",
			Description: "Create a concise summary of the content",
			Prompt:      "Create a clear and concise summary of the following transcript, highlighting the main themes and key takeaways. Format the output with proper paragraphs and bullet points where appropriate:",
		},
		{
			Name:        "Key Points",
			Description: "Extract main points and insights",
			Prompt:      "Extract and organize the key points and important insights from this transcript. Format the output as follows:\n\n1. Main Themes:\n[List key themes]\n\n2. Key Points:\n[Bullet points]\n\n3. Important Insights:\n[Numbered insights]",
		},
		{
			Name:        "Q&A Format",
			Description: "Convert content into Q&A format",
			Prompt:      "Convert this transcript into a structured Q&A format. Each question should be clearly formatted with 'Q:' prefix and each answer with 'A:' prefix. Group related Q&As together under relevant section headings:",
		},
		{
			Name:        "Study Notes",
			Description: "Create structured study notes",
			Prompt:      "Transform this transcript into comprehensive study notes with the following structure:\n\n1. Overview\n2. Main Concepts\n3. Detailed Notes (with subheadings)\n4. Key Terms & Definitions\n5. Summary Points",
		},
		{
			Name:        "Executive Brief",
			Description: "Create a professional executive summary",
			Prompt:      "Create a professional executive brief from this transcript with the following sections:\n\n1. Executive Summary\n2. Key Findings\n3. Recommendations\n4. Action Items\n\nKeep it concise and business-focused.",
		},
	}
}
