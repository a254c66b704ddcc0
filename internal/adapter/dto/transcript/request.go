package transcript

// ProcessRequest is the body of POST /api/process-transcript. Exactly one of
// TemplateID and CustomPrompt selects the prompt.
type ProcessRequest struct {
	Transcript   string `json:"transcript" validate:"required"`
	TemplateID   *uint  `json:"templateId,omitempty"`
	CustomPrompt string `json:"customPrompt,omitempty"`
}

// SuggestRequest is the body of POST /api/suggest-templates.
type SuggestRequest struct {
	Transcript string `json:"transcript" validate:"required"`
}
