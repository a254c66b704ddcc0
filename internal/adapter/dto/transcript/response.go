package transcript

// FetchResponse is the body of a successful GET /api/transcript/:videoId.
type FetchResponse struct {
	Transcript string `json:"transcript"`
}

// ProcessResponse is the body of a successful POST /api/process-transcript.
type ProcessResponse struct {
	FormattedTranscript string `json:"formattedTranscript"`
}
