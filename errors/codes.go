package errors

// ErrorCode identifies a class of application failure.
type ErrorCode int32

const (
	ErrorCode_HTTP_OK ErrorCode = 0

	// General
	ErrorCode_INTERNAL         ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT ErrorCode = 1001
	ErrorCode_NOT_FOUND        ErrorCode = 1002
	ErrorCode_INVALID_PAYLOAD  ErrorCode = 1003

	// Transcript
	ErrorCode_TRANSCRIPT_UNAVAILABLE ErrorCode = 2000

	// Formatting pipeline
	ErrorCode_TEMPLATE_NOT_FOUND ErrorCode = 3000
	ErrorCode_NO_PROMPT_PROVIDED ErrorCode = 3001
	ErrorCode_GENERATION_FAILED  ErrorCode = 3002

	// Database
	ErrorCode_DB_CONNECTION_FAILED ErrorCode = 4000
	ErrorCode_DB_QUERY_FAILED      ErrorCode = 4001
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:                "HTTP_OK",
	ErrorCode_INTERNAL:               "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:       "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:              "NOT_FOUND",
	ErrorCode_INVALID_PAYLOAD:        "INVALID_PAYLOAD",
	ErrorCode_TRANSCRIPT_UNAVAILABLE: "TRANSCRIPT_UNAVAILABLE",
	ErrorCode_TEMPLATE_NOT_FOUND:     "TEMPLATE_NOT_FOUND",
	ErrorCode_NO_PROMPT_PROVIDED:     "NO_PROMPT_PROVIDED",
	ErrorCode_GENERATION_FAILED:      "GENERATION_FAILED",
	ErrorCode_DB_CONNECTION_FAILED:   "DB_CONNECTION_FAILED",
	ErrorCode_DB_QUERY_FAILED:        "DB_QUERY_FAILED",
}

// String returns the symbolic name of the code.
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
