package logger

// Fields is an alias for map[string]interface{} for convenience.
type Fields map[string]interface{}

// Tracing fields, carried on the context logger through a request.
const (
	// FieldRequestID is the HTTP request ID (UUID)
	FieldRequestID = "request_id"

	// FieldComponent is the component/module name
	FieldComponent = "component"

	// FieldRoute is the matched HTTP route
	FieldRoute = "route"
)

// Result fields, attached to individual log lines.
const (
	FieldDurationMs = "duration_ms"
	FieldStatus     = "status"
	FieldSize       = "size"

	// FieldLabel is the raw classifier output
	FieldLabel = "label"

	// FieldSentiment is the storage tag derived from the label
	FieldSentiment = "sentiment"

	// FieldLanguage is the detected source language of a review
	FieldLanguage = "language"

	// FieldReviewID is the id assigned by the review store
	FieldReviewID = "review_id"
)
