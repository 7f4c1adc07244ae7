package response

// Envelope is the uniform body of every API response: a human-readable
// message, the textual name of the HTTP status, and an optional data payload.
// The textual status is derived from the numeric one at construction time, so
// the two cannot diverge.
type Envelope struct {
	Message string         `json:"message"`
	Status  string         `json:"status"`
	Data    map[string]any `json:"data,omitempty"`

	code int
}

// New builds an envelope for the given HTTP status code and message.
func New(code int, message string) Envelope {
	return Envelope{
		Message: message,
		Status:  StatusName(code),
		code:    code,
	}
}

// WithData returns a copy of the envelope with key set in its data payload.
// The receiver is left untouched.
func (e Envelope) WithData(key string, value any) Envelope {
	data := make(map[string]any, len(e.Data)+1)
	for k, v := range e.Data {
		data[k] = v
	}
	data[key] = value
	e.Data = data
	return e
}

// HTTPStatus returns the numeric status code the envelope was built for.
func (e Envelope) HTTPStatus() int {
	return e.code
}
