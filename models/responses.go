package models

// NoteListResponse is the envelope returned by the note listing endpoint.
type NoteListResponse struct {
	// Notes is the list of notes matching the request filter, newest first.
	Notes []Note `json:"notes"`

	// Length is the total number of entries in Notes. Provided for
	// convenience so a client can validate the response without iterating
	// the slice.
	Length int `json:"length"`
}

// HealthResponse is the body of the liveness endpoint.
type HealthResponse struct {
	// Status is "ok" whenever the handler is reachable.
	Status string `json:"status"`

	// Env is the deployment environment mode the server was configured with.
	Env string `json:"env"`
}

// ErrorResponse is the JSON error envelope returned by the HTTP layer.
type ErrorResponse struct {
	// Error is a short human-readable description of the failure.
	Error string `json:"error"`
}
