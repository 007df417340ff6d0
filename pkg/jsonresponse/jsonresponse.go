// Package jsonresponse keeps error responses uniform across all handlers.
package jsonresponse

// jsonError is the error envelope every handler returns.
type jsonError struct {
	Error string `json:"error"`
}

// Error wraps err into the json error envelope.
func Error(err error) jsonError {
	return jsonError{Error: err.Error()}
}
