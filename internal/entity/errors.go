package entity

import "errors"

var (
	// Prediction errors
	ErrImageNotDecodable = errors.New("uploaded bytes are not a decodable image")
)

// EngineError marks a failure reported by the external inference service so
// the transport layer can surface the vendor message instead of the generic one.
type EngineError struct {
	Err error
}

func (e *EngineError) Error() string {
	return e.Err.Error()
}

func (e *EngineError) Unwrap() error {
	return e.Err
}
