package vocabulary

import "fmt"

// LoadError reports a missing, unreadable or malformed vocabulary asset
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("vocabulary %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("vocabulary %s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
