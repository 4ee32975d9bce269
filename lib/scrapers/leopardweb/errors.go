package leopardweb

import "fmt"

// SessionError means no usable search session could be established
// for a term. It is always fatal to the run.
type SessionError struct {
	Term string
	Err  error
}

func (e *SessionError) Error() string {
	return fmt.Sprintf("no session for term %s: %s", e.Term, e.Err)
}

func (e *SessionError) Unwrap() error { return e.Err }

// FetchError means a listing or detail request failed or returned
// data that could not be decoded.
type FetchError struct {
	// Op is the request that failed, e.g. "terms", "page", "details".
	Op   string
	Term string
	// CRN is set for per-course detail failures.
	CRN string
	Err error
}

func (e *FetchError) Error() string {
	if e.CRN != "" {
		return fmt.Sprintf("fetch %s (term %s, crn %s): %s", e.Op, e.Term, e.CRN, e.Err)
	}
	if e.Term != "" {
		return fmt.Sprintf("fetch %s (term %s): %s", e.Op, e.Term, e.Err)
	}
	return fmt.Sprintf("fetch %s: %s", e.Op, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }
