package bizerror

import (
	"errors"
	"net/http"
	"strings"
)

var (
	ErrUnauthenticated        = errors.New("unauthenticated")
	ErrForbidden              = errors.New("forbidden")
	ErrConcurrentModification = errors.New("concurrent modification")
	ErrStoreUnavailable       = errors.New("store unavailable")
)

type BizError interface {
	Respond() *BizErrorDetail
}

type BizErrorDetail struct {
	Status  int
	Code    string
	Message string

	Data  interface{}
	Cause error
}

type ErrBadParam struct {
	Cause error
}

func (e *ErrBadParam) Unwrap() error {
	return e.Cause
}
func (e *ErrBadParam) Error() string {
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return "common.bad_param"
}
func (e *ErrBadParam) Respond() *BizErrorDetail {
	message := "common.bad_param"
	if e.Cause != nil {
		message = e.Cause.Error()
	}
	return &BizErrorDetail{Status: http.StatusBadRequest, Code: "common.bad_param", Message: message, Data: nil}
}

// TransitionRejected is the expected business outcome when a requested
// transition is not legal for the case, actor or guard facts. All failed
// checks are carried in Reasons so callers can render the complete error.
type TransitionRejected struct {
	Reasons []string
}

func (e *TransitionRejected) Error() string {
	return "transition rejected: " + strings.Join(e.Reasons, "; ")
}
func (e *TransitionRejected) Respond() *BizErrorDetail {
	return &BizErrorDetail{Status: http.StatusConflict, Code: "workflow.transition_rejected",
		Message: "transition rejected", Data: e.Reasons}
}

// ErrConfiguration marks a malformed workflow definition. It is only ever
// raised while building the registry at startup.
type ErrConfiguration struct {
	Detail string
}

func (e *ErrConfiguration) Error() string {
	return "workflow configuration error: " + e.Detail
}
