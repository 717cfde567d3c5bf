package domain

import "fmt"

const (
	// UnknownValue is reported for a string that could not be obtained
	UnknownValue = "Unknown"
	// DetectionFailedRenderer is the renderer of a failed probe
	DetectionFailedRenderer = "Detection Failed"
)

// Identity is the renderer/vendor/extensions triple read from a graphics context
type Identity struct {
	Renderer   string `json:"renderer"`
	Vendor     string `json:"vendor"`
	Extensions string `json:"extensions"`
}

// UnknownIdentity is used before any probe ran or when no backend is available
func UnknownIdentity() Identity {
	return Identity{Renderer: UnknownValue, Vendor: UnknownValue}
}

// FailedIdentity is the sentinel identity of a failed probe
func FailedIdentity() Identity {
	return Identity{Renderer: DetectionFailedRenderer, Vendor: UnknownValue}
}

// ProbeStatus tells whether a probe reached the graphics stack
type ProbeStatus int

const (
	ProbeOK ProbeStatus = iota
	ProbeFailed
)

func (s ProbeStatus) String() string {
	switch s {
	case ProbeOK:
		return "ok"
	case ProbeFailed:
		return "failed"
	default:
		return fmt.Sprintf("ProbeStatus(%d)", int(s))
	}
}

// ProbeResult is the outcome of one probe. A failed result still carries a
// complete identity (the failure sentinel); Err is kept for diagnostics only.
type ProbeResult struct {
	Identity Identity
	Status   ProbeStatus
	Err      error
}

// Detected wraps a successfully read identity
func Detected(id Identity) ProbeResult {
	return ProbeResult{Identity: id, Status: ProbeOK}
}

// DetectionFailed builds the failure sentinel result
func DetectionFailed(err error) ProbeResult {
	return ProbeResult{Identity: FailedIdentity(), Status: ProbeFailed, Err: err}
}

// OK reports whether the identity came from a working context
func (r ProbeResult) OK() bool {
	return r.Status == ProbeOK
}
