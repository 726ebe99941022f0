package fetch

import "fmt"

// Stage names the step of a fetch that failed.
type Stage string

const (
	// StageRequest covers building and sending the request.
	StageRequest Stage = "request"
	// StageStatus is a non-2xx response.
	StageStatus Stage = "status"
	// StageRead covers reading the body, including the size limit.
	StageRead Stage = "read"
	// StageDecode is a payload that is not a readable workbook.
	StageDecode Stage = "decode"
)

// FetchError represents a failure to retrieve or decode one source's export.
type FetchError struct {
	PackageID  string
	Stage      Stage
	StatusCode int // set for StageStatus
	Err        error
}

func (e *FetchError) Error() string {
	if e.Stage == StageStatus {
		return fmt.Sprintf("fetch %s: unexpected HTTP status %d", e.PackageID, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s (%s): %v", e.PackageID, e.Stage, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// NewFetchError creates a new FetchError.
func NewFetchError(packageID string, stage Stage, err error) *FetchError {
	return &FetchError{
		PackageID: packageID,
		Stage:     stage,
		Err:       err,
	}
}
