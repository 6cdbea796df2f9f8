package georelate

import "fmt"

// Status is a taxonomy code attached to every error this package returns,
// mirroring the DB_STATUS enum of the system this package's join pipeline
// was modeled on. Fatal statuses abort the calling operation; recoverable
// statuses (InvalidGeometry, InvalidDataType) cause a single row to be
// skipped instead.
type Status int

// Status codes. Names follow the taxonomy in the core design: arguments,
// filepaths, and file I/O are environment errors; Ini is a configuration
// error; Geometry/DataType are per-row and recoverable; Partition and
// OutOfBounds are internal-consistency errors; Operation covers an
// unsupported shape-pair predicate, handled as a no-op rather than an
// error by callers that can tolerate it.
const (
	StatusOK Status = iota
	StatusInvalidArgs
	StatusInvalidFilepath
	StatusFileOpen
	StatusFileWrite
	StatusIniError
	StatusInvalidDataType
	StatusInvalidGeometry
	StatusInvalidPartition
	StatusOutOfBounds
	StatusInvalidOperation
	StatusInvalidParameter
)

var statusNames = map[Status]string{
	StatusOK:               "ok",
	StatusInvalidArgs:      "invalid arguments",
	StatusInvalidFilepath:  "invalid filepath",
	StatusFileOpen:         "file open failed",
	StatusFileWrite:        "file write failed",
	StatusIniError:         "ini configuration error",
	StatusInvalidDataType:  "invalid data type",
	StatusInvalidGeometry:  "invalid geometry",
	StatusInvalidPartition: "invalid partition",
	StatusOutOfBounds:      "out of bounds",
	StatusInvalidOperation: "invalid operation",
	StatusInvalidParameter: "invalid parameter",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown status"
}

// Fatal reports whether s must abort the calling operation. Only
// InvalidGeometry and InvalidDataType are recoverable: a malformed row is
// dropped and loading continues.
func (s Status) Fatal() bool {
	switch s {
	case StatusInvalidGeometry, StatusInvalidDataType:
		return false
	default:
		return true
	}
}

// StatusError pairs a Status with a contextual message. It implements the
// error interface so callers can use errors.Is/errors.As against the
// sentinel Err* values below while still inspecting the Status code.
type StatusError struct {
	Status  Status
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("georelate: %s: %s", e.Status, e.Message)
}

// Is supports errors.Is comparisons against sentinel StatusErrors that
// share the same Status.
func (e *StatusError) Is(target error) bool {
	t, ok := target.(*StatusError)
	if !ok {
		return false
	}
	return e.Status == t.Status
}

// newErr builds a StatusError with a formatted message.
func newErr(status Status, format string, args ...interface{}) *StatusError {
	return &StatusError{Status: status, Message: fmt.Sprintf(format, args...)}
}

// Sentinel errors for errors.Is comparisons, one per taxonomy entry.
var (
	ErrInvalidArgs      = &StatusError{Status: StatusInvalidArgs}
	ErrInvalidFilepath  = &StatusError{Status: StatusInvalidFilepath}
	ErrFileOpen         = &StatusError{Status: StatusFileOpen}
	ErrFileWrite        = &StatusError{Status: StatusFileWrite}
	ErrIniError         = &StatusError{Status: StatusIniError}
	ErrInvalidDataType  = &StatusError{Status: StatusInvalidDataType}
	ErrInvalidGeometry  = &StatusError{Status: StatusInvalidGeometry}
	ErrInvalidPartition = &StatusError{Status: StatusInvalidPartition}
	ErrOutOfBounds      = &StatusError{Status: StatusOutOfBounds}
	ErrInvalidOperation = &StatusError{Status: StatusInvalidOperation}
	ErrInvalidParameter = &StatusError{Status: StatusInvalidParameter}
)
