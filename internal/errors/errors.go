package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// ErrIO is returned when an input or output file cannot be opened,
	// read, or written. I/O failures are fatal to the affected phase.
	ErrIO = errors.New("i/o failure")

	// ErrJobNotFound is returned when a job is not found
	ErrJobNotFound = errors.New("job not found")

	// ErrReportNotFound is returned when an analysis report is not found
	ErrReportNotFound = errors.New("report not found")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
)

// InputFileError represents a failure to open or read the input file
type InputFileError struct {
	Path string
	Err  error
}

func (e *InputFileError) Error() string {
	return fmt.Sprintf("can't open input file for reading, filename: %s: %v", e.Path, e.Err)
}

func (e *InputFileError) Is(target error) bool {
	return target == ErrIO
}

func (e *InputFileError) Unwrap() error {
	return e.Err
}

// NewInputFileError creates a new InputFileError
func NewInputFileError(path string, err error) *InputFileError {
	return &InputFileError{Path: path, Err: err}
}

// InputReadError represents a failure while reading an already-open input
type InputReadError struct {
	Err error
}

func (e *InputReadError) Error() string {
	return fmt.Sprintf("error occurred while reading the input file: %v", e.Err)
}

func (e *InputReadError) Is(target error) bool {
	return target == ErrIO
}

func (e *InputReadError) Unwrap() error {
	return e.Err
}

// NewInputReadError creates a new InputReadError
func NewInputReadError(err error) *InputReadError {
	return &InputReadError{Err: err}
}

// OutputFileError represents a failure to open or write the output file
type OutputFileError struct {
	Path string
	Err  error
}

func (e *OutputFileError) Error() string {
	return fmt.Sprintf("can't open output file for writing, filename: %s: %v", e.Path, e.Err)
}

func (e *OutputFileError) Is(target error) bool {
	return target == ErrIO
}

func (e *OutputFileError) Unwrap() error {
	return e.Err
}

// NewOutputFileError creates a new OutputFileError
func NewOutputFileError(path string, err error) *OutputFileError {
	return &OutputFileError{Path: path, Err: err}
}

// JobNotFoundError represents a job not found error with context
type JobNotFoundError struct {
	JobID string
}

func (e *JobNotFoundError) Error() string {
	return fmt.Sprintf("job with ID '%s' not found", e.JobID)
}

func (e *JobNotFoundError) Is(target error) bool {
	return target == ErrJobNotFound
}

// NewJobNotFoundError creates a new JobNotFoundError
func NewJobNotFoundError(jobID string) *JobNotFoundError {
	return &JobNotFoundError{JobID: jobID}
}

// ReportNotFoundError represents an analysis report not found error with context
type ReportNotFoundError struct {
	ReportID string
}

func (e *ReportNotFoundError) Error() string {
	return fmt.Sprintf("report with ID '%s' not found", e.ReportID)
}

func (e *ReportNotFoundError) Is(target error) bool {
	return target == ErrReportNotFound
}

// NewReportNotFoundError creates a new ReportNotFoundError
func NewReportNotFoundError(reportID string) *ReportNotFoundError {
	return &ReportNotFoundError{ReportID: reportID}
}

// ValidationError represents an input validation error with context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
