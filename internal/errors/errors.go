// Package errors provides standardized error handling for reseq.
// It defines the error kinds a rename session can surface, typed errors that
// carry the offending path or parameter, and helpers for creating, wrapping
// and classifying them.
package errors

import (
	"errors"
	"fmt"
)

// Standard errors package errors that we re-export for convenience
var (
	// Unwrap unwraps an error to access the underlying error
	Unwrap = errors.Unwrap
	// Is reports whether any error in err's chain matches target
	Is = errors.Is
	// As finds the first error in err's chain that matches target
	As = errors.As
)

// ErrorKind represents the kind of error
type ErrorKind int

// Error kinds
const (
	Unknown ErrorKind = iota
	// File error kinds
	FileNotFound
	FileAccessDenied
	InvalidPath
	FileOperationFailed
	// Config error kinds
	InvalidConfig
	// Session error kinds
	NoFolderSelected
	EmptyPreview
	NameConflict
	RenameFailure
	InvalidInputData
)

var kindNames = map[ErrorKind]string{
	Unknown:             "unknown",
	FileNotFound:        "file_not_found",
	FileAccessDenied:    "file_access_denied",
	InvalidPath:         "invalid_path",
	FileOperationFailed: "file_operation_failed",
	InvalidConfig:       "invalid_config",
	NoFolderSelected:    "no_folder_selected",
	EmptyPreview:        "empty_preview",
	NameConflict:        "name_conflict",
	RenameFailure:       "rename_failure",
	InvalidInputData:    "invalid_input",
}

// String returns the snake_case name of the kind
func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Session errors that carry no extra context. They are returned as-is so
// callers may compare with Is.
var (
	ErrNoFolderSelected = newKind("select a folder", NoFolderSelected)
	ErrEmptyPreview     = newKind("nothing to rename", EmptyPreview)
	ErrInvalidConfig    = NewConfigError("invalid configuration", "", InvalidConfig, nil)
)

// ApplicationError is the base error type for all application errors
type ApplicationError struct {
	msg  string
	err  error
	kind ErrorKind
}

func newKind(msg string, kind ErrorKind) *ApplicationError {
	return &ApplicationError{msg: msg, kind: kind}
}

// Error returns the error message
func (e *ApplicationError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

// Unwrap returns the wrapped error
func (e *ApplicationError) Unwrap() error {
	return e.err
}

// Kind returns the kind of error
func (e *ApplicationError) Kind() ErrorKind {
	return e.kind
}

// FileError represents errors related to a single file or directory
type FileError struct {
	ApplicationError
	path string
}

// NewFileError creates a new file error
func NewFileError(msg string, path string, kind ErrorKind, err error) *FileError {
	return &FileError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		path: path,
	}
}

// Error returns the file error message
func (e *FileError) Error() string {
	if e.path != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.path, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.path)
	}
	return e.ApplicationError.Error()
}

// Path returns the file path associated with the error
func (e *FileError) Path() string {
	return e.path
}

// NewConflictError reports a rename destination that already exists.
// target is the colliding basename.
func NewConflictError(target string) *FileError {
	return NewFileError("target exists", target, NameConflict, nil)
}

// ConfigError represents errors related to configuration
type ConfigError struct {
	ApplicationError
	param string
}

// NewConfigError creates a new configuration error
func NewConfigError(msg string, param string, kind ErrorKind, err error) *ConfigError {
	return &ConfigError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		param: param,
	}
}

// Error returns the config error message
func (e *ConfigError) Error() string {
	if e.param != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.param, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.param)
	}
	return e.ApplicationError.Error()
}

// Param returns the configuration parameter associated with the error
func (e *ConfigError) Param() string {
	return e.param
}

// RenameError is returned when an individual rename fails mid-batch.
// Renames completed before the failure are left in place.
type RenameError struct {
	ApplicationError
	from      string
	to        string
	completed int
}

// NewRenameError creates a new rename failure
func NewRenameError(from, to string, completed int, err error) *RenameError {
	return &RenameError{
		ApplicationError: ApplicationError{
			msg:  "rename failed",
			err:  err,
			kind: RenameFailure,
		},
		from:      from,
		to:        to,
		completed: completed,
	}
}

// Error returns the rename error message
func (e *RenameError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s -> %s: %v", e.msg, e.from, e.to, e.err)
	}
	return fmt.Sprintf("%s: %s -> %s", e.msg, e.from, e.to)
}

// From returns the source name of the failed rename
func (e *RenameError) From() string { return e.from }

// To returns the destination name of the failed rename
func (e *RenameError) To() string { return e.to }

// Completed returns how many renames succeeded before the failure
func (e *RenameError) Completed() int { return e.completed }

// New creates a new error with a message
func New(msg string) error {
	return &ApplicationError{
		msg:  msg,
		kind: Unknown,
	}
}

// Newf creates a new error with a formatted message
func Newf(format string, args ...interface{}) error {
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		kind: Unknown,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  msg,
		err:  err,
		kind: Unknown,
	}
}

// Wrapf wraps an existing error with additional formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		err:  err,
		kind: Unknown,
	}
}

type kinded interface {
	Kind() ErrorKind
}

// KindOf returns the kind of the first classified error in err's chain.
// Plain errors report Unknown.
func KindOf(err error) ErrorKind {
	for err != nil {
		if k, ok := err.(kinded); ok && k.Kind() != Unknown {
			return k.Kind()
		}
		err = errors.Unwrap(err)
	}
	return Unknown
}

// IsFileNotFound checks if the error is a file not found error
func IsFileNotFound(err error) bool {
	var fileErr *FileError
	if errors.As(err, &fileErr) {
		return fileErr.Kind() == FileNotFound
	}
	return false
}

// IsInvalidConfig checks if the error is an invalid configuration error
func IsInvalidConfig(err error) bool {
	var configErr *ConfigError
	if errors.As(err, &configErr) {
		return configErr.Kind() == InvalidConfig
	}
	return false
}

// IsNameConflict checks if the error reports a pre-existing rename target
func IsNameConflict(err error) bool {
	var fileErr *FileError
	if errors.As(err, &fileErr) {
		return fileErr.Kind() == NameConflict
	}
	return false
}

// IsRenameFailure checks if the error is a mid-batch rename failure
func IsRenameFailure(err error) bool {
	var renameErr *RenameError
	return errors.As(err, &renameErr)
}

// IsNoFolderSelected checks if a rename was attempted without a folder
func IsNoFolderSelected(err error) bool {
	return KindOf(err) == NoFolderSelected
}

// IsEmptyPreview checks if a rename was attempted with nothing listed
func IsEmptyPreview(err error) bool {
	return KindOf(err) == EmptyPreview
}
