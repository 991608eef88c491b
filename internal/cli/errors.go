// Package cli implements the command-line interface.
package cli

import (
	"errors"

	"github.com/aidanlsb/didact/internal/commands"
	"github.com/aidanlsb/didact/internal/numbers"
	"github.com/aidanlsb/didact/internal/panel"
	"github.com/aidanlsb/didact/internal/protocol"
	"github.com/aidanlsb/didact/internal/render"
	"github.com/aidanlsb/didact/internal/tutorials"
)

// Error codes for structured error responses.
// These codes are stable and can be relied upon by scripts.
const (
	// Config errors
	ErrConfigInvalid = "CONFIG_INVALID"
	ErrStateInvalid  = "STATE_INVALID"

	// Link errors
	ErrLinkInvalid      = "LINK_INVALID"
	ErrCommandNotFound  = "COMMAND_NOT_FOUND"
	ErrInputCancelled   = "INPUT_CANCELLED"
	ErrCommandFailed    = "COMMAND_FAILED"
	ErrUnsupportedInput = "UNSUPPORTED_FORMAT"

	// Panel errors
	ErrNoActivePanel     = "NO_ACTIVE_PANEL"
	ErrPanelNotFound     = "PANEL_NOT_FOUND"
	ErrNoDefaultTutorial = "NO_DEFAULT_TUTORIAL"
	ErrTutorialNotFound  = "TUTORIAL_NOT_FOUND"
	ErrSourceInvalid     = "SOURCE_INVALID"

	// File errors
	ErrFileNotFound   = "FILE_NOT_FOUND"
	ErrFileReadError  = "FILE_READ_ERROR"
	ErrFileWriteError = "FILE_WRITE_ERROR"

	// Database errors
	ErrDatabaseError = "DATABASE_ERROR"

	// Input errors
	ErrInvalidInput    = "INVALID_INPUT"
	ErrMissingArgument = "MISSING_ARGUMENT"

	// General errors
	ErrInternal = "INTERNAL_ERROR"
)

// Warning codes for non-fatal issues.
const (
	WarnRequirementFailed = "REQUIREMENT_FAILED"
	WarnStateNotSaved     = "STATE_NOT_SAVED"
)

// errorCode maps a domain error to its stable code.
func errorCode(err error) string {
	switch {
	case errors.Is(err, protocol.ErrMissingCommandID):
		return ErrLinkInvalid
	case errors.Is(err, protocol.ErrInputCancelled):
		return ErrInputCancelled
	case errors.Is(err, commands.ErrCommandNotFound):
		return ErrCommandNotFound
	case errors.Is(err, render.ErrUnsupportedFormat):
		return ErrUnsupportedInput
	case errors.Is(err, panel.ErrNoActivePanel):
		return ErrNoActivePanel
	case errors.Is(err, panel.ErrPanelNotFound):
		return ErrPanelNotFound
	case errors.Is(err, panel.ErrNoDefaultTutorial):
		return ErrNoDefaultTutorial
	case errors.Is(err, panel.ErrEmptySource), errors.Is(err, panel.ErrUnsupportedSource):
		return ErrSourceInvalid
	case errors.Is(err, tutorials.ErrTutorialNotFound):
		return ErrTutorialNotFound
	case errors.Is(err, numbers.ErrInvalidNumber):
		return ErrInvalidInput
	default:
		return ErrInternal
	}
}

// handleDomainError reports err under its mapped code.
func handleDomainError(err error, suggestion string) error {
	return handleError(errorCode(err), err, suggestion)
}
