package export

import (
	"errors"
	"fmt"
)

// Kind classifies a caught export failure.
type Kind string

const (
	// KindRender covers composing and rasterizing the card.
	KindRender Kind = "render_failure"
	// KindIO covers encoding, PDF wrapping, sharing and printing.
	KindIO Kind = "export_io_failure"
)

var (
	// ErrInProgress is returned when an export for the same receipt is
	// already running.
	ErrInProgress = errors.New("an export for this receipt is already in progress")
	// ErrNoPrinter is returned by thermal printing when no printer is set up.
	ErrNoPrinter = errors.New("no receipt printer configured")
)

// Error is a recoverable export failure. The receipt itself is never
// modified, so the caller may retry.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (%s): %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Notices shown to the user alongside a fallback download.
const (
	NoticeShareUnavailable = "Sharing is not available here. Image downloaded! Share it manually on WhatsApp."
	NoticeShareFailed      = "Failed to share. Image downloaded instead."
)
