package landing

import "errors"

var (
	// ErrEditDenied occurs when a member without the owner role starts editing.
	ErrEditDenied = errors.New("landing: edit permission denied")
	// ErrSessionClosed occurs when a draft mutation targets a closed session.
	ErrSessionClosed = errors.New("landing: editing session closed")
	// ErrSaveInFlight rejects a save submitted while another is still pending.
	ErrSaveInFlight = errors.New("landing: save already in flight")
	// ErrSaverRequired occurs when a session saves without a configured saver.
	ErrSaverRequired = errors.New("landing: saver not configured")
	// ErrRendererRequired occurs when rendering without a markdown renderer.
	ErrRendererRequired = errors.New("landing: renderer not configured")
)
