package landing

import (
	"errors"

	"github.com/goliatone/go-landing/internal/documents"
	core "github.com/goliatone/go-landing/internal/landing"
)

// ErrDatabaseRequired indicates bun storage was selected without a database handle.
var ErrDatabaseRequired = errors.New("landing: bun storage requires a database handle")

var (
	ErrEditDenied       = core.ErrEditDenied
	ErrSessionClosed    = core.ErrSessionClosed
	ErrSaveInFlight     = core.ErrSaveInFlight
	ErrSaverRequired    = core.ErrSaverRequired
	ErrRendererRequired = core.ErrRendererRequired
	ErrDocumentNotFound = documents.ErrDocumentNotFound
)
