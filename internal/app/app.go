// Package app exposes the backend command surface consumed by the editor
// shell. Every operation is synchronous, short-lived, and runs to
// completion or returns an error; there are no retries and no
// cancellation semantics.
package app

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/veldran/powerdesk/internal/desc"
	"github.com/veldran/powerdesk/internal/power"
	"github.com/veldran/powerdesk/internal/session"
	"github.com/veldran/powerdesk/internal/swz"
)

// App wires the session store, codec, and description lookup behind the
// four operations the editor shell dispatches. The store is injected
// state rather than a process global so instances stay isolated in tests.
type App struct {
	store     *session.Store
	log       *zap.Logger
	sessionID string
}

// New creates an App with an empty session store. A nil logger is
// replaced with a no-op logger.
func New(log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}
	id := uuid.NewString()
	return &App{
		store:     session.NewStore(),
		log:       log.With(zap.String("session_id", id)),
		sessionID: id,
	}
}

// SessionID returns the identifier attached to this session's log entries.
func (a *App) SessionID() string {
	return a.sessionID
}

// GetDescriptions returns the bundled column-description table.
func (a *App) GetDescriptions() (map[string]string, error) {
	return desc.Load()
}

// GetPowerList returns the currently loaded list, or
// session.ErrNotLoaded before the first load.
func (a *App) GetPowerList() ([]power.Power, error) {
	return a.store.Get()
}

// LoadPowersFromPath parses the file at path and replaces the session
// store's held list with the result. Rows skipped under the codec's
// partial-success policy are logged, not returned as errors.
func (a *App) LoadPowersFromPath(path string) ([]power.Power, error) {
	a.log.Info("loading powers", zap.String("path", path))
	res, err := swz.ReadFile(path, a.log)
	if err != nil {
		return nil, err
	}
	a.store.Replace(res.Powers)
	a.log.Info("loaded powers",
		zap.String("path", path),
		zap.Int("count", len(res.Powers)),
		zap.Int("skipped", len(res.Skipped)))
	return res.Powers, nil
}

// SavePowerListToPath atomically writes the caller-supplied list to path.
// The session store is not the source of truth for save: it is neither
// consulted nor mutated here.
func (a *App) SavePowerListToPath(path string, records []power.Power) error {
	a.log.Info("saving powers",
		zap.String("path", path),
		zap.Int("count", len(records)))
	if err := swz.WriteFile(path, records); err != nil {
		return err
	}
	a.log.Info("saved powers", zap.String("path", path))
	return nil
}
