package cli

import (
	"github.com/habitlab/habitlab/internal/habits"
	"github.com/habitlab/habitlab/internal/prefs"
	"github.com/habitlab/habitlab/internal/storage"
)

// Context carries the explicitly constructed dependencies into every
// command. The store is built once in main and injected; nothing in the
// application reaches for a shared global.
type Context struct {
	Store storage.Provider
	Repo  *habits.Repository
	Prefs *prefs.Prefs
}
