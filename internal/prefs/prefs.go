// Package prefs exposes the local preference flags: plain get/set values
// with no invariants beyond storage round-tripping.
package prefs

import (
	"github.com/habitlab/habitlab/internal/apperr"
	"github.com/habitlab/habitlab/internal/constants"
	"github.com/habitlab/habitlab/internal/storage"
)

type Prefs struct {
	store storage.Provider
}

func New(store storage.Provider) *Prefs {
	return &Prefs{store: store}
}

func (p *Prefs) Theme() string      { return p.get(constants.PrefTheme) }
func (p *Prefs) UserName() string   { return p.get(constants.PrefUserName) }
func (p *Prefs) UserAvatar() string { return p.get(constants.PrefUserAvatar) }
func (p *Prefs) ServerLink() string { return p.get(constants.PrefServerLink) }

func (p *Prefs) SetTheme(v string) error      { return p.store.SetPref(constants.PrefTheme, v) }
func (p *Prefs) SetUserName(v string) error   { return p.store.SetPref(constants.PrefUserName, v) }
func (p *Prefs) SetUserAvatar(v string) error { return p.store.SetPref(constants.PrefUserAvatar, v) }
func (p *Prefs) SetServerLink(v string) error { return p.store.SetPref(constants.PrefServerLink, v) }

// Clear removes every stored flag.
func (p *Prefs) Clear() error {
	for _, key := range []string{
		constants.PrefTheme,
		constants.PrefUserName,
		constants.PrefUserAvatar,
		constants.PrefServerLink,
	} {
		if err := p.store.DeletePref(key); err != nil {
			return err
		}
	}
	return nil
}

// get reads a flag, treating "never set" as the empty string.
func (p *Prefs) get(key string) string {
	value, err := p.store.GetPref(key)
	if err != nil && !apperr.IsNotFound(err) {
		return ""
	}
	return value
}
