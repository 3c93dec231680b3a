// Package prefs stores small player preferences in the key/value store.
package prefs

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/numrush/internal/storage"
)

// MusicKey holds "true" or "false".
const MusicKey = "numrush_music_on"

// Prefs reads and writes preferences through a storage.KV.
type Prefs struct {
	kv storage.KV
}

// New creates preferences backed by kv.
func New(kv storage.KV) *Prefs {
	return &Prefs{kv: kv}
}

// MusicEnabled reports whether background music is on.
// Missing or unparsable values mean off.
func (p *Prefs) MusicEnabled() (bool, error) {
	raw, ok, err := p.kv.Get(MusicKey)
	if err != nil {
		return false, fmt.Errorf("prefs: reading music: %w", err)
	}
	if !ok {
		return false, nil
	}
	on, err := strconv.ParseBool(raw)
	if err != nil {
		return false, nil
	}
	return on, nil
}

// SetMusicEnabled persists the music preference.
func (p *Prefs) SetMusicEnabled(on bool) error {
	if err := p.kv.Put(MusicKey, strconv.FormatBool(on)); err != nil {
		return fmt.Errorf("prefs: writing music: %w", err)
	}
	return nil
}

// ToggleMusic flips the music preference and returns the new value.
func (p *Prefs) ToggleMusic() (bool, error) {
	on, err := p.MusicEnabled()
	if err != nil {
		return false, err
	}
	if err := p.SetMusicEnabled(!on); err != nil {
		return on, err
	}
	return !on, nil
}
