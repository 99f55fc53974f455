// Package library keeps named animation tracks loaded from disk and
// hands them out to whatever drives playback.
package library

import (
	"sync"

	"github.com/milk9111/keyframe/anim"
)

// Library stores tracks by key. Safe for concurrent use.
type Library struct {
	mu     sync.RWMutex
	tracks map[string]*anim.Track
}

// NewLibrary creates an empty library.
func NewLibrary() *Library {
	return &Library{tracks: make(map[string]*anim.Track)}
}

// Register adds a track to the library, replacing any previous entry
// under the same key.
func (l *Library) Register(key string, track *anim.Track) {
	if l == nil || key == "" || track == nil {
		return
	}
	l.mu.Lock()
	l.tracks[key] = track
	l.mu.Unlock()
}

// Get returns a track by key.
func (l *Library) Get(key string) (*anim.Track, bool) {
	if l == nil || key == "" {
		return nil, false
	}
	l.mu.RLock()
	track, ok := l.tracks[key]
	l.mu.RUnlock()
	return track, ok
}

// Remove drops a track from the library.
func (l *Library) Remove(key string) {
	if l == nil || key == "" {
		return
	}
	l.mu.Lock()
	delete(l.tracks, key)
	l.mu.Unlock()
}

// Names returns the keys of all registered tracks.
func (l *Library) Names() []string {
	if l == nil {
		return nil
	}
	l.mu.RLock()
	names := make([]string, 0, len(l.tracks))
	for name := range l.tracks {
		names = append(names, name)
	}
	l.mu.RUnlock()
	return names
}
