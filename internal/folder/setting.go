package folder

import "sync"

// Setting holds the active upload folder: the root directory new uploads are
// saved to and organized under. It is safe for concurrent use.
//
// Handlers read it once per request and pass the value down explicitly, so a
// single upload batch never straddles two roots.
type Setting struct {
	mu   sync.RWMutex
	path string
}

// NewSetting creates a Setting initialized to path.
func NewSetting(path string) *Setting {
	return &Setting{path: path}
}

// Get returns the active upload folder.
func (s *Setting) Get() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.path
}

// Set replaces the active upload folder.
func (s *Setting) Set(path string) {
	s.mu.Lock()
	s.path = path
	s.mu.Unlock()
}
