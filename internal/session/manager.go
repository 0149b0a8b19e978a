package session

import (
	"crypto/rand"
	"encoding/base64"
)

// Manager issues opaque per-browser identity tokens. A token uniquely
// identifies one browser session; it is an ownership key for carts and
// comments, not an authenticated user identity.
type Manager struct{}

func NewManager() *Manager {
	return &Manager{}
}

// Issue generates a fresh unpredictable identity token.
func (m *Manager) Issue() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
