package client

// Session is the explicit credential threaded into every backend call.
// There is no ambient global token: whoever drives the workspace decides
// which session each call runs under.
type Session struct {
	Token string
}

// NewSession wraps a bearer token.
func NewSession(token string) *Session {
	return &Session{Token: token}
}

// Valid reports whether the session carries a credential at all.
// Token expiry is the backend's call, not ours.
func (s *Session) Valid() bool {
	return s != nil && s.Token != ""
}
