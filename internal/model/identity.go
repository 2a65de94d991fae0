package model

// Identity is the authenticated Google account a request acts on behalf of.
// It is passed explicitly to use cases; nothing reads it from ambient state.
type Identity struct {
	Email       string
	AccessToken string
}

// IsZero reports whether no account is attached.
func (i Identity) IsZero() bool {
	return i.Email == "" && i.AccessToken == ""
}
