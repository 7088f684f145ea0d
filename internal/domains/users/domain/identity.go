package domain

import "strings"

// Identity is the authenticated principal making a request, normalized
// from whichever auth provider produced it. Fields may be partially
// populated depending on the provider.
type Identity struct {
	Nickname    string
	DisplayName string
	Email       string
}

// Key resolves the single display string used as the ownership key for
// orders: nickname when present, otherwise display name. This is the only
// place the resolution rule lives; callers must not re-derive it.
func (i Identity) Key() string {
	if nickname := strings.TrimSpace(i.Nickname); nickname != "" {
		return nickname
	}
	return strings.TrimSpace(i.DisplayName)
}

// IsZero reports whether no principal is present.
func (i Identity) IsZero() bool {
	return i.Key() == "" && strings.TrimSpace(i.Email) == ""
}
