package models

import (
	"encoding/json"
	"time"
)

// Token is a bearer credential with its expiry.
type Token struct {
	Value     string
	ExpiresAt time.Time
}

// Expired reports whether the token must be refreshed before use. An empty
// token is always expired, and so is one whose expiry equals now.
func (t Token) Expired(now time.Time) bool {
	if t.Value == "" {
		return true
	}
	return !now.Before(t.ExpiresAt)
}

type tokenWire struct {
	Token           string `json:"token"`
	TokenExpiresSec int64  `json:"tokenExpiresSec,omitempty"`
}

// MarshalJSON writes the backend form {"token", "tokenExpiresSec"}.
func (t Token) MarshalJSON() ([]byte, error) {
	w := tokenWire{Token: t.Value}
	if !t.ExpiresAt.IsZero() {
		w.TokenExpiresSec = t.ExpiresAt.Unix()
	}
	return json.Marshal(w)
}

func (t *Token) UnmarshalJSON(b []byte) error {
	var w tokenWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	t.Value = w.Token
	t.ExpiresAt = time.Time{}
	if w.TokenExpiresSec > 0 {
		t.ExpiresAt = time.Unix(w.TokenExpiresSec, 0)
	}
	return nil
}
