package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Milestone is an optional Chrome milestone number. The backend sends it as
// a number, a numeric string or null; anything that is not a whole number is
// treated as "no milestone".
type Milestone struct {
	value int
	valid bool
}

// NewMilestone returns a set milestone.
func NewMilestone(v int) Milestone {
	return Milestone{value: v, valid: true}
}

// Get returns the milestone and whether it is set.
func (m Milestone) Get() (int, bool) {
	return m.value, m.valid
}

func (m Milestone) String() string {
	if !m.valid {
		return ""
	}
	return strconv.Itoa(m.value)
}

func (m Milestone) MarshalJSON() ([]byte, error) {
	if !m.valid {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(m.value)), nil
}

func (m *Milestone) UnmarshalJSON(b []byte) error {
	*m = Milestone{}

	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}

	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case float64:
		if v == float64(int(v)) {
			*m = NewMilestone(int(v))
		}
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			*m = NewMilestone(n)
		}
	}
	return nil
}
