package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Money is an amount in minor currency units (cents). API clients have
// historically sent amounts as either JSON numbers or strings, so the
// ambiguity is resolved here at the model boundary.
type Money int64

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(int64(m), 10)), nil
}

func (m *Money) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if len(s) >= 2 && s[0] == '"' {
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
	}
	if s == "" || s == "null" {
		*m = 0
		return nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid money amount %q: %w", s, err)
	}
	*m = Money(v)
	return nil
}

// Display formats the amount as major units, e.g. 12050 -> "120.50".
func (m Money) Display() string {
	return fmt.Sprintf("%d.%02d", m/100, m%100)
}
