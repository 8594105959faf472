package dto

import (
	"strconv"
	"strings"
)

// Amount is a money value that tolerates sloppy client payloads. JSON numbers
// and numeric strings parse normally; anything else (null, "bad", objects)
// coerces to zero so a malformed price can never fail a booking or poison the
// revenue sum.
type Amount float64

func (a *Amount) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))

	if raw == "" || raw == "null" {
		*a = 0

		return nil
	}

	if strings.HasPrefix(raw, `"`) {
		unquoted, err := strconv.Unquote(raw)
		if err != nil {
			*a = 0

			return nil
		}

		raw = strings.TrimSpace(unquoted)
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		*a = 0

		return nil
	}

	*a = Amount(value)

	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(float64(a), 'f', -1, 64)), nil
}

func (a Amount) Float64() float64 {
	return float64(a)
}
