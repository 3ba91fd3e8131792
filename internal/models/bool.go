package models

import (
	"bytes"
	"fmt"
)

// IntBool is a boolean that travels as 0/1 in JSON, matching how the
// authoritative store persists the completed flag. Reads coerce both the
// numeric form and plain JSON booleans, so snapshots written by older
// clients stay decodable.
type IntBool bool

func (b IntBool) MarshalJSON() ([]byte, error) {
	if b {
		return []byte("1"), nil
	}
	return []byte("0"), nil
}

func (b *IntBool) UnmarshalJSON(data []byte) error {
	switch string(bytes.TrimSpace(data)) {
	case "0", "false":
		*b = false
	case "1", "true":
		*b = true
	default:
		return fmt.Errorf("invalid completed flag: %s", data)
	}
	return nil
}
