package wire

import (
	"encoding/json"
	"fmt"
)

// Level is a skill proficiency encoded as a tagged union, e.g. {"Expert":null}.
type Level string

const (
	Beginner     Level = "Beginner"
	Intermediate Level = "Intermediate"
	Advanced     Level = "Advanced"
	Expert       Level = "Expert"
)

func (l Level) Valid() bool {
	switch l {
	case Beginner, Intermediate, Advanced, Expert:
		return true
	}
	return false
}

func (l Level) MarshalJSON() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("unknown level %q", string(l))
	}
	return json.Marshal(map[string]any{string(l): nil})
}

func (l *Level) UnmarshalJSON(b []byte) error {
	var tags map[string]json.RawMessage
	if err := json.Unmarshal(b, &tags); err != nil {
		return fmt.Errorf("level: expected object: %w", err)
	}
	if len(tags) != 1 {
		return fmt.Errorf("level: expected exactly one tag, got %d", len(tags))
	}
	for tag, payload := range tags {
		v := Level(tag)
		if !v.Valid() {
			return fmt.Errorf("level: unknown tag %q", tag)
		}
		if !isNull(payload) {
			return fmt.Errorf("level: tag %q carries a payload, want null", tag)
		}
		*l = v
	}
	return nil
}
