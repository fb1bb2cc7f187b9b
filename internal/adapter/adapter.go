// Package adapter converts between the editor's plain records and the
// services' wire records. Empty strings on the plain side are absent
// optionals on the wire side, and the other way round.
package adapter

import (
	"fmt"
	"strings"
	"time"

	"resumeapi/internal/model"
	"resumeapi/internal/wire"
)

func opt(s string) wire.Opt[string] { return wire.FromZero(s) }

// ParseID maps a plain id to a wire id. An empty id is a record not yet
// stored and maps to zero.
func ParseID(id string) (wire.Nat, error) {
	if id == "" {
		return 0, nil
	}
	return wire.ParseNat(id)
}

// FormatID is the inverse of ParseID.
func FormatID(n wire.Nat) string {
	if n == 0 {
		return ""
	}
	return n.String()
}

// LevelToWire accepts the plain level names case-insensitively.
func LevelToWire(level string) (wire.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case model.LevelBeginner:
		return wire.Beginner, nil
	case model.LevelIntermediate:
		return wire.Intermediate, nil
	case model.LevelAdvanced:
		return wire.Advanced, nil
	case model.LevelExpert:
		return wire.Expert, nil
	}
	return "", fmt.Errorf("unknown skill level %q", level)
}

func LevelFromWire(l wire.Level) string {
	return strings.ToLower(string(l))
}

func timePtrToWire(t *time.Time) wire.Opt[wire.Time] {
	if t == nil {
		return wire.None[wire.Time]()
	}
	return wire.Some(wire.FromTime(*t))
}

func timePtrFromWire(o wire.Opt[wire.Time]) *time.Time {
	v, ok := o.Get()
	if !ok {
		return nil
	}
	t := v.Time()
	return &t
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func toInt(n wire.Nat) int { return int(n) }

func toNat(i int) wire.Nat {
	if i < 0 {
		return 0
	}
	return wire.Nat(i)
}
