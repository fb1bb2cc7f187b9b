package wire

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"
)

// ErrInvalidID is returned for ids that are empty, non-numeric or zero.
var ErrInvalidID = errors.New("invalid id")

// Nat is an unsigned id. It travels as a decimal string so JavaScript clients
// keep full 64-bit precision.
type Nat uint64

// ParseNat parses a decimal string. Zero parses fine; use ParseID for ids.
func ParseNat(s string) (Nat, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, s)
	}
	return Nat(n), nil
}

// ParseID parses a backend id. Zero is reserved for records not yet stored.
func ParseID(s string) (Nat, error) {
	n, err := ParseNat(s)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, fmt.Errorf("%w: zero", ErrInvalidID)
	}
	return n, nil
}

func (n Nat) String() string { return strconv.FormatUint(uint64(n), 10) }

func (n Nat) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(n.String())), nil
}

// UnmarshalJSON accepts both "42" and 42.
func (n *Nat) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		v, err := ParseNat(s)
		if err != nil {
			return err
		}
		*n = v
		return nil
	}
	v, err := strconv.ParseUint(string(b), 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidID, b)
	}
	*n = Nat(v)
	return nil
}

// Time is a timestamp in nanoseconds since the Unix epoch, encoded like Nat.
type Time int64

func FromTime(t time.Time) Time {
	if t.IsZero() {
		return 0
	}
	return Time(t.UnixNano())
}

func (t Time) Time() time.Time {
	if t == 0 {
		return time.Time{}
	}
	return time.Unix(0, int64(t)).UTC()
}

func (t Time) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(strconv.FormatInt(int64(t), 10))), nil
}

func (t *Time) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		b = []byte(s)
	}
	v, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid timestamp %s", b)
	}
	*t = Time(v)
	return nil
}
