package code

import (
	"github.com/google/uuid"
)

// Value is the printable token handed to the customer. Drawn from the
// random UUID space (122 bits of entropy), so collisions are negligible;
// the codes.value unique index still rejects the freak case.
type Value string

func NewValue() Value {
	return Value(uuid.NewString())
}

func ParseValue(s string) (Value, error) {
	parsed, err := uuid.Parse(s)
	if err != nil {
		return "", err
	}
	return Value(parsed.String()), nil
}

func (v Value) String() string {
	return string(v)
}
