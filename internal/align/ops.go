package align

import "fmt"

// Tag identifies the kind of an edit op.
type Tag uint8

const (
	Equal Tag = iota
	Insert
	Delete
	Replace
)

func (t Tag) String() string {
	switch t {
	case Equal:
		return "equal"
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	case Replace:
		return "replace"
	default:
		return "unknown"
	}
}

// MarshalText encodes the tag by name.
func (t Tag) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText decodes a tag name.
func (t *Tag) UnmarshalText(text []byte) error {
	for _, candidate := range []Tag{Equal, Insert, Delete, Replace} {
		if candidate.String() == string(text) {
			*t = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown op tag %q", text)
}

// Op covers source tokens [I1,I2) and target tokens [J1,J2).
type Op struct {
	Tag Tag `json:"tag"`
	I1  int `json:"i1"`
	I2  int `json:"i2"`
	J1  int `json:"j1"`
	J2  int `json:"j2"`
}

// Opcodes converts the matching blocks of a and b into an ordered edit
// script whose source ranges partition a and whose target ranges partition b.
func Opcodes[T comparable](a, b []T) []Op {
	var ops []Op
	i, j := 0, 0
	for _, m := range MatchingBlocks(a, b) {
		switch {
		case i < m.A && j < m.B:
			ops = append(ops, Op{Tag: Replace, I1: i, I2: m.A, J1: j, J2: m.B})
		case i < m.A:
			ops = append(ops, Op{Tag: Delete, I1: i, I2: m.A, J1: j, J2: m.B})
		case j < m.B:
			ops = append(ops, Op{Tag: Insert, I1: i, I2: m.A, J1: j, J2: m.B})
		}
		i, j = m.A+m.Size, m.B+m.Size
		if m.Size > 0 {
			ops = append(ops, Op{Tag: Equal, I1: m.A, I2: i, J1: m.B, J2: j})
		}
	}
	return ops
}
