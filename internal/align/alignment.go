package align

import (
	"fmt"

	"srtcheck/internal/textutil"
)

// Alignment is the edit script between two token sequences.
type Alignment struct {
	Source []textutil.Token
	Target []textutil.Token
	Ops    []Op
}

// Texts tokenizes both texts and aligns them.
func Texts(source, target string) Alignment {
	return Tokens(textutil.Tokenize(source), textutil.Tokenize(target))
}

// Tokens aligns two token sequences.
func Tokens(source, target []textutil.Token) Alignment {
	return Alignment{
		Source: source,
		Target: target,
		Ops:    Opcodes(textutil.Texts(source), textutil.Texts(target)),
	}
}

// SourceText returns the source-side text covered by op.
func (a Alignment) SourceText(op Op) string {
	return textutil.Join(a.Source[op.I1:op.I2])
}

// TargetText returns the target-side text covered by op.
func (a Alignment) TargetText(op Op) string {
	return textutil.Join(a.Target[op.J1:op.J2])
}

// Changed reports whether any op is not Equal.
func (a Alignment) Changed() bool {
	for _, op := range a.Ops {
		if op.Tag != Equal {
			return true
		}
	}
	return false
}

// Ratio returns 2*M/T where M is the number of matched tokens and T the total
// token count of both sides. Two empty sequences are fully similar.
func (a Alignment) Ratio() float64 {
	total := len(a.Source) + len(a.Target)
	if total == 0 {
		return 1
	}
	matched := 0
	for _, op := range a.Ops {
		if op.Tag == Equal {
			matched += op.I2 - op.I1
		}
	}
	return 2 * float64(matched) / float64(total)
}

// SegmentKind classifies a rendered span.
type SegmentKind uint8

const (
	SegEqual SegmentKind = iota
	SegDelete
	SegInsert
)

func (k SegmentKind) String() string {
	switch k {
	case SegDelete:
		return "delete"
	case SegInsert:
		return "insert"
	default:
		return "equal"
	}
}

// MarshalText encodes the kind by name.
func (k SegmentKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind name.
func (k *SegmentKind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "equal":
		*k = SegEqual
	case "delete":
		*k = SegDelete
	case "insert":
		*k = SegInsert
	default:
		return fmt.Errorf("unknown segment kind %q", text)
	}
	return nil
}

// Segment is one run of text in an inline rendering of the alignment.
type Segment struct {
	Kind SegmentKind `json:"kind"`
	Text string      `json:"text"`
}

// Segments flattens the ops into inline spans: Equal ops become SegEqual,
// Delete becomes SegDelete, Insert becomes SegInsert, and Replace becomes a
// SegDelete immediately followed by a SegInsert.
func (a Alignment) Segments() []Segment {
	segs := make([]Segment, 0, len(a.Ops)+2)
	for _, op := range a.Ops {
		switch op.Tag {
		case Equal:
			segs = append(segs, Segment{Kind: SegEqual, Text: a.SourceText(op)})
		case Delete:
			segs = append(segs, Segment{Kind: SegDelete, Text: a.SourceText(op)})
		case Insert:
			segs = append(segs, Segment{Kind: SegInsert, Text: a.TargetText(op)})
		case Replace:
			segs = append(segs,
				Segment{Kind: SegDelete, Text: a.SourceText(op)},
				Segment{Kind: SegInsert, Text: a.TargetText(op)},
			)
		}
	}
	return segs
}
