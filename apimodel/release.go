package apimodel

import "fmt"

// ReleaseTag is the visibility/maturity tier of an item. Only None, Public
// and Beta are eligible for emission; Alpha and Internal suppress the item
// and its entire subtree.
type ReleaseTag int

const (
	ReleaseNone ReleaseTag = iota
	ReleasePublic
	ReleaseBeta
	ReleaseAlpha
	ReleaseInternal
)

// Released reports whether items carrying this tag appear in documents.
func (t ReleaseTag) Released() bool {
	switch t {
	case ReleaseNone, ReleasePublic, ReleaseBeta:
		return true
	default:
		return false
	}
}

func (t ReleaseTag) String() string {
	s, ok := map[ReleaseTag]string{
		ReleaseNone:     "None",
		ReleasePublic:   "Public",
		ReleaseBeta:     "Beta",
		ReleaseAlpha:    "Alpha",
		ReleaseInternal: "Internal",
	}[t]
	if ok {
		return s
	}
	return "<unknown release tag>"
}

func (t ReleaseTag) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *ReleaseTag) UnmarshalText(d []byte) error {
	tt, ok := map[string]ReleaseTag{
		"None":     ReleaseNone,
		"Public":   ReleasePublic,
		"Beta":     ReleaseBeta,
		"Alpha":    ReleaseAlpha,
		"Internal": ReleaseInternal,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized release tag %q", d)
	}
	*t = tt
	return nil
}
