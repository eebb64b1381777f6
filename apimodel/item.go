package apimodel

import "fmt"

// ConstructorName is the reserved member name under which the upstream
// analyzer files a class constructor. A method carrying this name is
// serialized as a constructor node.
const ConstructorName = "__constructor"

// AccessModifier is the declared access level of a class member.
type AccessModifier int

const (
	AccessNone AccessModifier = iota
	AccessPublic
	AccessPrivate
	AccessProtected
)

// String returns the lowercase modifier name, or the empty string when no
// modifier was declared; this is the exact form written into documents.
func (a AccessModifier) String() string {
	switch a {
	case AccessPublic:
		return "public"
	case AccessPrivate:
		return "private"
	case AccessProtected:
		return "protected"
	default:
		return ""
	}
}

func (a AccessModifier) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *AccessModifier) UnmarshalText(d []byte) error {
	aa, ok := map[string]AccessModifier{
		"":          AccessNone,
		"public":    AccessPublic,
		"private":   AccessPrivate,
		"protected": AccessProtected,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized access modifier %q", d)
	}
	*a = aa
	return nil
}

// Accessor distinguishes accessor-backed properties. Setter-backed
// properties never reach the document; their getter counterpart, when
// present, is the sole representative of the name.
type Accessor int

const (
	AccessorNone Accessor = iota
	AccessorGetter
	AccessorSetter
)

func (a Accessor) String() string {
	switch a {
	case AccessorGetter:
		return "getter"
	case AccessorSetter:
		return "setter"
	default:
		return ""
	}
}

func (a Accessor) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Accessor) UnmarshalText(d []byte) error {
	aa, ok := map[string]Accessor{
		"":       AccessorNone,
		"getter": AccessorGetter,
		"setter": AccessorSetter,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized accessor %q", d)
	}
	*a = aa
	return nil
}

// Parameter is one declared signature parameter, in declaration order.
type Parameter struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	IsOptional bool   `json:"isOptional"`
	IsSpread   bool   `json:"isSpread"`
}

// ParamDoc is the doc-comment side of a parameter, keyed by name in Docs.
type ParamDoc struct {
	Description RichText `json:"description"`
}

// Docs is the structured documentation bundle attached to every item.
type Docs struct {
	Summary    RichText            `json:"summary"`
	Remarks    RichText            `json:"remarks"`
	Deprecated RichText            `json:"deprecatedMessage"`
	Parameters map[string]ParamDoc `json:"parameters,omitempty"`
	Returns    RichText            `json:"returnsMessage"`
}

// Decl is the declaration excerpt handle exposed by the upstream analyzer.
// The core uses it only to extract literal text: the signature line for
// methods, the trailing token for enum values and module variables.
type Decl struct {
	Text   string   `json:"text"`
	Tokens []string `json:"tokens,omitempty"`
}

// TrailingToken returns the value-producing token of the declaration: the
// last token when the declaration has more than one, else the empty string.
func (d Decl) TrailingToken() string {
	if len(d.Tokens) < 2 {
		return ""
	}
	return d.Tokens[len(d.Tokens)-1]
}

// Item is one documented entity of the API surface. The tree is built by the
// upstream analyzer, is immutable for the duration of a traversal, and is
// discriminated by Kind; fields past Decl are meaningful only for the kinds
// noted on each.
type Item struct {
	Name          string     `json:"name"`
	Kind          Kind       `json:"kind"`
	SupportedName bool       `json:"supportedName"`
	ReleaseTag    ReleaseTag `json:"releaseTag"`
	Docs          Docs       `json:"docs"`
	Decl          Decl       `json:"decl,omitempty"`

	// Package, Namespace, Class, Interface, Enum.
	Members []*Item `json:"members,omitempty"`

	// Class, Interface.
	Extends        string   `json:"extends,omitempty"`
	Implements     string   `json:"implements,omitempty"`
	TypeParameters []string `json:"typeParameters,omitempty"`

	// Function, Method.
	Parameters []Parameter `json:"parameters,omitempty"`
	ReturnType string      `json:"returnType,omitempty"`

	// Method.
	AccessModifier AccessModifier `json:"accessModifier,omitempty"`
	IsStatic       bool           `json:"isStatic,omitempty"`

	// Method, Property.
	IsOptional bool `json:"isOptional,omitempty"`

	// Property.
	IsReadOnly bool     `json:"isReadOnly,omitempty"`
	Accessor   Accessor `json:"accessor,omitempty"`

	// Property, ModuleVariable.
	Type string `json:"type,omitempty"`
}

// IsBeta reports whether the item itself is tagged Beta. The document field
// is recomputed per item and never inherited from an ancestor.
func (it *Item) IsBeta() bool {
	return it.ReleaseTag == ReleaseBeta
}
