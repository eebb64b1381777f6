package apimodel

import "fmt"

// Kind discriminates the item variants of the documented API surface.
type Kind int

const (
	KindPackage Kind = iota
	KindNamespace
	KindClass
	KindInterface
	KindEnum
	KindEnumValue
	KindFunction
	KindMethod
	KindConstructor
	KindProperty
	KindModuleVariable
	KindParameter
)

// String returns the canonical lowercase tag written into API documents.
// The set of strings must stay in sync with the enumerated kind values of
// the embedded document schema; adding a kind means touching both.
func (k Kind) String() string {
	s, ok := map[Kind]string{
		KindPackage:        "package",
		KindNamespace:      "namespace",
		KindClass:          "class",
		KindInterface:      "interface",
		KindEnum:           "enum",
		KindEnumValue:      "enum value",
		KindFunction:       "function",
		KindMethod:         "method",
		KindConstructor:    "constructor",
		KindProperty:       "property",
		KindModuleVariable: "module variable",
		KindParameter:      "parameter",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"package":         KindPackage,
		"namespace":       KindNamespace,
		"class":           KindClass,
		"interface":       KindInterface,
		"enum":            KindEnum,
		"enum value":      KindEnumValue,
		"function":        KindFunction,
		"method":          KindMethod,
		"constructor":     KindConstructor,
		"property":        KindProperty,
		"module variable": KindModuleVariable,
		"parameter":       KindParameter,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

// Kinds enumerates every kind the model defines.
func Kinds() []Kind {
	return []Kind{
		KindPackage,
		KindNamespace,
		KindClass,
		KindInterface,
		KindEnum,
		KindEnumValue,
		KindFunction,
		KindMethod,
		KindConstructor,
		KindProperty,
		KindModuleVariable,
		KindParameter,
	}
}

// IsContainer reports whether items of this kind carry a member list.
func (k Kind) IsContainer() bool {
	switch k {
	case KindPackage, KindNamespace, KindClass, KindInterface, KindEnum:
		return true
	default:
		return false
	}
}
