package apimodel

import (
	"fmt"
	"sort"
)

// OrderPolicy selects the stable member order a container item exposes to
// consumers. The serializer preserves whichever order the model hands out
// verbatim; the policy is the single place where ordering is decided.
type OrderPolicy int

const (
	// OrderDeclaration keeps the analyzer's member order (source declaration
	// order). This is the default.
	OrderDeclaration OrderPolicy = iota
	// OrderLexical sorts members by name, case-sensitive and stable, so that
	// overload groups and accessor pairs keep their relative order.
	OrderLexical
)

func (p OrderPolicy) String() string {
	switch p {
	case OrderDeclaration:
		return "declaration"
	case OrderLexical:
		return "lexical"
	default:
		return "<unknown order policy>"
	}
}

// ParseOrderPolicy maps the CLI/config spelling to a policy.
func ParseOrderPolicy(s string) (OrderPolicy, error) {
	switch s {
	case "", "declaration":
		return OrderDeclaration, nil
	case "lexical":
		return OrderLexical, nil
	default:
		return 0, fmt.Errorf("unrecognized order policy %q (valid: declaration, lexical)", s)
	}
}

// MembersInOrder returns the item's members in the order selected by p.
// The returned slice is freshly allocated for OrderLexical; for
// OrderDeclaration it aliases the item's own slice, which callers must not
// mutate.
func (it *Item) MembersInOrder(p OrderPolicy) []*Item {
	if p != OrderLexical || len(it.Members) < 2 {
		return it.Members
	}
	out := make([]*Item, len(it.Members))
	copy(out, it.Members)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
