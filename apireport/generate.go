package apireport

import (
	"github.com/iancoleman/orderedmap"

	"github.com/ben-polinsky/rushstack/apimodel"
)

// Generator builds canonical API documents from a documented item tree. The
// traversal is synchronous and depth-first; the generator never mutates the
// tree and holds no state across Build calls beyond its options.
type Generator struct {
	order apimodel.OrderPolicy
}

// Option configures a Generator.
type Option func(*Generator)

// WithOrder selects the member ordering policy the generator asks the model
// for. The default is declaration order.
func WithOrder(p apimodel.OrderPolicy) Option {
	return func(g *Generator) { g.order = p }
}

// New returns a Generator.
func New(opts ...Option) *Generator {
	g := &Generator{order: apimodel.OrderDeclaration}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Build produces the document for the given root package item. The returned
// container preserves insertion order throughout, so the document is a pure,
// deterministic function of the tree and the ordering policy.
func (g *Generator) Build(root *apimodel.Item) *orderedmap.OrderedMap {
	doc := orderedmap.New()
	g.visit(root, doc)
	return doc
}

// visit applies the visibility gate and dispatches on kind. Suppression is
// pre-order: once an item fails the gate, none of its descendants are
// visited. Unrecognized kinds fall back to a placeholder handler that still
// honors SupportedName.
func (g *Generator) visit(it *apimodel.Item, out *orderedmap.OrderedMap) {
	if !it.ReleaseTag.Released() {
		return
	}
	switch it.Kind {
	case apimodel.KindPackage:
		g.visitPackage(it, out)
	case apimodel.KindNamespace:
		g.visitNamespace(it, out)
	case apimodel.KindClass, apimodel.KindInterface:
		g.visitStructuredType(it, out)
	case apimodel.KindEnum:
		g.visitEnum(it, out)
	case apimodel.KindEnumValue:
		g.visitEnumValue(it, out)
	case apimodel.KindFunction:
		g.visitFunction(it, out)
	case apimodel.KindMethod, apimodel.KindConstructor:
		g.visitMethod(it, out)
	case apimodel.KindProperty:
		g.visitProperty(it, out)
	case apimodel.KindModuleVariable:
		g.visitModuleVariable(it, out)
	default:
		g.visitUnknown(it, out)
	}
}

// visitMembers visits every member, in the model's stable order, into a
// fresh ordered container. The serializer never re-sorts.
func (g *Generator) visitMembers(it *apimodel.Item) *orderedmap.OrderedMap {
	members := orderedmap.New()
	for _, m := range it.MembersInOrder(g.order) {
		g.visit(m, members)
	}
	return members
}

// visitPackage writes the package fields into the target container itself:
// the package node is the document root, not keyed under its name. It has no
// isBeta and no deprecatedMessage.
func (g *Generator) visitPackage(it *apimodel.Item, out *orderedmap.OrderedMap) {
	if !it.SupportedName {
		return
	}
	out.Set("kind", it.Kind.String())
	out.Set("summary", spans(it.Docs.Summary))
	out.Set("remarks", spans(it.Docs.Remarks))
	out.Set("exports", g.visitMembers(it))
}

func (g *Generator) visitNamespace(it *apimodel.Item, out *orderedmap.OrderedMap) {
	if !it.SupportedName {
		return
	}
	node := orderedmap.New()
	node.Set("kind", it.Kind.String())
	node.Set("deprecatedMessage", spans(it.Docs.Deprecated))
	node.Set("summary", spans(it.Docs.Summary))
	node.Set("remarks", spans(it.Docs.Remarks))
	node.Set("isBeta", it.IsBeta())
	node.Set("exports", g.visitMembers(it))
	out.Set(it.Name, node)
}

func (g *Generator) visitStructuredType(it *apimodel.Item, out *orderedmap.OrderedMap) {
	if !it.SupportedName {
		return
	}
	node := orderedmap.New()
	node.Set("kind", it.Kind.String())
	node.Set("extends", it.Extends)
	node.Set("implements", it.Implements)
	node.Set("typeParameters", stringsOrEmpty(it.TypeParameters))
	node.Set("deprecatedMessage", spans(it.Docs.Deprecated))
	node.Set("summary", spans(it.Docs.Summary))
	node.Set("remarks", spans(it.Docs.Remarks))
	node.Set("isBeta", it.IsBeta())
	node.Set("members", g.visitMembers(it))
	out.Set(it.Name, node)
}

func (g *Generator) visitEnum(it *apimodel.Item, out *orderedmap.OrderedMap) {
	if !it.SupportedName {
		return
	}
	node := orderedmap.New()
	node.Set("kind", it.Kind.String())
	node.Set("deprecatedMessage", spans(it.Docs.Deprecated))
	node.Set("summary", spans(it.Docs.Summary))
	node.Set("remarks", spans(it.Docs.Remarks))
	node.Set("isBeta", it.IsBeta())
	node.Set("values", g.visitMembers(it))
	out.Set(it.Name, node)
}

// visitEnumValue emits the literal initializer text when the declaration has
// a value-producing token; a missing token degrades to the empty string.
func (g *Generator) visitEnumValue(it *apimodel.Item, out *orderedmap.OrderedMap) {
	if !it.SupportedName {
		return
	}
	node := orderedmap.New()
	node.Set("kind", it.Kind.String())
	node.Set("value", it.Decl.TrailingToken())
	node.Set("deprecatedMessage", spans(it.Docs.Deprecated))
	node.Set("summary", spans(it.Docs.Summary))
	node.Set("remarks", spans(it.Docs.Remarks))
	node.Set("isBeta", it.IsBeta())
	out.Set(it.Name, node)
}

func (g *Generator) visitFunction(it *apimodel.Item, out *orderedmap.OrderedMap) {
	if !it.SupportedName {
		return
	}
	node := orderedmap.New()
	node.Set("kind", it.Kind.String())
	node.Set("returnValue", g.returnValue(it))
	node.Set("parameters", g.parameterMap(it))
	node.Set("deprecatedMessage", spans(it.Docs.Deprecated))
	node.Set("summary", spans(it.Docs.Summary))
	node.Set("remarks", spans(it.Docs.Remarks))
	node.Set("isBeta", it.IsBeta())
	out.Set(it.Name, node)
}

// visitMethod handles ordinary methods and constructors. A method named with
// the reserved constructor identifier serializes as a constructor node with
// a reduced field set, regardless of its declared access modifier.
func (g *Generator) visitMethod(it *apimodel.Item, out *orderedmap.OrderedMap) {
	if !it.SupportedName {
		return
	}
	node := orderedmap.New()
	if it.Name == apimodel.ConstructorName || it.Kind == apimodel.KindConstructor {
		node.Set("kind", apimodel.KindConstructor.String())
		node.Set("signature", it.Decl.Text)
		node.Set("parameters", g.parameterMap(it))
		node.Set("deprecatedMessage", spans(it.Docs.Deprecated))
		node.Set("summary", spans(it.Docs.Summary))
		node.Set("remarks", spans(it.Docs.Remarks))
		out.Set(it.Name, node)
		return
	}
	node.Set("kind", apimodel.KindMethod.String())
	node.Set("signature", it.Decl.Text)
	node.Set("accessModifier", it.AccessModifier.String())
	node.Set("isOptional", it.IsOptional)
	node.Set("isStatic", it.IsStatic)
	node.Set("returnValue", g.returnValue(it))
	node.Set("parameters", g.parameterMap(it))
	node.Set("deprecatedMessage", spans(it.Docs.Deprecated))
	node.Set("summary", spans(it.Docs.Summary))
	node.Set("remarks", spans(it.Docs.Remarks))
	node.Set("isBeta", it.IsBeta())
	out.Set(it.Name, node)
}

// visitProperty skips setter-backed properties entirely; the getter
// counterpart, when present, is the sole representative of the name.
func (g *Generator) visitProperty(it *apimodel.Item, out *orderedmap.OrderedMap) {
	if !it.SupportedName {
		return
	}
	if it.Accessor == apimodel.AccessorSetter {
		return
	}
	node := orderedmap.New()
	node.Set("kind", it.Kind.String())
	node.Set("type", it.Type)
	node.Set("isOptional", it.IsOptional)
	node.Set("isReadOnly", it.IsReadOnly)
	node.Set("isStatic", it.IsStatic)
	node.Set("deprecatedMessage", spans(it.Docs.Deprecated))
	node.Set("summary", spans(it.Docs.Summary))
	node.Set("remarks", spans(it.Docs.Remarks))
	node.Set("isBeta", it.IsBeta())
	out.Set(it.Name, node)
}

func (g *Generator) visitModuleVariable(it *apimodel.Item, out *orderedmap.OrderedMap) {
	if !it.SupportedName {
		return
	}
	node := orderedmap.New()
	node.Set("kind", it.Kind.String())
	node.Set("type", it.Type)
	node.Set("value", it.Decl.TrailingToken())
	node.Set("deprecatedMessage", spans(it.Docs.Deprecated))
	node.Set("summary", spans(it.Docs.Summary))
	node.Set("remarks", spans(it.Docs.Remarks))
	node.Set("isBeta", it.IsBeta())
	out.Set(it.Name, node)
}

// visitUnknown is the placeholder for kinds the serializer does not model.
// The resulting node carries the kind tag and documentation only; the schema
// check downstream decides whether such a document is acceptable.
func (g *Generator) visitUnknown(it *apimodel.Item, out *orderedmap.OrderedMap) {
	if !it.SupportedName {
		return
	}
	node := orderedmap.New()
	node.Set("kind", it.Kind.String())
	node.Set("deprecatedMessage", spans(it.Docs.Deprecated))
	node.Set("summary", spans(it.Docs.Summary))
	node.Set("remarks", spans(it.Docs.Remarks))
	node.Set("isBeta", it.IsBeta())
	out.Set(it.Name, node)
}

// returnValue builds the {type, description} pair from the declared return
// type and the @returns documentation.
func (g *Generator) returnValue(it *apimodel.Item) *orderedmap.OrderedMap {
	rv := orderedmap.New()
	rv.Set("type", it.ReturnType)
	rv.Set("description", spans(it.Docs.Returns))
	return rv
}

// parameterMap merges the declared signature parameters with their doc
// entries, keyed by declared name in declared order. Parameters present in
// the signature but undocumented pass through with an empty description.
func (g *Generator) parameterMap(it *apimodel.Item) *orderedmap.OrderedMap {
	params := orderedmap.New()
	for _, p := range it.Parameters {
		doc := it.Docs.Parameters[p.Name]
		node := orderedmap.New()
		node.Set("name", p.Name)
		node.Set("description", spans(doc.Description))
		node.Set("isOptional", p.IsOptional)
		node.Set("isSpread", p.IsSpread)
		node.Set("type", p.Type)
		params.Set(p.Name, node)
	}
	return params
}

// spans normalizes absent rich text to an empty sequence so documents never
// contain null where the schema expects an array.
func spans(rt apimodel.RichText) apimodel.RichText {
	if rt == nil {
		return apimodel.RichText{}
	}
	return rt
}

func stringsOrEmpty(ss []string) []string {
	if ss == nil {
		return []string{}
	}
	return ss
}
