// Package apimodel defines the documented item model: the kind-tagged,
// read-only tree of an analyzed API surface that the report generator
// consumes.
//
// The model is the hand-off contract with the upstream analyzer. Every item
// carries a name, a kind discriminator, a release tag, and a structured
// documentation bundle; container kinds additionally expose their members in
// a stable order selected by an OrderPolicy. The package performs no source
// parsing and no type resolution.
package apimodel
