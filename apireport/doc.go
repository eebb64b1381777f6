// Package apireport turns a documented item tree into the canonical API
// document: a single schema-conformant JSON object describing exactly the
// released surface of a package.
//
// The traversal is a synchronous, depth-first visit over the tree. A
// visibility gate suppresses Alpha/Internal items together with their entire
// subtrees; per-kind handlers build insertion-ordered nodes so key order in
// the output equals visitation order, which keeps documents diff-stable
// across runs. The finished document is persisted first and then validated
// against an embedded schema; a violation is fatal and surfaces as an Issues
// value naming the offending paths.
package apireport
