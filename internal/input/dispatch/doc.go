// Package dispatch provides the per-node-type handler table mapping action
// IDs to behavior.
//
// Tables are explicit and statically built, one per node type; there is no
// reflection or method scanning. Specialized node types derive their table
// from the base type's and override individual entries.
package dispatch
