// Package avl implements a height-balanced binary search tree over int
// keys whose nodes are handed out as handles.
//
// Insert returns the *tree.Node it created, and Remove takes that same
// node back: removal is by identity, not by key, so a caller that wants
// to delete a particular entry keeps the handle it got from Insert (or
// looks one up with Find). Removing a node with two children moves its
// in-order predecessor into its place, so every other handle stays valid
// and keeps its key.
//
// Balance is maintained incrementally. Each node's Balance field is
// height(left) - height(right); after a node is linked or unlinked,
// the change is propagated upward to the root, and a second upward pass
// rotates wherever a Balance reached +2 or -2.
//
// A Tree is not safe for concurrent use. Callers that share one must
// serialize every access, reads included, since a rotation rewrites
// ancestor links that a concurrent reader could observe half-done.
//
// Broken invariants are never returned as errors. They panic with a
// *tree.Fault.
package avl
