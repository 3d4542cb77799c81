// Package scc condenses a directed core.Graph into its strongly
// connected components using Kosaraju's two-pass algorithm.
//
// Pass one runs a full depth-first traversal of the graph to obtain
// finish order. Pass two traverses the transpose, seeding each sweep
// from the unassigned vertex with the highest finish rank; every sweep
// collects exactly one component.
//
// Components come back both as explicit vertex lists and as a
// membership map keyed by vertex, so callers can answer "same
// component?" in O(1) without scanning the lists.
package scc
