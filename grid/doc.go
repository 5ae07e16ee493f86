// Package grid defines the leaf value types shared by every gridsnake
// component: cells, grid dimensions, and unit-step directions.
//
// What:
//
//   - Cell is an immutable (Row, Col) coordinate pair compared by value.
//   - Dims describes a Rows×Cols grid and answers bounds and indexing
//     questions about it.
//   - Direction is one of the four orthogonal unit steps; the documented
//     search order is DefaultDirections.
//
// Why:
//
//   - The search engine and the renderer both reason about coordinates;
//     keeping the vocabulary in one dependency-free package lets each
//     depend on it without depending on the other.
//   - The direction order decides which of many Hamiltonian paths is
//     found first, so it is an explicit, documented constant rather than
//     incidental iteration order.
//
// Complexity:
//
//   - Every operation here is O(1) with zero allocations.
//
// Errors:
//
//   - None. All functions are pure; invalid coordinates simply report
//     false from Contains. Precondition errors are the caller's concern
//     (see package snake).
package grid
