// Package gridsnake finds Hamiltonian "snake" paths on 2-D grids — a
// sequence of 4-connected moves that visits every cell exactly once,
// starting and ending at caller-chosen cells.
//
// 🐍 What is gridsnake?
//
//	A small, deterministic backtracking-search library offering:
//		• Recursive strategy: depth-first search on the native call stack
//		• Iterative strategy: the same search as an explicit frame-stack state machine
//		• Cross-checked equivalence: both strategies return the identical path
//		• A glyph renderer: ○/S/E points joined by ↓ ↑ → ← arrows
//
// ✨ Why choose gridsnake?
//
//   - Deterministic – fixed, documented direction order; repeat calls repeat results
//   - Exhaustive – "no solution" means the whole search space was explored
//   - Pure Go – no cgo, no hidden deps, no shared state between calls
//
// Everything is organized under two subpackages plus a demo driver:
//
//	grid/          — leaf grid model: Cell, Dims, Direction, bounds checking
//	snake/         — the search engine (both strategies) and the path renderer
//	cmd/gridsnake/ — command-line demonstration driver with timing
//
// Quick ASCII example (2×3 grid, S=(0,0), E=(1,0)):
//
//	S → ○ → ○
//	        ↓
//	E ← ○ ← ○
//
//	go get github.com/pathbound/gridsnake/snake
package gridsnake
