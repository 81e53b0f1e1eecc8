// Package model defines the core types shared across recgo.
//
// # Types
//
//   - ItemID: Caller-assigned item identifier, unique within a batch (uint32)
//   - Item: Unit of comparison, an identifier plus a feature vector and
//     an optional score slot populated by the ranking engine
//   - Neighbor: Ranked search result with ID, feature vector and score
//
// Items are read-only once constructed; the only sanctioned mutation
// is WithResult, which returns a scored copy and leaves the original
// untouched.
package model
