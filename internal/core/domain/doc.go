// Package domain defines the core business entities for ScholarScout.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - PaperRecord: A paper fetched from the academic graph
//   - AuthorRollup: A per-author summary folded from a paper batch
//   - AuthorProfile: Career-level author metrics from enrichment
//   - CodeHostProfile: A developer profile from the code host
//   - CompositeProfile: The fused academic + code-host view
//
// All defaulting of loosely-typed upstream JSON happens at the connector
// boundary; entities in this package always hold well-formed values
// (counts are never negative, a zero Year means the year is unknown).
package domain
