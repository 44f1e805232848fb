// Package services implements the recruiting operations on top of the
// driven ports. Services contain the core business logic: folding paper
// batches into author rollups, ranking and scoring, and merging the two
// identity spaces into composite profiles.
//
// Services are pure Go with no external dependencies; all network
// access goes through the driven ports.
package services
