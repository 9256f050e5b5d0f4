// Package models defines the core domain models for Poise.
//
// # Models
//
//   - Project: a construction project with its fees, deadline, and the
//     people assigned to it
//   - Person: a customer, architect, contractor, engineer, or manager
//   - ProjectSummary: the reduced id/name/status view used by list screens
//
// # Design Principles
//
//  1. **Weak references**: a Project links to people by integer ID only.
//     There is no ownership and no lifecycle coupling; a Person exists
//     independently of any project. 0 means "not assigned".
//  2. **Avoid circular references**: use IDs instead of pointers for
//     relationships.
//  3. **Explicit optionality**: partial-update requests use Optional
//     fields rather than sentinel values, so a legitimate zero (an ERF
//     number of 0, an empty address) is never confused with "not
//     supplied".
package models
