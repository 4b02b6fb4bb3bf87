// Package domain contains the core entities and errors of the string saver.
//
// This package has no dependencies on infrastructure concerns (database
// drivers, logging, CLI) and contains only the record shape and the rules for
// presenting it.
//
// # Entities
//
//   - [SavedEntry]: the single record kind written on each invocation
//   - [Document]: a generic record returned by a lookup
//   - [Filter] and [Sort]: the query shape understood by storage gateways
//
// # Errors
//
// Every storage failure is reported as a [*StorageError], which matches
// [ErrStorage] under errors.Is.
package domain
