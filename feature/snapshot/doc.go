// Package snapshot persists built energy systems to the relational database.
//
// Every save creates a Run record (UUID, counters, total energy) plus one
// TechnologyRow per technology and one FuelRow per flow, all inside a single
// transaction. The feature also exposes the stored runs over HTTP for
// auditing past builds.
//
// The database connection is optional: without it the feature reports itself
// disabled and the rest of the application runs unaffected.
package snapshot
