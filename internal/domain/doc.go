// Package domain contains the core domain model for lunar.
//
// The domain is transport- and persistence-agnostic: it does not depend on YAML parsing
// or the filesystem. The sexagenary tables are process-wide, read-only data; resolving
// a year and localizing its name are pure functions over them.
package domain
