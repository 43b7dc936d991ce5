// Package types defines the shape and sequence entities, the Catalog and
// RuleTable collaborator interfaces, and standard error types for the
// trackline layout system.
package types
