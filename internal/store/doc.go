// Package store defines the persistence interfaces and error types used by
// the service layer. Implementations live under internal/platform.
package store
