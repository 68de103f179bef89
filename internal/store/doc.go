// Package store defines the persistence interfaces and sentinel errors used
// by the application. Implementations live under internal/platform.
package store
