// Package store defines the persistence interfaces consumed by the service
// and API layers, together with the sentinel errors every implementation
// maps its backend-specific failures onto. Concrete implementations live
// under internal/platform.
package store
