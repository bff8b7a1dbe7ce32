// Package store defines the excuse repository abstraction and the
// repository-tier operations and errors.
//
// An ExcuseRepository produces an excuse for a request. Concrete variants live
// under internal/platform (agent, prepopulated) and are chosen once, at
// construction, by the composition root. Callers above this layer only see the
// interface and never inspect which variant they hold.
package store
