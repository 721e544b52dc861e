// Package service contains the application use cases. It orchestrates
// domain objects and the repositories defined in internal/store, applies
// transactional boundaries where an operation spans several repositories,
// and translates store failures into errors the API layer can map to HTTP
// responses.
//
// Services receive their dependencies through constructor injection and
// never depend on a concrete storage implementation.
package service
