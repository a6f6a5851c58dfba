package storage

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
)

// Backend identifiers accepted by the configuration.
const (
	BackendMemory  = "memory"
	BackendSurreal = "surrealdb"
)

var (
	openOnce sync.Once
	opened   Storage
	openErr  error
)

// Open picks the backend named by the configuration and memoizes it: every
// caller for the lifetime of the process receives the same instance, so the
// two backends can never be mixed within one run.
func Open(backend string, surreal SurrealConfig) (Storage, error) {
	openOnce.Do(func() {
		opened, openErr = newBackend(backend, surreal)
	})
	return opened, openErr
}

func newBackend(backend string, surreal SurrealConfig) (Storage, error) {
	switch backend {
	case BackendMemory, "":
		log.Info("using in-memory storage backend")
		return NewMemory(), nil
	case BackendSurreal:
		log.Info("using surrealdb storage backend", "url", surreal.URL)
		return NewSurreal(surreal), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}
