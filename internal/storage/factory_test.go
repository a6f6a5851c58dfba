package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBackend(t *testing.T) {
	tests := []struct {
		name    string
		backend string
		want    any
		wantErr bool
	}{
		{name: "memory", backend: "memory", want: &Memory{}},
		{name: "default is memory", backend: "", want: &Memory{}},
		{name: "surrealdb", backend: "surrealdb", want: &Surreal{}},
		{name: "unknown", backend: "postgres", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := newBackend(tt.backend, SurrealConfig{URL: "ws://localhost:8000/rpc"})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, store)
		})
	}
}

func TestOpenMemoized(t *testing.T) {
	first, err := Open(BackendMemory, SurrealConfig{})
	require.NoError(t, err)

	// A different backend name on a later call must not construct a second
	// instance; the first choice wins for the process lifetime.
	second, err := Open(BackendSurreal, SurrealConfig{})
	require.NoError(t, err)
	assert.Same(t, first, second)
}
