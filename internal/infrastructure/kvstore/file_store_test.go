package kvstore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agisales/proposals-api/internal/infrastructure/kvstore"
	"github.com/agisales/proposals-api/pkg/logger"
)

func newStore(t *testing.T, dir, prefix string) *kvstore.FileStore {
	t.Helper()
	return kvstore.NewFileStore(dir, prefix, logger.Nop())
}

func TestFileStore_SetGetRoundtrip(t *testing.T) {
	s := newStore(t, t.TempDir(), "app")

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}
	s.Set("config", payload{Name: "demo", Count: 3})

	var got payload
	found, err := s.Get("config", &got)
	require.NoError(t, err)
	require.True(t, found, "la clave recién escrita debe existir")
	assert.Equal(t, payload{Name: "demo", Count: 3}, got)
}

func TestFileStore_GetClaveInexistente(t *testing.T) {
	s := newStore(t, t.TempDir(), "app")

	var got string
	found, err := s.Get("nada", &got)
	require.NoError(t, err, "clave ausente no es error de infraestructura")
	assert.False(t, found)
}

// Contenido corrupto en disco: misma semántica que clave ausente, sin error.
func TestFileStore_ContenidoCorruptoEsAusente(t *testing.T) {
	dir := t.TempDir()
	s := newStore(t, dir, "app")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "app:roto.json"), []byte("{no es json"), 0o644))

	var got map[string]string
	found, err := s.Get("roto", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFileStore_Remove(t *testing.T) {
	s := newStore(t, t.TempDir(), "app")

	s.Set("token", "abc")
	s.Remove("token")

	var got string
	found, _ := s.Get("token", &got)
	assert.False(t, found, "la clave borrada no debe existir")

	// Remove sobre clave inexistente es no-op
	s.Remove("token")
}

// Clear borra solo las claves del namespace propio y deja intactas las ajenas.
func TestFileStore_ClearRespetaNamespace(t *testing.T) {
	dir := t.TempDir()
	mine := newStore(t, dir, "app")
	other := newStore(t, dir, "otra")

	mine.Set("token", "abc")
	mine.Set("user", map[string]string{"id": "1"})
	other.Set("token", "xyz")

	mine.Clear()

	var got string
	found, _ := mine.Get("token", &got)
	assert.False(t, found, "las claves del namespace limpiado no deben existir")

	found, _ = other.Get("token", &got)
	require.True(t, found, "las claves de otros namespaces deben sobrevivir al Clear")
	assert.Equal(t, "xyz", got)
}

// Dos stores con prefijos distintos sobre el mismo directorio no se pisan.
func TestFileStore_NamespacesAislados(t *testing.T) {
	dir := t.TempDir()
	a := newStore(t, dir, "a")
	b := newStore(t, dir, "b")

	a.Set("k", "valor-a")
	b.Set("k", "valor-b")

	var got string
	found, _ := a.Get("k", &got)
	require.True(t, found)
	assert.Equal(t, "valor-a", got)

	found, _ = b.Get("k", &got)
	require.True(t, found)
	assert.Equal(t, "valor-b", got)
}
