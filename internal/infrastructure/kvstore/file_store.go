package kvstore

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/agisales/proposals-api/pkg/logger"
)

var _ Store = (*FileStore)(nil)

// FileStore guarda cada clave namespaced como un archivo JSON bajo dir:
// "<dir>/<prefix>:<key>.json". El mutex cubre solo el proceso actual; entre
// procesos rige last-write-wins.
type FileStore struct {
	dir    string
	prefix string
	log    *logger.Logger
	mu     sync.Mutex
}

// NewFileStore construye el adapter y asegura que dir exista. Si la creación del
// directorio falla, el store queda operativo pero degradado (todo fail-soft).
func NewFileStore(dir, prefix string, log *logger.Logger) *FileStore {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Error().Err(err).Str("dir", dir).Msg("kvstore: no se pudo crear el directorio")
	}
	return &FileStore{dir: dir, prefix: prefix, log: log}
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, s.prefix+":"+key+".json")
}

// Set serializa value y lo escribe; cualquier error se loguea y se descarta.
func (s *FileStore) Set(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := json.Marshal(value)
	if err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("kvstore: serializar valor")
		return
	}
	if err := os.WriteFile(s.path(key), data, 0o644); err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("kvstore: escribir clave")
	}
}

// Get lee y deserializa la clave en dest.
func (s *FileStore) Get(key string, dest any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		s.log.Error().Err(err).Str("key", key).Msg("kvstore: leer clave")
		return false, err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		// Contenido corrupto: misma semántica que clave ausente.
		s.log.Error().Err(err).Str("key", key).Msg("kvstore: deserializar valor")
		return false, nil
	}
	return true, nil
}

// Remove borra la clave; ausencia no es error.
func (s *FileStore) Remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(s.path(key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		s.log.Error().Err(err).Str("key", key).Msg("kvstore: borrar clave")
	}
}

// Clear borra solo los archivos del namespace propio.
func (s *FileStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		s.log.Error().Err(err).Str("dir", s.dir).Msg("kvstore: listar claves")
		return
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), s.prefix+":") {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, e.Name())); err != nil {
			s.log.Error().Err(err).Str("file", e.Name()).Msg("kvstore: borrar clave")
		}
	}
}
