package sqlite

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"unicode"

	"go.uber.org/zap"
)

// dbFileName - имя файла базы внутри каталога аптеки.
const dbFileName = "pharmacy.sqlite"

const maxNameLen = 64

var ErrInvalidName = errors.New("invalid pharmacy name")

// ValidateName проверяет, что имя аптеки можно использовать как имя каталога.
// Допустимы буквы, цифры, пробел, точка, подчёркивание и дефис.
func ValidateName(name string) error {
	if name == "" || strings.TrimSpace(name) != name {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	if name == "." || name == ".." || len(name) > maxNameLen {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			continue
		}
		switch r {
		case ' ', '.', '_', '-':
			continue
		}
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

// Registry хранит по одному Connection на каждое имя базы.
type Registry struct {
	baseDir string
	logger  *zap.SugaredLogger
	open    openFunc

	mu    sync.Mutex
	conns map[string]*Connection
}

func NewRegistry(baseDir string, logger *zap.SugaredLogger) *Registry {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Registry{
		baseDir: baseDir,
		logger:  logger,
		conns:   make(map[string]*Connection),
	}
}

// PathFor возвращает путь к файлу базы для имени: <baseDir>/<name>/pharmacy.sqlite.
func (r *Registry) PathFor(name string) string {
	return filepath.Join(r.baseDir, name, dbFileName)
}

// Initialize подготавливает базу с именем name. Повторный вызов для готовой базы
// возвращает тот же Connection без повторного создания таблиц.
// Если запись есть, но не согласована (не готова или файл пропал), она заменяется новой.
// Неудачная инициализация не повторяется до Shutdown.
func (r *Registry) Initialize(ctx context.Context, name string) (*Connection, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if c, ok := r.conns[name]; ok {
		switch {
		case r.consistent(c):
			r.logger.Debugw("reattach to existing connection", "pharmacy", name)
			return c, nil
		case c.State() == StateFailed:
			return nil, fmt.Errorf("%w: %q: %w", ErrNotReady, name, c.Err())
		default:
			r.logger.Infow("connection is inconsistent, creating a new one", "pharmacy", name, "state", c.State().String())
		}
	}

	c := newConnection(name, r.PathFor(name), r.logger, r.open)
	r.conns[name] = c
	if err := c.initialize(ctx); err != nil {
		r.logger.Errorw("database initialization failed", "pharmacy", name, "error", err)
		return nil, err
	}
	r.logger.Infow("database ready", "pharmacy", name, "path", c.Path())
	return c, nil
}

// consistent: запись готова и файл базы на месте.
func (r *Registry) consistent(c *Connection) bool {
	if c.State() != StateReady {
		return false
	}
	_, err := os.Stat(c.Path())
	return err == nil
}

// Lookup возвращает зарегистрированный Connection (в любом состоянии).
func (r *Registry) Lookup(name string) (*Connection, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.conns[name]
	return c, ok
}

// Names возвращает отсортированный список зарегистрированных имён.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.conns))
	for n := range r.conns {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Shutdown дожидается текущего unit of work и снимает запись с регистрации.
// Дальнейшие вызовы на старом Connection вернут ErrNotReady.
// Нельзя вызывать из unit of work той же базы: Shutdown ждёт свободный слот и зависнет.
func (r *Registry) Shutdown(name string) {
	r.mu.Lock()
	c, ok := r.conns[name]
	delete(r.conns, name)
	r.mu.Unlock()
	if !ok {
		return
	}

	c.slot <- struct{}{}
	c.setState(StateUninitialized, nil)
	<-c.slot
	r.logger.Debugw("connection released", "pharmacy", name)
}

// ShutdownAll освобождает все зарегистрированные базы.
func (r *Registry) ShutdownAll() {
	for _, name := range r.Names() {
		r.Shutdown(name)
	}
}
