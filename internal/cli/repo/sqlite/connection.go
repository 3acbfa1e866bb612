package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

// driverName - имя драйвера modernc.org/sqlite в database/sql.
const driverName = "sqlite"

// ErrNotReady возвращается при попытке работы с базой, которая не была успешно инициализирована.
var ErrNotReady = errors.New("database is not ready")

// State - состояние подключения к базе аптеки.
type State int32

const (
	StateUninitialized State = iota
	StateInitializing
	StateReady
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateInitializing:
		return "initializing"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int32(s))
	}
}

// Handle - открытое подключение, доступное внутри одного unit of work.
// Оба представления работают поверх одного и того же *sql.DB.
type Handle struct {
	sqlx *sqlx.DB
	orm  *gorm.DB
}

// SQL возвращает подключение для сырых параметризованных запросов.
func (h *Handle) SQL() *sqlx.DB { return h.sqlx }

// ORM возвращает gorm поверх того же подключения.
func (h *Handle) ORM() *gorm.DB { return h.orm }

// UnitOfWork - пользовательская функция, выполняющая запросы на открытом подключении.
type UnitOfWork func(ctx context.Context, h *Handle) error

// openFunc открывает *sql.DB для файла базы. Подменяется в тестах.
type openFunc func(ctx context.Context, path string) (*sql.DB, error)

// Connection управляет одной именованной базой: открывает её на время unit of work
// и гарантированно закрывает после, а также сериализует все вызовы по этому имени.
type Connection struct {
	name   string
	path   string
	logger *zap.SugaredLogger
	open   openFunc

	// slot - однослотовая очередь: в каждый момент выполняется не больше одного unit of work.
	slot chan struct{}

	mu      sync.RWMutex
	state   State
	initErr error
}

func newConnection(name, path string, logger *zap.SugaredLogger, open openFunc) *Connection {
	if open == nil {
		open = openSQLite
	}
	return &Connection{
		name:   name,
		path:   path,
		logger: logger,
		open:   open,
		slot:   make(chan struct{}, 1),
		state:  StateUninitialized,
	}
}

// Name возвращает логическое имя базы (имя аптеки).
func (c *Connection) Name() string { return c.name }

// Path возвращает путь к файлу базы.
func (c *Connection) Path() string { return c.path }

// State возвращает текущее состояние.
func (c *Connection) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Err возвращает причину неудачной инициализации (если была).
func (c *Connection) Err() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.initErr
}

func (c *Connection) setState(s State, cause error) {
	c.mu.Lock()
	c.state = s
	c.initErr = cause
	c.mu.Unlock()
}

// initialize создаёт каталог базы и обе таблицы. Выполняется синхронно.
func (c *Connection) initialize(ctx context.Context) error {
	c.setState(StateInitializing, nil)

	if err := os.MkdirAll(filepath.Dir(c.path), 0o700); err != nil {
		c.setState(StateFailed, err)
		return fmt.Errorf("create database dir for %q: %w", c.name, err)
	}

	var initErr error
	c.RunWithConnection(ctx,
		func(ctx context.Context, h *Handle) error {
			_, err := h.SQL().ExecContext(ctx, initialDDL())
			return err
		},
		func() { c.logger.Debugw("Tables created successfully", "pharmacy", c.name, "path", c.path) },
		func(err error) { initErr = err },
	)
	if initErr != nil {
		c.setState(StateFailed, initErr)
		return fmt.Errorf("initialize %q: %w", c.name, initErr)
	}

	c.setState(StateReady, nil)
	return nil
}

// RunWithConnection открывает подключение, выполняет work и закрывает подключение
// при любом исходе. Ошибка закрытия только логируется.
// При успехе вызывается onSuccess, при ошибке - onError; без onError ошибка поглощается.
func (c *Connection) RunWithConnection(ctx context.Context, work UnitOfWork, onSuccess func(), onError func(error)) {
	if err := c.run(ctx, work); err != nil {
		if onError != nil {
			onError(err)
			return
		}
		c.logger.Debugw("unit of work failed without error handler", "pharmacy", c.name, "error", err)
		return
	}
	if onSuccess != nil {
		onSuccess()
	}
}

// Do - форма RunWithConnection, возвращающая ошибку вызывающему коду.
func (c *Connection) Do(ctx context.Context, work UnitOfWork) error {
	var res error
	c.RunWithConnection(ctx, work, nil, func(err error) { res = err })
	return res
}

func (c *Connection) run(ctx context.Context, work UnitOfWork) (err error) {
	log := c.logger.With("pharmacy", c.name, "op_id", uuid.NewString())

	// ждём своей очереди
	select {
	case c.slot <- struct{}{}:
	case <-ctx.Done():
		return fmt.Errorf("wait for %q: %w", c.name, ctx.Err())
	}
	defer func() { <-c.slot }()

	switch st := c.State(); st {
	case StateReady, StateInitializing:
	default:
		if cause := c.Err(); cause != nil {
			return fmt.Errorf("%w: %q: %w", ErrNotReady, c.name, cause)
		}
		return fmt.Errorf("%w: %q is %s", ErrNotReady, c.name, st)
	}

	h, closeFn, err := c.openHandle(ctx)
	if err != nil {
		return fmt.Errorf("open %q: %w", c.name, err)
	}
	log.Debugw("connection opened", "path", c.path)
	defer func() {
		if cerr := closeFn(); cerr != nil {
			log.Debugw("connection close failed", "error", cerr)
			return
		}
		log.Debugw("connection closed")
	}()
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("unit of work panicked: %v", p)
		}
	}()

	return work(ctx, h)
}

func (c *Connection) openHandle(ctx context.Context) (*Handle, func() error, error) {
	sqlDB, err := c.open(ctx, c.path)
	if err != nil {
		return nil, nil, err
	}
	orm, err := gorm.Open(gormsqlite.Dialector{DriverName: driverName, Conn: sqlDB}, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		_ = sqlDB.Close()
		return nil, nil, err
	}
	h := &Handle{sqlx: sqlx.NewDb(sqlDB, driverName), orm: orm}
	return h, sqlDB.Close, nil
}

// openSQLite открывает файл базы через modernc.org/sqlite и проверяет подключение.
func openSQLite(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open(driverName, path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
