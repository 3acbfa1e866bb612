package commands

import (
	"bytes"
	"context"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	reposqlite "PharmaKeeper/internal/cli/repo/sqlite"
	"PharmaKeeper/internal/config"

	"go.uber.org/zap"
)

// withTempConfig переопределяет пользовательские каталоги на время теста,
// чтобы артефакты (активная аптека, базы) создавались в temp.
func withTempConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if runtime.GOOS == "windows" {
		t.Setenv("APPDATA", dir)
	} else {
		t.Setenv("XDG_CONFIG_HOME", dir)
	}
	return dir
}

// newTestApp - App поверх временного каталога данных.
func newTestApp(t *testing.T) *App {
	t.Helper()
	dir := withTempConfig(t)
	cfg := &config.Config{DataDir: filepath.Join(dir, "db"), LogLevel: "warn"}
	reg := reposqlite.NewRegistry(cfg.DataDir, zap.NewNop().Sugar())
	t.Cleanup(reg.ShutdownAll)
	return NewApp(cfg, reg, zap.NewNop().Sugar())
}

// перехват stdout на время теста
func withStdoutCapture(t *testing.T, fn func()) string {
	t.Helper()
	old := Out
	var buf bytes.Buffer
	Out = &buf
	defer func() { Out = old }()
	fn()
	return buf.String()
}

// withInput подменяет ввод (подтверждения, shell).
func withInput(t *testing.T, s string) {
	t.Helper()
	old := In
	In = strings.NewReader(s)
	t.Cleanup(func() { In = old })
}

// run выполняет команду через диспетчер и возвращает код и вывод.
func run(t *testing.T, app *App, args ...string) (int, string) {
	t.Helper()
	var code int
	out := withStdoutCapture(t, func() { code = Dispatch(context.Background(), app, args) })
	return code, out
}

