package bootstrap

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	fsrepo "PharmaKeeper/internal/cli/repo/fs"
	reposqlite "PharmaKeeper/internal/cli/repo/sqlite"
	"PharmaKeeper/internal/cli/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// helper: временный пользовательский конфиг для тестов
func setTempCfg(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if runtime.GOOS == "windows" {
		t.Setenv("APPDATA", dir)
	} else {
		t.Setenv("XDG_CONFIG_HOME", dir)
	}
	return dir
}

func newRegistry(t *testing.T, dir string) *reposqlite.Registry {
	t.Helper()
	reg := reposqlite.NewRegistry(filepath.Join(dir, "db"), zap.NewNop().Sugar())
	t.Cleanup(reg.ShutdownAll)
	return reg
}

func TestOpenInventory_SuccessAndReuse(t *testing.T) {
	dir := setTempCfg(t)
	reg := newRegistry(t, dir)
	st := fsrepo.PharmacyFSStore{}
	require.NoError(t, st.SavePharmacy("Central"))

	inv, err := OpenInventory(context.Background(), reg, st)
	require.NoError(t, err)
	assert.Equal(t, "Central", inv.Pharmacy)

	name := "Face mask"
	_, rows, err := inv.Items.Add(context.Background(), service.GeneralItemForm{Name: &name})
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	// повторное открытие подхватывает то же подключение
	inv2, err := OpenInventory(context.Background(), reg, st)
	require.NoError(t, err)
	assert.Same(t, inv.Conn, inv2.Conn)

	list, err := inv2.Items.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = os.Stat(reg.PathFor("Central"))
	assert.NoError(t, err)
}

func TestOpenInventory_ErrorWhenNoPharmacy(t *testing.T) {
	dir := setTempCfg(t)
	reg := newRegistry(t, dir)
	_, err := OpenInventory(context.Background(), reg, fsrepo.PharmacyFSStore{})
	assert.True(t, errors.Is(err, fsrepo.ErrNoActivePharmacy))
}

// база не создаётся, если каталог данных указывает на обычный файл
func TestOpenPharmacy_FailsWhenDataDirIsFile(t *testing.T) {
	dir := setTempCfg(t)
	tmpFile := filepath.Join(dir, "not_dir")
	require.NoError(t, os.WriteFile(tmpFile, []byte("x"), 0o600))

	reg := reposqlite.NewRegistry(tmpFile, zap.NewNop().Sugar())
	_, err := OpenPharmacy(context.Background(), reg, "Central")
	require.Error(t, err)

	conn, ok := reg.Lookup("Central")
	require.True(t, ok)
	assert.Equal(t, reposqlite.StateFailed, conn.State())
}

func TestOpenPharmacy_InvalidName(t *testing.T) {
	dir := setTempCfg(t)
	reg := newRegistry(t, dir)
	_, err := OpenPharmacy(context.Background(), reg, "../x")
	assert.ErrorIs(t, err, reposqlite.ErrInvalidName)
}
