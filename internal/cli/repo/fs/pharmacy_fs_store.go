package fs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"PharmaKeeper/internal/cli/repo"
)

// ErrNoActivePharmacy - ни одна аптека не выбрана (login не выполнялся или был logout).
var ErrNoActivePharmacy = errors.New("no active pharmacy")

// PharmacyFSStore - файловое хранилище выбранной аптеки для CLI.
// Файлы лежат в <UserConfigDir>/PharmaKeeper.
type PharmacyFSStore struct{}

var _ repo.PharmacyContextStore = PharmacyFSStore{}

func configDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	p := filepath.Join(dir, "PharmaKeeper")
	if err := os.MkdirAll(p, 0o700); err != nil {
		return "", err
	}
	return p, nil
}

func activePharmacyPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "active_pharmacy"), nil
}

func lastCheckPath(pharmacy string) (string, error) {
	if pharmacy == "" {
		return "", errors.New("empty pharmacy for last_expiry_check")
	}
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	// отдельный файл на аптеку
	return filepath.Join(dir, "last_expiry_check_"+pharmacy), nil
}

func readTrimmed(p string) (string, error) {
	b, err := os.ReadFile(p)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(b), " \t\r\n"), nil
}

// SavePharmacy запоминает выбранную аптеку.
func (PharmacyFSStore) SavePharmacy(name string) error {
	if name == "" {
		return errors.New("empty pharmacy name")
	}
	p, err := activePharmacyPath()
	if err != nil {
		return err
	}
	return os.WriteFile(p, []byte(name), 0o600)
}

// LoadPharmacy возвращает выбранную аптеку или ErrNoActivePharmacy.
func (PharmacyFSStore) LoadPharmacy() (string, error) {
	p, err := activePharmacyPath()
	if err != nil {
		return "", err
	}
	name, err := readTrimmed(p)
	if errors.Is(err, os.ErrNotExist) {
		return "", ErrNoActivePharmacy
	}
	if err != nil {
		return "", err
	}
	if name == "" {
		return "", ErrNoActivePharmacy
	}
	return name, nil
}

// ClearPharmacy забывает выбранную аптеку. Отсутствие файла - не ошибка.
func (PharmacyFSStore) ClearPharmacy() error {
	p, err := activePharmacyPath()
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// SaveLastExpiryCheck сохраняет дату последней проверки сроков годности (YYYY-MM-DD) для аптеки.
func SaveLastExpiryCheck(pharmacy, date string) error {
	p, err := lastCheckPath(pharmacy)
	if err != nil {
		return err
	}
	return os.WriteFile(p, []byte(date), 0o600)
}

// LoadLastExpiryCheck читает дату последней проверки; пустая строка, если проверок не было.
func LoadLastExpiryCheck(pharmacy string) (string, error) {
	p, err := lastCheckPath(pharmacy)
	if err != nil {
		return "", err
	}
	v, err := readTrimmed(p)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read last expiry check: %w", err)
	}
	return v, nil
}
