package sqlite

import (
	_ "embed"
)

// Схема базы аптеки: обе таблицы создаются с IF NOT EXISTS.
//
//go:embed migrations/001_init.sql
var initDDL string

func initialDDL() string { return initDDL }
