package view

import "PharmaKeeper/internal/cli/model"

// Snapshot - выгрузка склада аптеки для команды export.
type Snapshot struct {
	Pharmacy     string              `yaml:"pharmacy"`
	ExportedAt   string              `yaml:"exported_at"` // RFC3339
	Medicines    []model.Medicine    `yaml:"medicines"`
	GeneralItems []model.GeneralItem `yaml:"general_items"`
}
