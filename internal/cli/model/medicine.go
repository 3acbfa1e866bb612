package model

import "strings"

// MedicineType - форма выпуска лекарства. В схеме хранится как свободный текст.
type MedicineType string

const (
	TypeStrip  MedicineType = "strip"
	TypeTube   MedicineType = "tube"
	TypePowder MedicineType = "powder"
	TypeLiquid MedicineType = "liquid"
)

// MedicineTypes перечисляет допустимые формы выпуска в порядке отображения.
var MedicineTypes = []MedicineType{TypeStrip, TypeTube, TypePowder, TypeLiquid}

// ParseMedicineType нормализует ввод пользователя и проверяет его по перечислению.
func ParseMedicineType(s string) (MedicineType, bool) {
	v := MedicineType(strings.ToLower(strings.TrimSpace(s)))
	for _, t := range MedicineTypes {
		if v == t {
			return t, true
		}
	}
	return "", false
}

// Medicine - строка таблицы medicines.
type Medicine struct {
	ID         int64   `gorm:"column:id;primaryKey;autoIncrement" db:"id" yaml:"id"`
	Name       string  `gorm:"column:name" db:"name" yaml:"name"`
	Type       string  `gorm:"column:type" db:"type" yaml:"type"`
	Quantity   string  `gorm:"column:quantity" db:"quantity" yaml:"quantity"`
	ExpiryDate string  `gorm:"column:expiry_date" db:"expiry_date" yaml:"expiry_date"` // YYYY-MM-DD как текст
	BatchNo    string  `gorm:"column:batch_no" db:"batch_no" yaml:"batch_no"`
	Price      float64 `gorm:"column:price" db:"price" yaml:"price"`
}

// TableName фиксирует имя таблицы для gorm.
func (Medicine) TableName() string { return "medicines" }
