package model

// GeneralItem - строка таблицы general_items (сопутствующие товары).
type GeneralItem struct {
	ID       int64   `gorm:"column:id;primaryKey;autoIncrement" db:"id" yaml:"id"`
	Name     string  `gorm:"column:name" db:"name" yaml:"name"`
	Quantity string  `gorm:"column:quantity" db:"quantity" yaml:"quantity"`
	Price    float64 `gorm:"column:price" db:"price" yaml:"price"`
}

// TableName фиксирует имя таблицы для gorm.
func (GeneralItem) TableName() string { return "general_items" }
