package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"PharmaKeeper/internal/cli/model"
)

// ErrValidation - ошибка заполнения формы.
var ErrValidation = errors.New("validation failed")

// DateLayout - формат сроков годности.
const DateLayout = "2006-01-02"

// MedicineForm - поля формы лекарства. nil означает «поле не указано».
type MedicineForm struct {
	Name       *string
	Type       *string
	Quantity   *string
	ExpiryDate *string
	BatchNo    *string
	Price      *string
}

// GeneralItemForm - поля формы сопутствующего товара.
type GeneralItemForm struct {
	Name     *string
	Quantity *string
	Price    *string
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func parseName(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", invalid("name is required")
	}
	return s, nil
}

// parsePrice: пустая строка - 0.
func parsePrice(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, invalid("price %q is not a number", s)
	}
	return v, nil
}

func parseType(s string) (string, error) {
	if strings.TrimSpace(s) == "" {
		return "", nil
	}
	t, ok := model.ParseMedicineType(s)
	if !ok {
		return "", invalid("type %q must be one of %s", s, typeList())
	}
	return string(t), nil
}

func typeList() string {
	names := make([]string, len(model.MedicineTypes))
	for i, t := range model.MedicineTypes {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}

// ParseDate проверяет дату в формате YYYY-MM-DD. Пустая строка допустима.
func ParseDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	if _, err := time.Parse(DateLayout, s); err != nil {
		return "", invalid("date %q must be YYYY-MM-DD", s)
	}
	return s, nil
}

// requireAll проверяет, что для нового лекарства заполнены все поля формы.
func (f MedicineForm) requireAll() error {
	if f.Name == nil {
		return invalid("name is required")
	}
	if _, err := parseName(*f.Name); err != nil {
		return err
	}
	var missing []string
	for _, fld := range []struct {
		name string
		v    *string
	}{
		{"type", f.Type},
		{"quantity", f.Quantity},
		{"expiry", f.ExpiryDate},
		{"batch", f.BatchNo},
		{"price", f.Price},
	} {
		if fld.v == nil || strings.TrimSpace(*fld.v) == "" {
			missing = append(missing, fld.name)
		}
	}
	if len(missing) > 0 {
		return invalid("required fields missing: %s", strings.Join(missing, ", "))
	}
	return nil
}

// apply накладывает указанные поля формы на m.
func (f MedicineForm) apply(m *model.Medicine) error {
	var err error
	if f.Name != nil {
		if m.Name, err = parseName(*f.Name); err != nil {
			return err
		}
	}
	if f.Type != nil {
		if m.Type, err = parseType(*f.Type); err != nil {
			return err
		}
	}
	if f.Quantity != nil {
		m.Quantity = strings.TrimSpace(*f.Quantity)
	}
	if f.ExpiryDate != nil {
		if m.ExpiryDate, err = ParseDate(*f.ExpiryDate); err != nil {
			return err
		}
	}
	if f.BatchNo != nil {
		m.BatchNo = strings.TrimSpace(*f.BatchNo)
	}
	if f.Price != nil {
		if m.Price, err = parsePrice(*f.Price); err != nil {
			return err
		}
	}
	return nil
}

func (f GeneralItemForm) apply(it *model.GeneralItem) error {
	var err error
	if f.Name != nil {
		if it.Name, err = parseName(*f.Name); err != nil {
			return err
		}
	}
	if f.Quantity != nil {
		it.Quantity = strings.TrimSpace(*f.Quantity)
	}
	if f.Price != nil {
		if it.Price, err = parsePrice(*f.Price); err != nil {
			return err
		}
	}
	return nil
}
