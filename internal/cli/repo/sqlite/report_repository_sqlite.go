package sqlite

import (
	"context"
	"fmt"
	"strings"

	"PharmaKeeper/internal/cli/model"
	"PharmaKeeper/internal/cli/repo"
)

// ReportRepositorySQLite - отчёты на сыром SQL через sqlx.
type ReportRepositorySQLite struct {
	conn *Connection
}

var _ repo.ReportRepository = (*ReportRepositorySQLite)(nil)

func NewReportRepository(conn *Connection) *ReportRepositorySQLite {
	return &ReportRepositorySQLite{conn: conn}
}

// колонки без NULL, чтобы сканировать в обычные string/float64
const medicineCols = `id,
	IFNULL(name, '') AS name,
	IFNULL(type, '') AS type,
	IFNULL(quantity, '') AS quantity,
	IFNULL(expiry_date, '') AS expiry_date,
	IFNULL(batch_no, '') AS batch_no,
	IFNULL(price, 0) AS price`

const generalItemCols = `id,
	IFNULL(name, '') AS name,
	IFNULL(quantity, '') AS quantity,
	IFNULL(price, 0) AS price`

func (r *ReportRepositorySQLite) ExpiringMedicines(ctx context.Context, onOrBefore string) ([]model.Medicine, error) {
	res := make([]model.Medicine, 0)
	err := r.conn.Do(ctx, func(ctx context.Context, h *Handle) error {
		q := `SELECT ` + medicineCols + `
			FROM medicines
			WHERE IFNULL(expiry_date, '') <> '' AND expiry_date <= ?
			ORDER BY expiry_date, id`
		return h.SQL().SelectContext(ctx, &res, q, onOrBefore)
	})
	if err != nil {
		return nil, fmt.Errorf("expiring medicines: %w", err)
	}
	return res, nil
}

func (r *ReportRepositorySQLite) SearchByName(ctx context.Context, fragment string) ([]model.Medicine, []model.GeneralItem, error) {
	meds := make([]model.Medicine, 0)
	items := make([]model.GeneralItem, 0)
	pattern := "%" + escapeLike(fragment) + "%"
	err := r.conn.Do(ctx, func(ctx context.Context, h *Handle) error {
		db := h.SQL()
		if err := db.SelectContext(ctx, &meds,
			`SELECT `+medicineCols+` FROM medicines WHERE name LIKE ? ESCAPE '\' ORDER BY id`, pattern); err != nil {
			return err
		}
		return db.SelectContext(ctx, &items,
			`SELECT `+generalItemCols+` FROM general_items WHERE name LIKE ? ESCAPE '\' ORDER BY id`, pattern)
	})
	if err != nil {
		return nil, nil, fmt.Errorf("search %q: %w", fragment, err)
	}
	return meds, items, nil
}

func (r *ReportRepositorySQLite) CountByType(ctx context.Context) ([]repo.TypeCount, error) {
	res := make([]repo.TypeCount, 0)
	err := r.conn.Do(ctx, func(ctx context.Context, h *Handle) error {
		return h.SQL().SelectContext(ctx, &res,
			`SELECT IFNULL(type, '') AS type, COUNT(*) AS cnt
			FROM medicines
			GROUP BY IFNULL(type, '')
			ORDER BY type`)
	})
	if err != nil {
		return nil, fmt.Errorf("count by type: %w", err)
	}
	return res, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string { return likeEscaper.Replace(s) }
