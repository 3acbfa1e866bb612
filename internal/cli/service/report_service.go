package service

import (
	"context"
	"time"

	"PharmaKeeper/internal/cli/model"
	"PharmaKeeper/internal/cli/repo"
)

// DefaultExpiryWindow - горизонт отчёта о сроках годности по умолчанию.
const DefaultExpiryWindow = 30 * 24 * time.Hour

// ReportService - отчёты по складу аптеки.
type ReportService struct {
	repo repo.ReportRepository
	now  func() time.Time
}

func NewReportService(r repo.ReportRepository) *ReportService {
	return &ReportService{repo: r, now: time.Now}
}

// ExpiryCutoff вычисляет границу отчёта: явная дата before важнее days;
// без обоих - сегодня + 30 дней.
func (s *ReportService) ExpiryCutoff(before string, days int) (string, error) {
	if before != "" {
		return ParseDate(before)
	}
	if days < 0 {
		return "", invalid("days must not be negative")
	}
	window := DefaultExpiryWindow
	if days > 0 {
		window = time.Duration(days) * 24 * time.Hour
	}
	return s.now().Add(window).Format(DateLayout), nil
}

// Expiring возвращает границу и лекарства, срок которых истекает не позже неё.
func (s *ReportService) Expiring(ctx context.Context, before string, days int) (string, []model.Medicine, error) {
	cutoff, err := s.ExpiryCutoff(before, days)
	if err != nil {
		return "", nil, err
	}
	list, err := s.repo.ExpiringMedicines(ctx, cutoff)
	if err != nil {
		return "", nil, err
	}
	return cutoff, list, nil
}

// Search ищет по фрагменту названия в обеих таблицах.
func (s *ReportService) Search(ctx context.Context, fragment string) ([]model.Medicine, []model.GeneralItem, error) {
	if fragment == "" {
		return nil, nil, invalid("search text is required")
	}
	return s.repo.SearchByName(ctx, fragment)
}

// CountByType - разбивка лекарств по форме выпуска.
func (s *ReportService) CountByType(ctx context.Context) ([]repo.TypeCount, error) {
	return s.repo.CountByType(ctx)
}
