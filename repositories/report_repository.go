package repositories

import (
	"sync"

	"github.com/zealr3/stackit-qna/models"
	"github.com/zealr3/stackit-qna/store"
)

type ReportRepository interface {
	List() []models.Report
	GetByID(id string) (*models.Report, error)
	Create(report *models.Report) error
	Update(report *models.Report) error
}

type reportRepository struct {
	mu      sync.RWMutex
	store   *store.Store
	reports []models.Report
}

func NewReportRepository(s *store.Store) (ReportRepository, error) {
	r := &reportRepository{store: s}
	if err := s.Load(store.KeyReports, &r.reports); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *reportRepository) persist() error {
	return r.store.Save(store.KeyReports, r.reports)
}

func (r *reportRepository) List() []models.Report {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Report, len(r.reports))
	copy(out, r.reports)
	return out
}

func (r *reportRepository) GetByID(id string) (*models.Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rep := range r.reports {
		if rep.ID == id {
			found := rep
			return &found, nil
		}
	}
	return nil, models.ErrorNotFound{Message: "report not found"}
}

func (r *reportRepository) Create(report *models.Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.reports = append([]models.Report{*report}, r.reports...)
	return r.persist()
}

func (r *reportRepository) Update(report *models.Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, rep := range r.reports {
		if rep.ID == report.ID {
			r.reports[i] = *report
			return r.persist()
		}
	}
	return models.ErrorNotFound{Message: "report not found"}
}
