package repository

import (
	"errors"
	"strings"
	"time"

	"taskflow-backend/internal/task/domain"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// gormTaskRepository implements TaskRepository using GORM
type gormTaskRepository struct {
	db *gorm.DB
}

// NewGormTaskRepository creates a new GORM-based TaskRepository
func NewGormTaskRepository(db *gorm.DB) TaskRepository {
	return &gormTaskRepository{db: db}
}

func (r *gormTaskRepository) Create(task *domain.Task) error {
	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	if task.Status == "" {
		task.Status = domain.StatusPending
	}
	task.CreatedAt = time.Now()
	task.UpdatedAt = time.Now()
	return r.db.Create(task).Error
}

func (r *gormTaskRepository) FindByOwner(ownerID string, f Filter, limit, offset int) ([]domain.Task, int64, error) {
	// LOWER(title) LIKE keeps the case-insensitive match portable between
	// Postgres and the sqlite driver used in tests.
	query := func() *gorm.DB {
		q := r.db.Model(&domain.Task{}).Where("user_id = ?", ownerID)
		if f.Status != nil {
			q = q.Where("status = ?", *f.Status)
		}
		if f.Search != "" {
			q = q.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(f.Search)+"%")
		}
		return q
	}

	var tasks []domain.Task
	var total int64

	// Page fetch and count run concurrently; each goroutine builds its own
	// statement from the shared session.
	var g errgroup.Group
	g.Go(func() error {
		return query().Order("created_at DESC").Limit(limit).Offset(offset).Find(&tasks).Error
	})
	g.Go(func() error {
		return query().Count(&total).Error
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	return tasks, total, nil
}

func (r *gormTaskRepository) FindByIDAndOwner(ownerID, id string) (*domain.Task, error) {
	var task domain.Task
	err := r.db.Where("id = ? AND user_id = ?", id, ownerID).First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &task, nil
}

func (r *gormTaskRepository) Update(ownerID, id string, fields map[string]interface{}) (int64, error) {
	fields["updated_at"] = time.Now()
	res := r.db.Model(&domain.Task{}).Where("id = ? AND user_id = ?", id, ownerID).Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *gormTaskRepository) Delete(ownerID, id string) (int64, error) {
	res := r.db.Where("id = ? AND user_id = ?", id, ownerID).Delete(&domain.Task{})
	return res.RowsAffected, res.Error
}
