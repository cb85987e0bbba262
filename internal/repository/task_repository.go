package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/copilot-demo/task-manager/internal/models"
)

// GormTaskRepository is a GORM implementation of TaskRepository.
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository.
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create inserts a new task.
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// FindByID finds a task by ID.
func (r *GormTaskRepository) FindByID(id uuid.UUID) (*models.Task, error) {
	var task models.Task
	if err := r.db.First(&task, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// List retrieves tasks matching the filter along with the total count.
func (r *GormTaskRepository) List(filter TaskFilter) ([]models.Task, int64, error) {
	query := r.db.Model(&models.Task{})

	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.AssignedTo != nil {
		query = query.Where("assigned_to = ?", *filter.AssignedTo)
	}
	if filter.CreatedBy != nil {
		query = query.Where("created_by = ?", *filter.CreatedBy)
	}
	if filter.AccessibleBy != nil {
		query = query.Where("assigned_to = ? OR created_by = ?", *filter.AccessibleBy, *filter.AccessibleBy)
	}
	if filter.ExcludeArchived {
		query = query.Where("is_archived = ?", false)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	listQuery := query
	if filter.SortByDueDate {
		listQuery = listQuery.Order("CASE WHEN due_date IS NULL THEN 1 ELSE 0 END, due_date ASC")
	} else {
		listQuery = listQuery.Order("created_at DESC")
	}

	listQuery = paginate(listQuery, filter.Page, filter.PageSize)

	var tasks []models.Task
	if err := listQuery.Find(&tasks).Error; err != nil {
		return nil, 0, err
	}

	return tasks, total, nil
}

// Update writes the task back. The write is guarded by the version the
// aggregate was loaded with; a stale version loses the race and returns
// ErrVersionConflict, a vanished row returns gorm.ErrRecordNotFound.
func (r *GormTaskRepository) Update(task *models.Task) error {
	expected := task.Version

	res := r.db.Model(&models.Task{}).
		Where("id = ? AND version = ?", task.ID, expected).
		Updates(map[string]interface{}{
			"title":           task.Title,
			"description":     task.Description,
			"status":          task.Status,
			"priority":        task.Priority,
			"category":        task.Category,
			"assigned_to":     task.AssignedTo,
			"due_date":        task.DueDate,
			"completed_at":    task.CompletedAt,
			"estimated_hours": task.EstimatedHours,
			"actual_hours":    task.ActualHours,
			"is_archived":     task.IsArchived,
			"updated_at":      task.UpdatedAt,
			"version":         expected + 1,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := r.db.Model(&models.Task{}).Where("id = ?", task.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}
		return ErrVersionConflict
	}

	task.Version = expected + 1
	return nil
}

// Delete permanently removes a task.
func (r *GormTaskRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Task{}, "id = ?", id).Error
}

// CountByStatus counts tasks in the given status.
func (r *GormTaskRepository) CountByStatus(status models.TaskStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.Task{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

// CountByAssignee counts tasks assigned to the given user.
func (r *GormTaskRepository) CountByAssignee(userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Task{}).Where("assigned_to = ?", userID).Count(&count).Error
	return count, err
}

// paginate applies offset/limit pagination to a query. Zero values disable
// paging.
func paginate(db *gorm.DB, page, pageSize int) *gorm.DB {
	if page > 0 && pageSize > 0 {
		return db.Offset((page - 1) * pageSize).Limit(pageSize)
	}
	return db
}
