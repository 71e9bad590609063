package usecase

import (
	"strings"
	"unicode/utf8"

	"taskflow-backend/internal/task/domain"
	"taskflow-backend/internal/task/repository"
)

const (
	maxTitleLength       = 200
	maxDescriptionLength = 1000
)

// taskUsecase implements TaskUsecase interface
type taskUsecase struct {
	taskRepo repository.TaskRepository
}

// NewTaskUsecase creates a new instance of taskUsecase
func NewTaskUsecase(taskRepo repository.TaskRepository) TaskUsecase {
	return &taskUsecase{
		taskRepo: taskRepo,
	}
}

func (u *taskUsecase) List(ownerID string, in ListTasksInput) ([]domain.Task, *Pagination, error) {
	var f repository.Filter
	// An unknown status value is ignored, not rejected
	if s := domain.Status(in.Status); in.Status != "" && s.Valid() {
		f.Status = &s
	}
	f.Search = in.Search

	offset := (in.Page - 1) * in.Limit
	tasks, total, err := u.taskRepo.FindByOwner(ownerID, f, in.Limit, offset)
	if err != nil {
		return nil, nil, err
	}

	totalPages := (total + int64(in.Limit) - 1) / int64(in.Limit)
	return tasks, &Pagination{
		Total:      total,
		Page:       in.Page,
		Limit:      in.Limit,
		TotalPages: totalPages,
	}, nil
}

func (u *taskUsecase) GetByID(ownerID, taskID string) (*domain.Task, error) {
	task, err := u.taskRepo.FindByIDAndOwner(ownerID, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}
	return task, nil
}

func (u *taskUsecase) Create(ownerID string, in CreateTaskInput) (*domain.Task, error) {
	var errs ValidationErrors

	title := strings.TrimSpace(in.Title)
	switch {
	case title == "":
		errs = append(errs, "Title is required")
	case utf8.RuneCountInString(title) > maxTitleLength:
		errs = append(errs, "Title must not exceed 200 characters")
	}

	var description *string
	if in.Description != nil {
		d := strings.TrimSpace(*in.Description)
		if utf8.RuneCountInString(d) > maxDescriptionLength {
			errs = append(errs, "Description must not exceed 1000 characters")
		}
		description = &d
	}

	status := domain.StatusPending
	if in.Status != "" {
		status = domain.Status(in.Status)
		if !status.Valid() {
			errs = append(errs, "Invalid status value")
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}

	task := &domain.Task{
		UserID:      ownerID,
		Title:       title,
		Description: description,
		Status:      status,
	}
	if err := u.taskRepo.Create(task); err != nil {
		return nil, err
	}
	return task, nil
}

func (u *taskUsecase) Update(ownerID, taskID string, in UpdateTaskInput) (*domain.Task, error) {
	var errs ValidationErrors
	fields := map[string]interface{}{}

	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		switch {
		case title == "":
			errs = append(errs, "Title must not be empty")
		case utf8.RuneCountInString(title) > maxTitleLength:
			errs = append(errs, "Title must not exceed 200 characters")
		default:
			fields["title"] = title
		}
	}

	if in.Description != nil {
		description := strings.TrimSpace(*in.Description)
		if utf8.RuneCountInString(description) > maxDescriptionLength {
			errs = append(errs, "Description must not exceed 1000 characters")
		} else {
			fields["description"] = description
		}
	}

	if in.Status != nil {
		status := domain.Status(*in.Status)
		if !status.Valid() {
			errs = append(errs, "Invalid status value")
		} else {
			fields["status"] = status
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}

	// An empty patch still needs the existence and ownership check
	if len(fields) == 0 {
		return u.GetByID(ownerID, taskID)
	}

	rows, err := u.taskRepo.Update(ownerID, taskID, fields)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, ErrTaskNotFound
	}

	return u.GetByID(ownerID, taskID)
}

func (u *taskUsecase) Delete(ownerID, taskID string) error {
	rows, err := u.taskRepo.Delete(ownerID, taskID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrTaskNotFound
	}
	return nil
}

func (u *taskUsecase) ToggleStatus(ownerID, taskID string) (*domain.Task, error) {
	task, err := u.GetByID(ownerID, taskID)
	if err != nil {
		return nil, err
	}

	rows, err := u.taskRepo.Update(ownerID, taskID, map[string]interface{}{
		"status": task.Toggled(),
	})
	if err != nil {
		return nil, err
	}
	// A concurrent delete between the read and the write lands here
	if rows == 0 {
		return nil, ErrTaskNotFound
	}

	return u.GetByID(ownerID, taskID)
}
