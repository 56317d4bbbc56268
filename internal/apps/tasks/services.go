package tasks

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrTaskNotFound = errors.New("task not found")

// TaskInput carries the writable task fields for create and update.
type TaskInput struct {
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Priority     string     `json:"priority"`
	DueDate      *string    `json:"due_date"`
	TaskType     string     `json:"task_type"`
	ReminderTime *time.Time `json:"reminder_time"`
	IsImportant  bool       `json:"is_important"`
	Notes        string     `json:"notes"`
}

// Service owns task persistence.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) List(userID uuid.UUID, filter ListFilter) ([]Task, error) {
	q := s.db.Where("user_id = ?", userID)

	if filter.Date == "today" {
		q = q.Where("due_date = CURRENT_DATE")
	} else if filter.StartDate != "" && filter.EndDate != "" {
		q = q.Where("due_date BETWEEN ? AND ?", filter.StartDate, filter.EndDate)
	}
	if filter.Completed != nil {
		q = q.Where("completed = ?", *filter.Completed)
	}

	var list []Task
	err := q.Order("completed ASC").
		Order("CASE priority WHEN 'high' THEN 3 WHEN 'medium' THEN 2 ELSE 1 END DESC").
		Order("due_date ASC").
		Find(&list).Error
	return list, err
}

func (s *Service) Create(userID uuid.UUID, input TaskInput) (*Task, error) {
	task := Task{ID: uuid.New(), UserID: userID}
	if err := applyInput(&task, input); err != nil {
		return nil, err
	}
	if err := s.db.Create(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

func (s *Service) Update(userID, taskID uuid.UUID, input TaskInput) (*Task, error) {
	var task Task
	if err := s.db.Where("id = ? AND user_id = ?", taskID, userID).First(&task).Error; err != nil {
		return nil, ErrTaskNotFound
	}
	if err := applyInput(&task, input); err != nil {
		return nil, err
	}
	if err := s.db.Save(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// Toggle flips the completed flag and returns the updated task.
func (s *Service) Toggle(userID, taskID uuid.UUID) (*Task, error) {
	var task Task
	if err := s.db.Where("id = ? AND user_id = ?", taskID, userID).First(&task).Error; err != nil {
		return nil, ErrTaskNotFound
	}
	task.Completed = !task.Completed
	if err := s.db.Model(&task).Update("completed", task.Completed).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

func (s *Service) Delete(userID, taskID uuid.UUID) error {
	result := s.db.Where("id = ? AND user_id = ?", taskID, userID).Delete(&Task{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

func applyInput(task *Task, input TaskInput) error {
	if input.Title == "" {
		return errors.New("title is required")
	}

	priority := input.Priority
	if priority == "" {
		priority = PriorityMedium
	}
	if !validPriority(priority) {
		return errors.New("priority must be low, medium, or high")
	}

	taskType := input.TaskType
	if taskType == "" {
		taskType = TypeTodo
	}
	if !validType(taskType) {
		return errors.New("task_type must be todo, goal, or reminder")
	}

	task.Title = input.Title
	task.Description = input.Description
	task.Priority = priority
	task.TaskType = taskType
	task.ReminderTime = input.ReminderTime
	task.IsImportant = input.IsImportant
	task.Notes = input.Notes

	if input.DueDate == nil || *input.DueDate == "" {
		task.DueDate = nil
		return nil
	}
	due, err := time.Parse("2006-01-02", *input.DueDate)
	if err != nil {
		return errors.New("due_date must be YYYY-MM-DD")
	}
	task.DueDate = &due
	return nil
}
