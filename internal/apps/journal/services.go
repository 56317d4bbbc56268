package journal

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrEntryNotFound = errors.New("journal entry not found")

// Service owns journal entry persistence.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) List(userID uuid.UUID, limit, offset int) ([]Entry, error) {
	var entries []Entry
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&entries).Error
	return entries, err
}

func (s *Service) Search(userID uuid.UUID, filter SearchFilter) ([]Entry, error) {
	q := s.db.Where("user_id = ?", userID)

	if filter.Query != "" {
		q = q.Where("content ILIKE ?", "%"+filter.Query+"%")
	}
	if filter.Emotion != "" {
		q = q.Where("emotion = ?", filter.Emotion)
	}
	if filter.Date != "" {
		q = q.Where("DATE(created_at) = ?", filter.Date)
	}
	switch {
	case filter.StartDate != "" && filter.EndDate != "":
		q = q.Where("DATE(created_at) BETWEEN ? AND ?", filter.StartDate, filter.EndDate)
	case filter.StartDate != "":
		q = q.Where("DATE(created_at) >= ?", filter.StartDate)
	case filter.EndDate != "":
		q = q.Where("DATE(created_at) <= ?", filter.EndDate)
	}

	var entries []Entry
	err := q.Order("created_at DESC").Find(&entries).Error
	return entries, err
}

func (s *Service) Get(userID, entryID uuid.UUID) (*Entry, error) {
	var entry Entry
	if err := s.db.Where("id = ? AND user_id = ?", entryID, userID).First(&entry).Error; err != nil {
		return nil, ErrEntryNotFound
	}
	return &entry, nil
}

func (s *Service) Create(userID uuid.UUID, title, content, emotion string, probability float64) (*Entry, error) {
	if content == "" {
		return nil, errors.New("content is required")
	}

	entry := Entry{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       title,
		Content:     content,
		Emotion:     emotion,
		Probability: probability,
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *Service) Update(userID, entryID uuid.UUID, title, content, emotion string, probability float64) (*Entry, error) {
	entry, err := s.Get(userID, entryID)
	if err != nil {
		return nil, err
	}
	if content == "" {
		return nil, errors.New("content is required")
	}

	entry.Title = title
	entry.Content = content
	entry.Emotion = emotion
	entry.Probability = probability
	if err := s.db.Save(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *Service) Delete(userID, entryID uuid.UUID) error {
	result := s.db.Where("id = ? AND user_id = ?", entryID, userID).Delete(&Entry{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEntryNotFound
	}
	return nil
}
