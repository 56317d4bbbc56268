package insights

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/wellspringhq/wellspring-backend/internal/models"
	"github.com/wellspringhq/wellspring-backend/internal/wellness"
	"gorm.io/gorm"
)

// Gatherer loads a user's recent activity across all modules and reduces it
// to the signal summary the insight engine consumes. It reads the module
// tables directly so it stays import-free of the feature packages.
type Gatherer struct {
	db *gorm.DB
}

func NewGatherer(db *gorm.DB) *Gatherer {
	return &Gatherer{db: db}
}

// Gather collects signals from the last windowDays days.
func (g *Gatherer) Gather(userID uuid.UUID, windowDays int) (wellness.Signals, error) {
	since := time.Now().AddDate(0, 0, -windowDays)
	sinceDay := since.Format("2006-01-02")

	var journalRows []struct {
		Emotion     string
		Probability float64
	}
	err := g.db.Table("journal_entries").
		Select("emotion, probability").
		Where("user_id = ? AND created_at >= ? AND emotion <> '' AND deleted_at IS NULL", userID, since).
		Order("created_at DESC").
		Scan(&journalRows).Error
	if err != nil {
		return wellness.Signals{}, err
	}

	var moodRows []struct {
		Emotion string
		Score   int
	}
	err = g.db.Table("mood_entries").
		Select("emotion, score").
		Where("user_id = ? AND date >= ?", userID, sinceDay).
		Order("date DESC").
		Scan(&moodRows).Error
	if err != nil {
		return wellness.Signals{}, err
	}

	var taskRows []struct {
		Completed bool
	}
	err = g.db.Table("tasks").
		Select("completed").
		Where("user_id = ? AND created_at >= ? AND deleted_at IS NULL", userID, since).
		Scan(&taskRows).Error
	if err != nil {
		return wellness.Signals{}, err
	}

	var trackingRows []struct {
		HabitID   uuid.UUID
		Completed bool
	}
	err = g.db.Table("habit_tracking").
		Select("habit_tracking.habit_id, habit_tracking.completed").
		Joins("JOIN habits ON habits.id = habit_tracking.habit_id").
		Where("habits.user_id = ? AND habit_tracking.date >= ? AND habits.deleted_at IS NULL", userID, sinceDay).
		Scan(&trackingRows).Error
	if err != nil {
		return wellness.Signals{}, err
	}

	journals := make([]wellness.JournalSignal, 0, len(journalRows))
	for _, r := range journalRows {
		journals = append(journals, wellness.JournalSignal{Emotion: r.Emotion, Probability: r.Probability})
	}

	moods := make([]wellness.MoodObservation, 0, len(moodRows))
	for _, r := range moodRows {
		moods = append(moods, wellness.MoodObservation{Emotion: r.Emotion, Score: r.Score})
	}

	tasks := make([]wellness.TaskSignal, 0, len(taskRows))
	for _, r := range taskRows {
		tasks = append(tasks, wellness.TaskSignal{Completed: r.Completed})
	}

	habitSet := make(map[uuid.UUID]struct{})
	tracking := make([]wellness.HabitMark, 0, len(trackingRows))
	for _, r := range trackingRows {
		habitSet[r.HabitID] = struct{}{}
		tracking = append(tracking, wellness.HabitMark{Completed: r.Completed})
	}

	return wellness.AggregateSignals(journals, moods, tasks, len(habitSet), tracking), nil
}

// RecentEmotions returns the user's latest emotion labels across journal
// entries and manual moods, newest first.
func (g *Gatherer) RecentEmotions(userID uuid.UUID, limit int) ([]string, error) {
	var rows []struct {
		Emotion string
	}
	err := g.db.Raw(`
		SELECT emotion FROM (
			SELECT emotion, created_at AS at FROM journal_entries
			WHERE user_id = ? AND emotion <> '' AND deleted_at IS NULL
			UNION ALL
			SELECT emotion, date::timestamp AS at FROM mood_entries
			WHERE user_id = ?
		) combined ORDER BY at DESC LIMIT ?`,
		userID, userID, limit).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	emotions := make([]string, 0, len(rows))
	for _, r := range rows {
		emotions = append(emotions, r.Emotion)
	}
	return emotions, nil
}

// ProfileFor loads the user's profile for prompt personalization. Returns
// nil when no profile field is filled.
func (g *Gatherer) ProfileFor(userID uuid.UUID) (*wellness.Profile, error) {
	var user models.User
	if err := g.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}

	profile := &wellness.Profile{
		Name:       user.Name,
		Gender:     user.Gender,
		Pronouns:   user.Pronouns,
		Occupation: user.Occupation,
		Location:   user.Location,
		Bio:        user.Bio,
	}
	if user.Birthday != nil {
		profile.Age = ageAt(*user.Birthday, time.Now())
	}
	if len(user.Interests) > 0 {
		var interests []string
		if err := json.Unmarshal(user.Interests, &interests); err == nil {
			profile.Interests = interests
		}
	}

	if profile.Name == "" && profile.Gender == "" && profile.Pronouns == "" &&
		profile.Occupation == "" && profile.Location == "" && profile.Bio == "" &&
		profile.Age == 0 && len(profile.Interests) == 0 {
		return nil, nil
	}
	return profile, nil
}

func ageAt(birthday, now time.Time) int {
	age := now.Year() - birthday.Year()
	if now.Month() < birthday.Month() ||
		(now.Month() == birthday.Month() && now.Day() < birthday.Day()) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}
