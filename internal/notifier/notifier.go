package notifier

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/julianstephens/studyplan/internal/constants"
	"github.com/julianstephens/studyplan/internal/models"
	"github.com/julianstephens/studyplan/internal/utils"
)

// Notification types
const (
	TypeUpcomingSession = "upcoming_session"
	TypeBreak           = "break"
	TypeMotivation      = "motivation"
	TypeProgress        = "progress"
	TypeAchievement     = "achievement"
)

// SessionNotification announces a session starting soon
type SessionNotification struct {
	Type         string `json:"type"`
	Subject      string `json:"subject"`
	StartTime    string `json:"start_time"`
	MinutesUntil int    `json:"minutes_until"`
	Message      string `json:"message"`
}

// BreakNotification announces an upcoming break after the active session
type BreakNotification struct {
	Type          string `json:"type"`
	MinutesUntil  int    `json:"minutes_until"`
	BreakDuration int    `json:"break_duration"`
	Message       string `json:"message"`
}

// MotivationalMessage is a stock quote or study tip
type MotivationalMessage struct {
	Type        string `json:"type"`
	ContentType string `json:"content_type"` // "quote" or "tip"
	Message     string `json:"message"`
}

// ProgressNotification summarizes completion progress for a day
type ProgressNotification struct {
	Type       string  `json:"type"`
	Completed  int     `json:"completed"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
	Message    string  `json:"message"`
}

// Achievement identifies an earned milestone
type Achievement struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// AchievementNotification wraps an achievement with display text
type AchievementNotification struct {
	Type          string `json:"type"`
	AchievementID string `json:"achievement_id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Message       string `json:"message"`
}

// Notifier generates human-readable notification content from schedule and
// session data. It reads core state but never mutates it.
type Notifier struct {
	quotes []string
	tips   []string
	rand   *rand.Rand
}

// New creates a Notifier with the stock quote and tip pools
func New() *Notifier {
	return &Notifier{
		quotes: []string{
			"The expert in anything was once a beginner.",
			"Success is the sum of small efforts, repeated day in and day out.",
			"The secret of getting ahead is getting started.",
			"Don't wish it were easier; wish you were better.",
			"The harder you work for something, the greater you'll feel when you achieve it.",
			"Learning is never done without errors and defeat.",
			"The beautiful thing about learning is that no one can take it away from you.",
			"Education is the passport to the future.",
			"The more that you read, the more things you will know.",
			"The only way to do great work is to love what you do.",
		},
		tips: []string{
			"Break your study sessions into 25-minute chunks with 5-minute breaks.",
			"Stay hydrated while studying to maintain focus.",
			"Review your notes within 24 hours of taking them to improve retention.",
			"Teach what you've learned to someone else to solidify your understanding.",
			"Create mind maps to visualize connections between concepts.",
			"Use active recall instead of passive re-reading.",
			"Study in a quiet, well-lit environment with minimal distractions.",
			"Get enough sleep before and after studying to help memory consolidation.",
			"Use spaced repetition to review material at optimal intervals.",
			"Take brief exercise breaks to boost your energy and focus.",
		},
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// UpcomingSessionNotifications returns a notice for each session starting
// within the lookahead window. Sessions without a date are assumed to fall on
// the current day; sessions with unparseable times are skipped.
func (n *Notifier) UpcomingSessionNotifications(sessions []models.StudySession, now time.Time, windowMinutes int) []SessionNotification {
	if windowMinutes <= 0 {
		windowMinutes = constants.DefaultNotificationWindowMin
	}

	var notifications []SessionNotification
	for _, session := range sessions {
		if session.StartTime == "" {
			continue
		}

		date := session.Date
		if date == "" {
			date = now.Format(constants.DateFormat)
		}

		start, err := utils.CombineDateAndTime(date, session.StartTime)
		if err != nil {
			continue
		}

		minutesUntil := start.Sub(now).Minutes()
		if minutesUntil < 0 || minutesUntil > float64(windowMinutes) {
			continue
		}

		notifications = append(notifications, SessionNotification{
			Type:         TypeUpcomingSession,
			Subject:      session.Subject,
			StartTime:    session.StartTime,
			MinutesUntil: int(minutesUntil),
			Message:      fmt.Sprintf("Your %s study session starts in %d minutes!", session.Subject, int(minutesUntil)),
		})
	}
	return notifications
}

// BreakNotification returns a break notice when the active session ends
// within the next five minutes and carries a non-zero break, else nil
func (n *Notifier) BreakNotification(session models.StudySession, now time.Time) *BreakNotification {
	if session.EndTime == "" {
		return nil
	}

	date := session.Date
	if date == "" {
		date = now.Format(constants.DateFormat)
	}

	end, err := utils.CombineDateAndTime(date, session.EndTime)
	if err != nil {
		return nil
	}

	minutesUntil := end.Sub(now).Minutes()
	if minutesUntil < 0 || minutesUntil > constants.BreakNoticeWindowMin {
		return nil
	}
	if session.BreakAfter <= 0 {
		return nil
	}

	return &BreakNotification{
		Type:          TypeBreak,
		MinutesUntil:  int(minutesUntil),
		BreakDuration: session.BreakAfter,
		Message:       fmt.Sprintf("Your study session is ending soon. Take a %d-minute break!", session.BreakAfter),
	}
}

// MotivationalMessage picks a random quote or study tip
func (n *Notifier) MotivationalMessage() MotivationalMessage {
	if n.rand.Intn(2) == 0 {
		return MotivationalMessage{
			Type:        TypeMotivation,
			ContentType: "quote",
			Message:     n.quotes[n.rand.Intn(len(n.quotes))],
		}
	}
	return MotivationalMessage{
		Type:        TypeMotivation,
		ContentType: "tip",
		Message:     n.tips[n.rand.Intn(len(n.tips))],
	}
}

// ProgressNotification formats a completion-progress message
func (n *Notifier) ProgressNotification(completed, total int) ProgressNotification {
	percentage := 0.0
	if total > 0 {
		percentage = float64(completed) / float64(total) * 100
	}

	var message string
	switch {
	case percentage == 0:
		message = "Time to start your study sessions for today!"
	case percentage < 25:
		message = "You're making progress! Keep going!"
	case percentage < 50:
		message = "You're getting there! Almost halfway through your sessions."
	case percentage < 75:
		message = "Great progress! You've completed most of your study sessions."
	case percentage < 100:
		message = "Almost done! Just a few more sessions to go."
	default:
		message = "Congratulations! You've completed all your study sessions for today."
	}

	return ProgressNotification{
		Type:       TypeProgress,
		Completed:  completed,
		Total:      total,
		Percentage: roundToOneDecimal(percentage),
		Message:    message,
	}
}

// AchievementNotification formats an earned achievement
func (n *Notifier) AchievementNotification(achievement Achievement) AchievementNotification {
	return AchievementNotification{
		Type:          TypeAchievement,
		AchievementID: achievement.ID,
		Title:         achievement.Title,
		Description:   achievement.Description,
		Message:       fmt.Sprintf("Congratulations! You've earned: %s", achievement.Title),
	}
}

func roundToOneDecimal(value float64) float64 {
	return math.Round(value*10) / 10
}
