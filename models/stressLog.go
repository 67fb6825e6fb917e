package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StressLog stores one completed stress analysis. Logs are an immutable
// audit trail: created once per successful classification, never updated.
// Username is denormalized onto the log so the admin history view needs no
// join against the user directory.
type StressLog struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      string             `bson:"user_id" json:"user_id"`
	Username    string             `bson:"username" json:"username"`
	StressLevel int                `bson:"stress_level" json:"stress_level"` // 0-100
	Category    string             `bson:"category" json:"category"`
	Timestamp   time.Time          `bson:"timestamp" json:"timestamp"`
}

// TrendDirection qualifies recent vs. older stress averages for a user.
type TrendDirection string

const (
	TrendIncreasing       TrendDirection = "Increasing"
	TrendDecreasing       TrendDirection = "Decreasing"
	TrendStable           TrendDirection = "Stable"
	TrendInsufficientData TrendDirection = "InsufficientData"
	TrendNewUser          TrendDirection = "NewUser"
)

// TrendSummary is derived on demand for the dashboard and never persisted.
// AverageLevel covers the entire log sequence it was built from, while
// WindowedSeries is capped at the most recent entries, oldest first.
type TrendSummary struct {
	AverageLevel   int            `json:"average_level"`
	TrendDirection TrendDirection `json:"trend_direction"`
	WindowedSeries []int          `json:"windowed_series"`
}

// Category thresholds shared by classification labeling and display logic.
// Bands: [0,30) Low, [30,50) Mild, [50,70) Moderate, [70,100] High.
func CategoryForLevel(level int) string {
	switch {
	case level < 30:
		return "Low"
	case level < 50:
		return "Mild"
	case level < 70:
		return "Moderate"
	default:
		return "High"
	}
}

// MessageForLevel returns the user-facing message for a stress level.
func MessageForLevel(level int) string {
	switch {
	case level < 30:
		return "Low stress detected. You seem relaxed!"
	case level < 50:
		return "Mild stress detected. Consider taking short breaks."
	case level < 70:
		return "Moderate stress detected. Try relaxation techniques."
	default:
		return "High stress detected. Please take care of yourself!"
	}
}
