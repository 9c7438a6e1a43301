package trustscore

import (
	"time"

	"github.com/google/uuid"
)

// TrustScoreResponse is the API shape of a trust score
type TrustScoreResponse struct {
	UserID uuid.UUID `json:"userId"`

	OverallScore             int `json:"overallScore"`
	AttendanceScore          int `json:"attendanceScore"`
	PunctualityScore         int `json:"punctualityScore"`
	FeedbackScore            int `json:"feedbackScore"`
	ProfileCompletenessScore int `json:"profileCompletenessScore"`

	TotalDatesAttended      int `json:"totalDatesAttended"`
	TotalDatesCancelled     int `json:"totalDatesCancelled"`
	TotalDatesNoShow        int `json:"totalDatesNoShow"`
	LastMinuteCancellations int `json:"lastMinuteCancellations"`

	WarningLevel   int        `json:"warningLevel"`
	IsOnProbation  bool       `json:"isOnProbation"`
	ProbationUntil *time.Time `json:"probationUntil"`

	CanBookDates    bool `json:"canBookDates"`
	MaxDatesPerWeek int  `json:"maxDatesPerWeek"`

	UpdatedAt time.Time `json:"updatedAt"`
}

// ResponseFromEntity converts entity to response DTO
func ResponseFromEntity(ts *TrustScore) *TrustScoreResponse {
	resp := &TrustScoreResponse{
		UserID:                   ts.UserID,
		OverallScore:             ts.OverallScore,
		AttendanceScore:          ts.AttendanceScore,
		PunctualityScore:         ts.PunctualityScore,
		FeedbackScore:            ts.FeedbackScore,
		ProfileCompletenessScore: ts.ProfileCompletenessScore,
		TotalDatesAttended:       ts.TotalDatesAttended,
		TotalDatesCancelled:      ts.TotalDatesCancelled,
		TotalDatesNoShow:         ts.TotalDatesNoShow,
		LastMinuteCancellations:  ts.LastMinuteCancellations,
		WarningLevel:             ts.WarningLevel,
		IsOnProbation:            ts.IsOnProbation,
		CanBookDates:             ts.CanBookDates,
		MaxDatesPerWeek:          ts.MaxDatesPerWeek,
		UpdatedAt:                ts.UpdatedAt,
	}
	if ts.ProbationUntil.Valid {
		t := ts.ProbationUntil.Time
		resp.ProbationUntil = &t
	}
	return resp
}
