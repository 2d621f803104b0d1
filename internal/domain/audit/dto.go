package audit

import "time"

// HistoryQuery narrows a ticket's audit trail. Zero values mean "no filter".
type HistoryQuery struct {
	Action string    `form:"action" example:"lab_review"`
	Since  time.Time `form:"since" time_format:"2006-01-02T15:04:05Z07:00"`
	Until  time.Time `form:"until" time_format:"2006-01-02T15:04:05Z07:00"`
	Limit  int       `form:"limit" binding:"min=0"`
	Offset int       `form:"offset" binding:"min=0"`
}
