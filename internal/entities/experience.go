package entities

import "time"

// Experience is a project or responsibility within a position.
type Experience struct {
	ID          int64
	PositionID  int64
	Name        string
	Description string
	StartDate   *time.Time
	EndDate     *time.Time // nil while the experience is ongoing
}
