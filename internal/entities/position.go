package entities

import "time"

// Position is a role held at an institution.
type Position struct {
	ID            int64
	InstitutionID int64
	Title         string
	StartDate     *time.Time
	EndDate       *time.Time // nil while the position is ongoing
}
