package entities

// Skill is a leaf attribute of an experience.
type Skill struct {
	ID           int64
	ExperienceID int64
	Name         string
	Proficiency  string
}
