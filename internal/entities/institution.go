package entities

// Institution is the top level of the resume hierarchy.
type Institution struct {
	ID       int64
	Name     string
	Location string
	Website  string
}
