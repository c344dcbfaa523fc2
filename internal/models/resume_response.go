package models

// ResumeTree maps institution id to its assembled entry. At every level the
// map key is the entity id; the id and parent id are not repeated inside the
// node bodies.
type ResumeTree map[int64]*InstitutionNode

type InstitutionNode struct {
	Name      string                  `json:"name"`
	Location  string                  `json:"location"`
	Website   string                  `json:"website"`
	Positions map[int64]*PositionNode `json:"positions"`
}

type PositionNode struct {
	Title       string                    `json:"title"`
	StartDate   string                    `json:"start_date"`
	EndDate     string                    `json:"end_date"`
	Experiences map[int64]*ExperienceNode `json:"experiences"`
}

type ExperienceNode struct {
	Name        string               `json:"name"`
	Description string               `json:"description"`
	StartDate   string               `json:"start_date"`
	EndDate     string               `json:"end_date"`
	Skills      map[int64]*SkillNode `json:"skills"`
}

type SkillNode struct {
	Name        string `json:"name"`
	Proficiency string `json:"proficiency"`
}

// ResumeResponse wraps the tree for the API endpoint.
type ResumeResponse struct {
	Success bool       `json:"success"`
	Data    ResumeTree `json:"data"`
}
