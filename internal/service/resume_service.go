package service

import (
	"time"

	"portfolio-be/internal/models"
	"portfolio-be/internal/repository"
)

// Markers rendered in place of a missing end date. Positions and experiences
// deliberately differ: positions show an explicit word, experiences an empty
// string.
const (
	positionOngoing   = "Present"
	experienceOngoing = ""
)

// ResumeService assembles the nested resume tree from the flat tables.
type ResumeService interface {
	Assemble() (models.ResumeTree, error)
}

type resumeService struct {
	repo repository.ResumeRepository
}

// NewResumeService creates a new resume service
func NewResumeService(repo repository.ResumeRepository) ResumeService {
	return &resumeService{repo: repo}
}

// Assemble rebuilds the institution→position→experience→skill hierarchy.
// Each level is keyed by its entity id, which makes the id and parent id
// implicit in the structure. Dates are truncated to year-month; positions
// and experiences within a parent arrive ordered by descending start date.
// Any query failure propagates; there is no partial result.
func (s *resumeService) Assemble() (models.ResumeTree, error) {
	institutions, err := s.repo.Institutions()
	if err != nil {
		return nil, err
	}

	tree := make(models.ResumeTree, len(institutions))
	for _, institution := range institutions {
		instNode := &models.InstitutionNode{
			Name:      institution.Name,
			Location:  institution.Location,
			Website:   institution.Website,
			Positions: make(map[int64]*models.PositionNode),
		}
		tree[institution.ID] = instNode

		positions, err := s.repo.PositionsByInstitution(institution.ID)
		if err != nil {
			return nil, err
		}
		for _, position := range positions {
			posNode := &models.PositionNode{
				Title:       position.Title,
				StartDate:   yearMonth(position.StartDate),
				EndDate:     endDate(position.EndDate, positionOngoing),
				Experiences: make(map[int64]*models.ExperienceNode),
			}
			instNode.Positions[position.ID] = posNode

			experiences, err := s.repo.ExperiencesByPosition(position.ID)
			if err != nil {
				return nil, err
			}
			for _, experience := range experiences {
				expNode := &models.ExperienceNode{
					Name:        experience.Name,
					Description: experience.Description,
					StartDate:   yearMonth(experience.StartDate),
					EndDate:     endDate(experience.EndDate, experienceOngoing),
					Skills:      make(map[int64]*models.SkillNode),
				}
				posNode.Experiences[experience.ID] = expNode

				skills, err := s.repo.SkillsByExperience(experience.ID)
				if err != nil {
					return nil, err
				}
				for _, skill := range skills {
					expNode.Skills[skill.ID] = &models.SkillNode{
						Name:        skill.Name,
						Proficiency: skill.Proficiency,
					}
				}
			}
		}
	}
	return tree, nil
}

// yearMonth truncates a date to its YYYY-MM prefix.
func yearMonth(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01")
}

// endDate renders a finished date as YYYY-MM and a missing one as the
// level's ongoing marker.
func endDate(t *time.Time, ongoing string) string {
	if t == nil {
		return ongoing
	}
	return t.Format("2006-01")
}
