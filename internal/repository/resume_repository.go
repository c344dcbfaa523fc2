package repository

import (
	"fmt"

	"portfolio-be/internal/database"
	"portfolio-be/internal/entities"
)

// ResumeRepository defines read access to the resume tables.
type ResumeRepository interface {
	Institutions() ([]*entities.Institution, error)
	PositionsByInstitution(institutionID int64) ([]*entities.Position, error)
	ExperiencesByPosition(positionID int64) ([]*entities.Experience, error)
	SkillsByExperience(experienceID int64) ([]*entities.Skill, error)
}

type resumeRepository struct {
	store database.Executor
}

// NewResumeRepository creates a new resume repository
func NewResumeRepository(store database.Executor) ResumeRepository {
	return &resumeRepository{store: store}
}

func (r *resumeRepository) Institutions() ([]*entities.Institution, error) {
	rows, err := r.store.Execute("SELECT * FROM institutions")
	if err != nil {
		return nil, fmt.Errorf("failed to load institutions: %w", err)
	}

	institutions := make([]*entities.Institution, 0, len(rows))
	for _, row := range rows {
		institutions = append(institutions, &entities.Institution{
			ID:       rowInt64(row, "inst_id"),
			Name:     rowString(row, "name"),
			Location: rowString(row, "location"),
			Website:  rowString(row, "website"),
		})
	}
	return institutions, nil
}

func (r *resumeRepository) PositionsByInstitution(institutionID int64) ([]*entities.Position, error) {
	rows, err := r.store.Execute(
		"SELECT * FROM positions WHERE inst_id = $1 ORDER BY start_date DESC",
		institutionID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load positions: %w", err)
	}

	positions := make([]*entities.Position, 0, len(rows))
	for _, row := range rows {
		positions = append(positions, &entities.Position{
			ID:            rowInt64(row, "position_id"),
			InstitutionID: rowInt64(row, "inst_id"),
			Title:         rowString(row, "title"),
			StartDate:     rowTime(row, "start_date"),
			EndDate:       rowTime(row, "end_date"),
		})
	}
	return positions, nil
}

func (r *resumeRepository) ExperiencesByPosition(positionID int64) ([]*entities.Experience, error) {
	rows, err := r.store.Execute(
		"SELECT * FROM experiences WHERE position_id = $1 ORDER BY start_date DESC",
		positionID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load experiences: %w", err)
	}

	experiences := make([]*entities.Experience, 0, len(rows))
	for _, row := range rows {
		experiences = append(experiences, &entities.Experience{
			ID:          rowInt64(row, "experience_id"),
			PositionID:  rowInt64(row, "position_id"),
			Name:        rowString(row, "name"),
			Description: rowString(row, "description"),
			StartDate:   rowTime(row, "start_date"),
			EndDate:     rowTime(row, "end_date"),
		})
	}
	return experiences, nil
}

func (r *resumeRepository) SkillsByExperience(experienceID int64) ([]*entities.Skill, error) {
	rows, err := r.store.Execute(
		"SELECT * FROM skills WHERE experience_id = $1",
		experienceID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load skills: %w", err)
	}

	skills := make([]*entities.Skill, 0, len(rows))
	for _, row := range rows {
		skills = append(skills, &entities.Skill{
			ID:           rowInt64(row, "skill_id"),
			ExperienceID: rowInt64(row, "experience_id"),
			Name:         rowString(row, "name"),
			Proficiency:  rowString(row, "proficiency"),
		})
	}
	return skills, nil
}
