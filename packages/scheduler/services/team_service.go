package services

import (
	"errors"

	"scheduler/models"

	"gorm.io/gorm"
)

type TeamService struct {
	db *gorm.DB
}

func NewTeamService(db *gorm.DB) *TeamService {
	return &TeamService{
		db: db,
	}
}

func (s *TeamService) CreateTeam(req models.CreateTeamRequest) (*models.Team, error) {
	team := &models.Team{
		Name:  req.Name,
		Skill: req.Skill,
		Notes: req.Notes,
	}

	if err := s.db.Create(team).Error; err != nil {
		return nil, err
	}

	return team, nil
}

func (s *TeamService) GetTeamByID(id uint) (*models.Team, error) {
	var team models.Team

	result := s.db.First(&team, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errors.New("team not found")
		}
		return nil, result.Error
	}

	return &team, nil
}

func (s *TeamService) UpdateTeam(id uint, req models.UpdateTeamRequest) (*models.Team, error) {
	team, err := s.GetTeamByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		team.Name = *req.Name
	}
	if req.Skill != nil {
		team.Skill = req.Skill
	}
	if req.Notes != nil {
		team.Notes = *req.Notes
	}

	// Save runs the BeforeSave validation against the full record
	if err := s.db.Save(team).Error; err != nil {
		return nil, err
	}

	return team, nil
}

// DeleteTeam removes the team. Matches referencing it as opponent survive;
// the database clears their opponent_id (ON DELETE SET NULL).
func (s *TeamService) DeleteTeam(id uint) error {
	result := s.db.Delete(&models.Team{}, id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errors.New("team not found")
	}

	return nil
}

func (s *TeamService) GetAllTeams(page int, pageSize int) (*models.PaginatedTeamsResponse, error) {
	var teams []models.Team
	var total int64

	if err := s.db.Model(&models.Team{}).Count(&total).Error; err != nil {
		return nil, err
	}

	offset := (page - 1) * pageSize

	if err := s.db.Order("name DESC, skill DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&teams).Error; err != nil {
		return nil, err
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))

	return &models.PaginatedTeamsResponse{
		Data:       teams,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}
