package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/pokerliga/settlement-service/internal/domain"
	"github.com/pokerliga/settlement-service/internal/infrastructure/postgres/models"
)

type DefaultOrgRepository struct {
	DB *gorm.DB
}

func NewDefaultOrgRepository(db *gorm.DB) *DefaultOrgRepository {
	return &DefaultOrgRepository{DB: db}
}

func (r *DefaultOrgRepository) GetSubclub(ctx context.Context, id string) (*domain.Subclub, error) {
	var model models.SubclubModel
	err := r.DB.WithContext(ctx).Where("id = ?", id).First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &domain.Subclub{ID: model.ID, ClubID: model.ClubID, Name: model.Name}, nil
}

func (r *DefaultOrgRepository) ListSubclubs(ctx context.Context, clubID string) ([]*domain.Subclub, error) {
	var rows []models.SubclubModel
	if err := r.DB.WithContext(ctx).
		Where("club_id = ?", clubID).
		Order("name").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	subclubs := make([]*domain.Subclub, len(rows))
	for i, row := range rows {
		subclubs[i] = &domain.Subclub{ID: row.ID, ClubID: row.ClubID, Name: row.Name}
	}
	return subclubs, nil
}

func (r *DefaultOrgRepository) GetAgentByName(ctx context.Context, clubID, name string) (*domain.Agent, error) {
	var model models.AgentModel
	err := r.DB.WithContext(ctx).
		Joins("JOIN subclubs ON subclubs.id = agents.subclub_id").
		Where("subclubs.club_id = ? AND agents.name = ?", clubID, name).
		First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &domain.Agent{ID: model.ID, SubclubID: model.SubclubID, Name: model.Name}, nil
}

func (r *DefaultOrgRepository) CreateAgent(ctx context.Context, agent *domain.Agent) error {
	return r.DB.WithContext(ctx).Create(&models.AgentModel{
		ID:        agent.ID,
		SubclubID: agent.SubclubID,
		Name:      agent.Name,
	}).Error
}

func (r *DefaultOrgRepository) UpdateAgentSubclub(ctx context.Context, agentID, subclubID string) error {
	return r.DB.WithContext(ctx).
		Model(&models.AgentModel{}).
		Where("id = ?", agentID).
		Update("subclub_id", subclubID).Error
}

func (r *DefaultOrgRepository) GetPlayerByExternalID(ctx context.Context, externalID string) (*domain.Player, error) {
	var model models.PlayerModel
	err := r.DB.WithContext(ctx).Where("external_id = ?", externalID).First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &domain.Player{
		ID:         model.ID,
		AgentID:    model.AgentID,
		ExternalID: model.ExternalID,
		Name:       model.Name,
	}, nil
}

func (r *DefaultOrgRepository) CreatePlayer(ctx context.Context, player *domain.Player) error {
	return r.DB.WithContext(ctx).Create(&models.PlayerModel{
		ID:         player.ID,
		AgentID:    player.AgentID,
		ExternalID: player.ExternalID,
		Name:       player.Name,
	}).Error
}
