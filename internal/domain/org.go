package domain

import "context"

type Club struct {
	ID   string
	Name string
}

type Subclub struct {
	ID     string
	ClubID string
	Name   string
}

type Agent struct {
	ID        string
	SubclubID string
	Name      string
}

type Player struct {
	ID         string
	AgentID    string
	ExternalID string
	Name       string
}

type OrgRepository interface {
	// GetSubclub returns nil, nil for an unknown id.
	GetSubclub(ctx context.Context, id string) (*Subclub, error)
	ListSubclubs(ctx context.Context, clubID string) ([]*Subclub, error)

	// GetAgentByName returns ErrNotFound for an unknown name.
	GetAgentByName(ctx context.Context, clubID, name string) (*Agent, error)
	CreateAgent(ctx context.Context, agent *Agent) error
	// UpdateAgentSubclub re-parents an agent whose subclub assignment changed
	// since the last import.
	UpdateAgentSubclub(ctx context.Context, agentID, subclubID string) error

	// GetPlayerByExternalID returns ErrNotFound for an unknown external ID.
	GetPlayerByExternalID(ctx context.Context, externalID string) (*Player, error)
	CreatePlayer(ctx context.Context, player *Player) error
}
