package league

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/denizatesh/foosleague/internal/services/league Service

// Service defines the interface for league tiers, standings and settlement
type Service interface {
	// Settle resolves every active, decided match into standing updates
	// and deactivates it. Scope is one fixture when FixtureID is set,
	// otherwise all fixtures. Returns the full standings after settlement.
	Settle(ctx context.Context, input *SettleInput) (*SettleOutput, error)

	// CreateTier defines a new league tier
	CreateTier(ctx context.Context, input *CreateTierInput) (*CreateTierOutput, error)

	// GetTier retrieves a tier by name
	GetTier(ctx context.Context, input *GetTierInput) (*GetTierOutput, error)

	// ListTiers retrieves all tier definitions
	ListTiers(ctx context.Context, input *ListTiersInput) (*ListTiersOutput, error)

	// UpdateTier replaces an existing tier's point value
	UpdateTier(ctx context.Context, input *UpdateTierInput) (*UpdateTierOutput, error)

	// DeleteTier removes a tier by name
	DeleteTier(ctx context.Context, input *DeleteTierInput) (*DeleteTierOutput, error)

	// ListStandings retrieves all standings
	ListStandings(ctx context.Context, input *ListStandingsInput) (*ListStandingsOutput, error)

	// ListStandingsByPlayer retrieves one player's standings across games
	ListStandingsByPlayer(ctx context.Context, input *ListStandingsByPlayerInput) (*ListStandingsOutput, error)

	// ListStandingsByGame retrieves all standings within one game
	ListStandingsByGame(ctx context.Context, input *ListStandingsByGameInput) (*ListStandingsOutput, error)

	// DeleteStandings removes every standing a player holds
	DeleteStandings(ctx context.Context, input *DeleteStandingsInput) (*DeleteStandingsOutput, error)
}
