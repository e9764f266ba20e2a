package leaguetier

import "github.com/denizatesh/foosleague/internal/models"

// CreateTierInput contains parameters for creating a tier
type CreateTierInput struct {
	Tier *models.LeagueTier
}

// GetTierInput contains parameters for retrieving a tier
type GetTierInput struct {
	Name string
}

// ListTiersInput contains parameters for listing tiers
type ListTiersInput struct{}

// ListTiersOutput contains the result of listing tiers
type ListTiersOutput struct {
	Tiers []*models.LeagueTier
}

// UpdateTierInput contains parameters for updating a tier
type UpdateTierInput struct {
	Tier *models.LeagueTier
}

// DeleteTierInput contains parameters for deleting a tier
type DeleteTierInput struct {
	Name string
}
