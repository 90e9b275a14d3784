package upstream

import (
	"context"
	"fmt"

	"bellebook/internal/domain/catalog"
)

// CatalogGateway reads the professional profile and prestation list the
// wizard is entered with.
type CatalogGateway struct {
	client *Client
}

func NewCatalogGateway(client *Client) *CatalogGateway {
	return &CatalogGateway{client: client}
}

type professionalDTO struct {
	ID           int64  `json:"id"`
	DisplayName  string `json:"display_name"`
	ActivityName string `json:"activity_name"`
	City         string `json:"city"`
	AvatarURL    string `json:"avatar_url"`
}

type prestationDTO struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration"`
	Active          bool    `json:"active"`
}

func (g *CatalogGateway) Professional(ctx context.Context, token string, proID int64) (catalog.Professional, error) {
	var dto professionalDTO
	if err := g.client.get(ctx, token, fmt.Sprintf("/users/pros/%d", proID), &dto); err != nil {
		return catalog.Professional{}, err
	}
	return catalog.Professional{
		ID:           dto.ID,
		DisplayName:  dto.DisplayName,
		ActivityName: dto.ActivityName,
		City:         dto.City,
		AvatarURL:    dto.AvatarURL,
	}, nil
}

func (g *CatalogGateway) Prestations(ctx context.Context, token string, proID int64) ([]catalog.Prestation, error) {
	var dtos []prestationDTO
	if err := g.client.get(ctx, token, fmt.Sprintf("/prestations/pro/%d", proID), &dtos); err != nil {
		return nil, err
	}
	prestations := make([]catalog.Prestation, 0, len(dtos))
	for _, d := range dtos {
		prestations = append(prestations, catalog.Prestation{
			ID:              d.ID,
			Name:            d.Name,
			Description:     d.Description,
			Price:           d.Price,
			DurationMinutes: d.DurationMinutes,
			Active:          d.Active,
		})
	}
	return prestations, nil
}
