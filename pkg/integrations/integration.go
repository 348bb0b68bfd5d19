package integrations

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"droscher.com/Umami/configs"
	umamiapi "droscher.com/Umami/pkg/integrations/umami-api"
	"droscher.com/Umami/pkg/model"
	"droscher.com/Umami/pkg/query"
)

// ErrCatalogUnavailable wraps every transport, status and decoding failure of a catalog.
var ErrCatalogUnavailable = umamiapi.ErrCatalogUnavailable

type Catalog interface {
	FetchSakeList(ctx context.Context, params query.ListParams) (*model.SakePage, error)
	FetchSake(ctx context.Context, id uuid.UUID) (*model.Sake, error)
	FetchBreweries(ctx context.Context, prefecture *string, limit int, offset int) (*model.BreweryPage, error)
	FetchBrewery(ctx context.Context, id uuid.UUID) (*model.Brewery, error)
	FetchBrewerySake(ctx context.Context, id uuid.UUID) ([]model.Sake, error)
	FetchFoodPairings(ctx context.Context) ([]model.FoodPairing, error)
	FetchStats(ctx context.Context) (*model.Stats, error)
	FetchClassifications(ctx context.Context) ([]string, error)
	FetchPrefectures(ctx context.Context) ([]string, error)
}

func GetIntegration(name string, conf *configs.Config, logger *zap.Logger) Catalog {
	if name == umamiapi.IntegrationName {
		return umamiapi.NewUmamiAPIIntegration(conf.Catalog, logger)
	}

	return nil
}
