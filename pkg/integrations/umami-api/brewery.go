package umamiapi

import (
	"context"

	"github.com/google/uuid"

	"droscher.com/Umami/pkg/model"
	"droscher.com/Umami/pkg/normalize"
	"droscher.com/Umami/pkg/query"
)

func (u *UmamiAPIIntegration) FetchBreweries(ctx context.Context, prefecture *string, limit int, offset int) (*model.BreweryPage, error) {
	response, err := u.fetch(ctx, query.BuildBreweryListQuery(prefecture, limit, offset))
	if err != nil {
		return nil, err
	}

	records, err := decodeData[[]normalize.Record](response.Data)
	if err != nil {
		return nil, err
	}

	return &model.BreweryPage{
		Breweries:  normalize.Breweries(records),
		Pagination: normalize.Pagination(response.Pagination),
	}, nil
}

func (u *UmamiAPIIntegration) FetchBrewery(ctx context.Context, id uuid.UUID) (*model.Brewery, error) {
	response, err := u.fetch(ctx, query.BuildBreweryQuery(id))
	if err != nil {
		return nil, err
	}

	record, err := decodeData[normalize.Record](response.Data)
	if err != nil {
		return nil, err
	}

	brewery := normalize.Brewery(record)

	return &brewery, nil
}
