package umamiapi

import (
	"context"

	"droscher.com/Umami/pkg/model"
	"droscher.com/Umami/pkg/normalize"
	"droscher.com/Umami/pkg/query"
)

func (u *UmamiAPIIntegration) FetchFoodPairings(ctx context.Context) ([]model.FoodPairing, error) {
	response, err := u.fetch(ctx, query.BuildFoodPairingsQuery())
	if err != nil {
		return nil, err
	}

	records, err := decodeData[[]normalize.Record](response.Data)
	if err != nil {
		return nil, err
	}

	return normalize.FoodPairings(records), nil
}

func (u *UmamiAPIIntegration) FetchStats(ctx context.Context) (*model.Stats, error) {
	response, err := u.fetch(ctx, query.BuildStatsQuery())
	if err != nil {
		return nil, err
	}

	record, err := decodeData[normalize.Record](response.Data)
	if err != nil {
		return nil, err
	}

	stats := normalize.Stats(record)

	return &stats, nil
}

func (u *UmamiAPIIntegration) FetchClassifications(ctx context.Context) ([]string, error) {
	return u.fetchNames(ctx, query.BuildClassificationsQuery())
}

func (u *UmamiAPIIntegration) FetchPrefectures(ctx context.Context) ([]string, error) {
	return u.fetchNames(ctx, query.BuildPrefecturesQuery())
}

func (u *UmamiAPIIntegration) fetchNames(ctx context.Context, q query.Query) ([]string, error) {
	response, err := u.fetch(ctx, q)
	if err != nil {
		return nil, err
	}

	return decodeData[[]string](response.Data)
}
