package umamiapi

import (
	"context"

	"github.com/google/uuid"

	"droscher.com/Umami/pkg/model"
	"droscher.com/Umami/pkg/normalize"
	"droscher.com/Umami/pkg/query"
)

func (u *UmamiAPIIntegration) FetchSakeList(ctx context.Context, params query.ListParams) (*model.SakePage, error) {
	response, err := u.fetch(ctx, query.BuildListQuery(params))
	if err != nil {
		return nil, err
	}

	records, err := decodeData[[]normalize.Record](response.Data)
	if err != nil {
		return nil, err
	}

	return &model.SakePage{
		Sakes:      normalize.Sakes(records),
		Pagination: normalize.Pagination(response.Pagination),
	}, nil
}

func (u *UmamiAPIIntegration) FetchSake(ctx context.Context, id uuid.UUID) (*model.Sake, error) {
	response, err := u.fetch(ctx, query.BuildDetailQuery(id))
	if err != nil {
		return nil, err
	}

	record, err := decodeData[normalize.Record](response.Data)
	if err != nil {
		return nil, err
	}

	sake := normalize.Sake(record)

	return &sake, nil
}

func (u *UmamiAPIIntegration) FetchBrewerySake(ctx context.Context, id uuid.UUID) ([]model.Sake, error) {
	response, err := u.fetch(ctx, query.BuildBrewerySakeQuery(id))
	if err != nil {
		return nil, err
	}

	records, err := decodeData[[]normalize.Record](response.Data)
	if err != nil {
		return nil, err
	}

	return normalize.Sakes(records), nil
}
