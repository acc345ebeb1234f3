package recipesrepobridge

import (
	"context"
	"net/http"

	"github.com/jrazmi/crudkit/bridge/scaffolding/errs"
	"github.com/jrazmi/crudkit/bridge/scaffolding/fopbridge"
	"github.com/jrazmi/crudkit/core/repositories/recipesrepo"
	"github.com/jrazmi/crudkit/infrastructure/web"
	"github.com/jrazmi/crudkit/sdk/logger"
)

type bridge struct {
	log            *logger.Logger
	repository     *recipesrepo.Repository
	deleteResponse string
}

func newBridge(cfg Config) *bridge {
	return &bridge{
		log:            cfg.Log,
		repository:     cfg.Repository,
		deleteResponse: cfg.DeleteResponse,
	}
}

func (b *bridge) httpList(ctx context.Context, r *http.Request) web.Encoder {
	filter, err := parseFilter(r)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	page, err := fopbridge.ParsePage(r)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	total, err := b.repository.Count(ctx, filter)
	if err != nil {
		return errs.FromRepository(err, recipesrepo.Resource)
	}

	recipes, err := b.repository.List(ctx, filter, page)
	if err != nil {
		return errs.FromRepository(err, recipesrepo.Resource)
	}

	fopbridge.SetTotalCount(ctx, total)
	return web.NewJSONResponse(recipes)
}

func (b *bridge) httpGetByID(ctx context.Context, r *http.Request) web.Encoder {
	id, err := web.ParamInt(r, "id")
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	recipe, err := b.repository.Get(ctx, id)
	if err != nil {
		return errs.FromRepository(err, recipesrepo.Resource)
	}

	return web.NewJSONResponse(recipe)
}

func (b *bridge) httpCreate(ctx context.Context, r *http.Request) web.Encoder {
	var input CreateRecipeInput
	if err := web.Decode(r, &input); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	recipe, err := b.repository.Create(ctx, input.toRepository())
	if err != nil {
		return errs.FromRepository(err, recipesrepo.Resource)
	}

	return web.NewJSONResponseWithStatus(recipe, http.StatusCreated)
}

func (b *bridge) httpUpdate(ctx context.Context, r *http.Request) web.Encoder {
	id, err := web.ParamInt(r, "id")
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	var input UpdateRecipeInput
	if err := web.Decode(r, &input); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	recipe, err := b.repository.Update(ctx, id, input.toRepository())
	if err != nil {
		return errs.FromRepository(err, recipesrepo.Resource)
	}

	return web.NewJSONResponse(recipe)
}

func (b *bridge) httpDelete(ctx context.Context, r *http.Request) web.Encoder {
	id, err := web.ParamInt(r, "id")
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	if err := b.repository.Delete(ctx, id); err != nil {
		return errs.FromRepository(err, recipesrepo.Resource)
	}

	return fopbridge.DeleteResponse(b.deleteResponse, recipesrepo.Resource, id)
}
