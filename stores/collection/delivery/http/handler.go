package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/core-launch/goapi/base/ctx"
	"github.com/core-launch/goapi/base/delivery"
	"github.com/core-launch/goapi/base/metrics"
	"github.com/core-launch/goapi/domain"
	"github.com/core-launch/goapi/domain/collection"
	"github.com/core-launch/goapi/middleware"
)

var met metrics.Service

type handler struct {
	chainId    domain.ChainId
	collection collection.UseCase
}

// New registers the collection registry endpoints.
func New(e *echo.Echo, chainId domain.ChainId, collection collection.UseCase) {
	met = metrics.New("collection")

	h := &handler{chainId, collection}

	gs := e.Group("/collections")

	gs.GET("", h.getAll)

	gs.GET("/count", h.count)

	gs.POST("", h.create)

	g := e.Group("/collection/:contract", middleware.IsValidAddress("contract"))

	g.GET("", h.get)

	g.GET("/stats", h.getStats)

	g.GET("/nfts", h.getNFTs)

	g.GET("/balance/:owner", h.getBalance, middleware.IsValidAddress("owner"))
}

type contractParams struct {
	Contract domain.Address `param:"contract" validate:"required"`
}

func (h *handler) getAll(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &collection.SearchParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	infos, err := h.collection.List(ctx, h.chainId, p)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, infos)
}

func (h *handler) count(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	count, err := h.collection.Count(ctx, h.chainId)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, count)
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &collection.CreatePayload{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	defer met.BumpTime("time", "action", "create").End()

	result, err := h.collection.Create(ctx, h.chainId, *p)
	if err != nil {
		met.BumpSum("create.err", 1)
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, result)
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &contractParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	info, err := h.collection.FindOne(ctx, h.chainId, p.Contract.ToLower())
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, info)
}

func (h *handler) getStats(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &contractParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	stats, err := h.collection.Stats(ctx, h.chainId, p.Contract.ToLower())
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, stats)
}

type balanceParams struct {
	Contract domain.Address `param:"contract" validate:"required"`
	Owner    domain.Address `param:"owner" validate:"required"`
}

func (h *handler) getBalance(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &balanceParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	balance, err := h.collection.Balance(ctx, h.chainId, p.Contract.ToLower(), p.Owner.ToLower())
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, balance)
}

func (h *handler) getNFTs(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &contractParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	nfts, err := h.collection.ListNFTs(ctx, h.chainId, p.Contract.ToLower())
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nfts)
}
