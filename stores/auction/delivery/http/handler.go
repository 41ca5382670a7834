package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/core-launch/goapi/base/ctx"
	"github.com/core-launch/goapi/base/delivery"
	"github.com/core-launch/goapi/base/metrics"
	"github.com/core-launch/goapi/domain"
	"github.com/core-launch/goapi/domain/auction"
	"github.com/core-launch/goapi/middleware"
)

var met metrics.Service

type handler struct {
	chainId domain.ChainId
	auction auction.UseCase
}

// New registers the auction endpoints. All routes address one asset via its
// collection and token id; the network is fixed by configuration.
func New(e *echo.Echo, chainId domain.ChainId, auction auction.UseCase) {
	met = metrics.New("auction")

	h := &handler{chainId, auction}

	g := e.Group("/auction/:collection/:tokenId", middleware.IsValidAddress("collection"))

	g.GET("", h.get)

	g.GET("/bids", h.getBids)

	g.POST("/start", h.start)

	g.POST("/bids", h.placeBid)

	g.POST("/accept", h.acceptBid)

	g.POST("/withdraw", h.withdrawBid)
}

type assetParams struct {
	Collection domain.Address `param:"collection" validate:"required"`
	TokenId    domain.TokenId `param:"tokenId" validate:"required"`
	Viewer     domain.Address `query:"viewer"`
}

func (h *handler) id(p *assetParams) auction.Id {
	return auction.Id{
		ChainId:    h.chainId,
		Collection: p.Collection.ToLower(),
		TokenId:    p.TokenId,
	}
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &assetParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	view, err := h.auction.GetView(ctx, h.id(p), p.Viewer.ToLower())
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, view)
}

func (h *handler) getBids(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &assetParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	bids, err := h.auction.GetBids(ctx, h.id(p))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, bids)
}

type startParams struct {
	assetParams
	MinBid   string `json:"minBid" validate:"required"`
	Duration int64  `json:"duration" validate:"gt=0"` // seconds
	Message  string `json:"message"`
}

func (h *handler) start(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &startParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	defer met.BumpTime("time", "action", "start").End()

	payload := auction.StartPayload{
		MinBid:   p.MinBid,
		Duration: time.Duration(p.Duration) * time.Second,
		Message:  p.Message,
	}
	view, err := h.auction.Start(ctx, h.id(&p.assetParams), payload)
	if err != nil {
		met.BumpSum("start.err", 1)
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, view)
}

type placeBidParams struct {
	assetParams
	Amount  string `json:"amount" validate:"required"`
	Message string `json:"message"`
}

func (h *handler) placeBid(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &placeBidParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	defer met.BumpTime("time", "action", "placeBid").End()

	view, err := h.auction.PlaceBid(ctx, h.id(&p.assetParams), p.Amount, p.Message)
	if err != nil {
		met.BumpSum("placeBid.err", 1)
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, view)
}

func (h *handler) acceptBid(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &assetParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	defer met.BumpTime("time", "action", "acceptBid").End()

	view, err := h.auction.AcceptBid(ctx, h.id(p))
	if err != nil {
		met.BumpSum("acceptBid.err", 1)
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, view)
}

func (h *handler) withdrawBid(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &assetParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	defer met.BumpTime("time", "action", "withdrawBid").End()

	view, err := h.auction.WithdrawBid(ctx, h.id(p))
	if err != nil {
		met.BumpSum("withdrawBid.err", 1)
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, view)
}
