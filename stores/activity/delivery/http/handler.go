package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	bCtx "github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/delivery"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/activity"
)

type handler struct {
	activity activity.Repo
}

func New(e *echo.Echo, repo activity.Repo) {
	h := &handler{repo}
	e.GET("/activities", h.getActivities)
}

func (h *handler) getActivities(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)
	type params struct {
		Collection *domain.Address `query:"collection"`
		TokenId    *domain.TokenId `query:"tokenId"`
		Actor      *domain.Address `query:"actor"`
		Type       *activity.Type  `query:"type"`
		Offset     int             `query:"offset"`
		Limit      int             `query:"limit"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil || p.Offset < 0 || p.Limit < 0 {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	opts := []activity.FindAllOptionsFunc{
		activity.WithPagination(p.Offset, p.Limit),
	}
	if p.Collection != nil && p.TokenId != nil {
		opts = append(opts, activity.WithItem(*p.Collection, *p.TokenId))
	}
	if p.Actor != nil {
		opts = append(opts, activity.WithActor(*p.Actor))
	}
	if p.Type != nil {
		opts = append(opts, activity.WithType(*p.Type))
	}

	res, err := h.activity.FindAll(ctx, opts...)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
