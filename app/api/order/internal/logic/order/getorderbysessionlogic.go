package order

import (
	"context"
	"strings"

	"Storefront/app/api/order/internal/logic/helper"
	"Storefront/app/api/order/internal/svc"
	"Storefront/app/api/order/internal/types"
	"Storefront/app/common/consts/errno"
	orderdal "Storefront/app/dal/order"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type GetOrderBySessionLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGetOrderBySessionLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetOrderBySessionLogic {
	return &GetOrderBySessionLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// GetOrderBySession backs the checkout success page, which only knows the
// Stripe session id.
func (l *GetOrderBySessionLogic) GetOrderBySession(req *types.GetOrderBySessionRequest) (resp *types.GetOrderResponse, err error) {
	if req == nil || strings.TrimSpace(req.SessionId) == "" {
		return nil, errors.New(errno.InvalidParam, errno.InvalidSession)
	}

	ord, err := l.svcCtx.Orders.FindOneByStripeSessionId(l.ctx, req.SessionId)
	if err != nil {
		if err == orderdal.ErrNotFound {
			return nil, errors.New(errno.NotFound, errno.OrderNotFound)
		}
		l.Logger.Errorf("get order by session %s failed: %v", req.SessionId, err)
		return nil, errors.New(errno.InternalError, errno.Internal)
	}

	return &types.GetOrderResponse{
		Data: helper.ToOrderInfo(ord),
	}, nil
}
