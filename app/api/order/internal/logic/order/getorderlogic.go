package order

import (
	"context"

	"Storefront/app/api/order/internal/logic/helper"
	"Storefront/app/api/order/internal/svc"
	"Storefront/app/api/order/internal/types"
	"Storefront/app/common/consts/errno"
	orderdal "Storefront/app/dal/order"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type GetOrderLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGetOrderLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetOrderLogic {
	return &GetOrderLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *GetOrderLogic) GetOrder(req *types.GetOrderRequest) (resp *types.GetOrderResponse, err error) {
	if req == nil || req.Id <= 0 {
		return nil, errors.New(errno.InvalidParam, errno.InvalidOrderId)
	}

	ord, err := l.svcCtx.Orders.FindOne(l.ctx, req.Id)
	if err != nil {
		if err == orderdal.ErrNotFound {
			return nil, errors.New(errno.NotFound, errno.OrderNotFound)
		}
		l.Logger.Errorf("get order %d failed: %v", req.Id, err)
		return nil, errors.New(errno.InternalError, errno.Internal)
	}

	return &types.GetOrderResponse{
		Data: helper.ToOrderInfo(ord),
	}, nil
}
