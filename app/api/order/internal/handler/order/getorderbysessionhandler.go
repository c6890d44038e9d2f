// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package order

import (
	"net/http"

	"Storefront/app/api/order/internal/logic/order"
	"Storefront/app/api/order/internal/svc"
	"Storefront/app/api/order/internal/types"
	"Storefront/app/common/consts/errno"

	"github.com/zeromicro/go-zero/rest/httpx"
	"github.com/zeromicro/x/errors"
)

func GetOrderBySessionHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.GetOrderBySessionRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, errors.New(errno.InvalidParam, err.Error()))
			return
		}

		l := order.NewGetOrderBySessionLogic(r.Context(), svcCtx)
		resp, err := l.GetOrderBySession(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
