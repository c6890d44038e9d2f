// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package order

import (
	"bytes"
	"io"
	"net/http"

	"Storefront/app/api/order/internal/logic/order"
	"Storefront/app/api/order/internal/svc"
	"Storefront/app/api/order/internal/types"
	"Storefront/app/common/consts/errno"

	"github.com/zeromicro/go-zero/rest/httpx"
	"github.com/zeromicro/x/errors"
)

// same cap httpx applies to json bodies
const maxBodyLen = 8 << 20

func CreateOrderHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyLen))
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, errors.New(errno.InvalidParam, err.Error()))
			return
		}
		addrs, err := order.ParseCheckoutAddresses(body)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, errors.New(errno.InvalidParam, err.Error()))
			return
		}

		// blank addresses are rejected by the logic, not the parser
		var req types.CreateOrderRequest
		if addrs.Complete() {
			r.Body = io.NopCloser(bytes.NewReader(body))
			if err := httpx.Parse(r, &req); err != nil {
				httpx.ErrorCtx(r.Context(), w, errors.New(errno.InvalidParam, err.Error()))
				return
			}
		}

		l := order.NewCreateOrderLogic(r.Context(), svcCtx)
		resp, err := l.CreateOrder(&req, addrs)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
