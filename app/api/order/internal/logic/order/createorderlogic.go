package order

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"Storefront/app/api/order/internal/mq"
	"Storefront/app/api/order/internal/svc"
	"Storefront/app/api/order/internal/types"
	"Storefront/app/common/consts/errno"
	"Storefront/app/common/paysession"
	"Storefront/app/common/snowflake"
	orderdal "Storefront/app/dal/order"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
	"golang.org/x/sync/errgroup"
)

type CreateOrderLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewCreateOrderLogic(ctx context.Context, svcCtx *svc.ServiceContext) *CreateOrderLogic {
	return &CreateOrderLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// CreateOrder prices the cart, opens a Stripe checkout session and records the
// order against it. The session is created before the order row and is not
// cancelled if the insert fails.
func (l *CreateOrderLogic) CreateOrder(req *types.CreateOrderRequest, addrs *CheckoutAddresses) (resp *types.CreateOrderResponse, err error) {
	if req == nil || !addrs.Complete() || req.BillingAddress == nil || req.ShippingAddress == nil {
		return nil, errors.New(errno.InvalidParam, errno.AddressRequired)
	}
	if req.Products == nil {
		l.Logger.Errorf("create order: request has no products")
		return nil, errors.New(errno.InternalError, errno.ChargeFailed)
	}

	lineItems, err := l.resolveLineItems(req.Products)
	if err != nil {
		l.Logger.Errorf("create order: resolve line items failed: %v", err)
		return nil, errors.New(errno.InternalError, errno.ChargeFailed)
	}

	sessReq, err := l.sessionRequest(req, addrs, lineItems)
	if err != nil {
		l.Logger.Errorf("create order: build session request failed: %v", err)
		return nil, errors.New(errno.InternalError, errno.ChargeFailed)
	}
	sess, err := l.svcCtx.Payment.CreateSession(l.ctx, sessReq)
	if err != nil {
		l.Logger.Errorf("create order: create checkout session failed: %v", err)
		return nil, errors.New(errno.InternalError, errno.ChargeFailed)
	}

	record, err := newOrderRecord(req, sess.Id)
	if err != nil {
		l.Logger.Errorf("create order: build order for session %s failed: %v", sess.Id, err)
		return nil, errors.New(errno.InternalError, errno.ChargeFailed)
	}
	if _, err := l.svcCtx.Orders.Insert(l.ctx, record); err != nil {
		l.Logger.Errorf("create order: insert order failed, session %s has no order: %v", sess.Id, err)
		return nil, errors.New(errno.InternalError, errno.ChargeFailed)
	}

	evt := mq.NewOrderCreatedEvent(record, time.Now())
	if err := mq.PublishOrderCreated(l.ctx, l.svcCtx, evt); err != nil {
		l.Logger.Errorf("create order: publish order %d failed: %v", record.Id, err)
	}

	return &types.CreateOrderResponse{Id: sess.Id}, nil
}

// resolveLineItems looks every product up concurrently. The result keeps the
// request order; the first lookup error fails the whole batch.
func (l *CreateOrderLogic) resolveLineItems(products []types.ProductRef) ([]paysession.LineItem, error) {
	currency := l.svcCtx.Config.StripeConf.Currency
	items := make([]paysession.LineItem, len(products))

	var g errgroup.Group
	for i, p := range products {
		i, p := i, p
		g.Go(func() error {
			it, err := l.svcCtx.Items.FindOne(l.ctx, p.Id)
			if err != nil {
				return fmt.Errorf("find item %d: %w", p.Id, err)
			}
			items[i] = paysession.LineItem{
				Currency:    currency,
				ProductName: it.Name,
				UnitAmount:  it.UnitAmount(),
				Quantity:    p.Count,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return items, nil
}

func (l *CreateOrderLogic) sessionRequest(req *types.CreateOrderRequest, addrs *CheckoutAddresses, lineItems []paysession.LineItem) (*paysession.SessionRequest, error) {
	shipping, err := compact(addrs.Shipping)
	if err != nil {
		return nil, err
	}
	billing, err := compact(addrs.Billing)
	if err != nil {
		return nil, err
	}

	conf := l.svcCtx.Config.StripeConf
	return &paysession.SessionRequest{
		PaymentMethodTypes: []string{paysession.PaymentMethodCard},
		CustomerEmail:      req.Email,
		Mode:               paysession.ModePayment,
		SuccessURL:         conf.SuccessURL,
		CancelURL:          conf.CancelURL,
		LineItems:          lineItems,
		Metadata: map[string]string{
			"shippingAddress": shipping,
			"billingAddress":  billing,
			"phoneNumber":     req.PhoneNumber,
		},
	}, nil
}

func newOrderRecord(req *types.CreateOrderRequest, sessionId string) (*orderdal.Orders, error) {
	productsJson, err := json.Marshal(req.Products)
	if err != nil {
		return nil, err
	}

	b, s := req.BillingAddress, req.ShippingAddress
	return &orderdal.Orders{
		Id:                snowflake.Next(),
		UserName:          req.UserName,
		Products:          string(productsJson),
		StripeSessionId:   sessionId,
		Email:             req.Email,
		PhoneNumber:       req.PhoneNumber,
		BillingFirstName:  b.FirstName,
		BillingLastName:   b.LastName,
		BillingCountry:    b.Country,
		Billingstreet1:    b.Street1,
		BillingStreet2:    b.Street2,
		BillingCity:       b.City,
		BillingState:      b.State,
		BillingZipCode:    b.ZipCode,
		ShippingFirstName: s.FirstName,
		ShippingLastName:  s.LastName,
		ShippingCountry:   s.Country,
		Shippingstreet1:   s.Street1,
		ShippingStreet2:   s.Street2,
		ShippingCity:      s.City,
		ShippingState:     s.State,
		ShippingZipCode:   s.ZipCode,
	}, nil
}
