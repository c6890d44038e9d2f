package order

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"sync"
	"time"

	"Storefront/app/api/order/internal/config"
	"Storefront/app/api/order/internal/svc"
	"Storefront/app/common/paysession"
	itemdal "Storefront/app/dal/item"
	orderdal "Storefront/app/dal/order"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

var errNotImplemented = errors.New("not implemented")

type fakeItems struct {
	mu    sync.Mutex
	items map[int64]*itemdal.Items
	errs  map[int64]error
	delay map[int64]time.Duration
	calls []int64
}

func newFakeItems(prices map[int64]string) *fakeItems {
	f := &fakeItems{
		items: map[int64]*itemdal.Items{},
		errs:  map[int64]error{},
		delay: map[int64]time.Duration{},
	}
	for id, p := range prices {
		f.items[id] = &itemdal.Items{Id: id, Name: "item-" + strconv.FormatInt(id, 10), Price: decimal.RequireFromString(p)}
	}
	return f
}

func (f *fakeItems) FindOne(_ context.Context, id int64) (*itemdal.Items, error) {
	f.mu.Lock()
	d := f.delay[id]
	f.calls = append(f.calls, id)
	f.mu.Unlock()

	if d > 0 {
		time.Sleep(d)
	}
	if err := f.errs[id]; err != nil {
		return nil, err
	}
	it, ok := f.items[id]
	if !ok {
		return nil, itemdal.ErrNotFound
	}
	return it, nil
}

func (f *fakeItems) Calls() []int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]int64(nil), f.calls...)
}

func (f *fakeItems) Insert(context.Context, *itemdal.Items) (sql.Result, error) {
	return nil, errNotImplemented
}

func (f *fakeItems) Update(context.Context, *itemdal.Items) error { return errNotImplemented }

func (f *fakeItems) Delete(context.Context, int64) error { return errNotImplemented }

type fakeOrders struct {
	inserted  []*orderdal.Orders
	insertErr error
	byId      map[int64]*orderdal.Orders
	findErr   error
}

func (f *fakeOrders) Insert(_ context.Context, data *orderdal.Orders) (sql.Result, error) {
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	f.inserted = append(f.inserted, data)
	return nil, nil
}

func (f *fakeOrders) FindOne(_ context.Context, id int64) (*orderdal.Orders, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	if o, ok := f.byId[id]; ok {
		return o, nil
	}
	return nil, orderdal.ErrNotFound
}

func (f *fakeOrders) FindOneByStripeSessionId(_ context.Context, sessionId string) (*orderdal.Orders, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, o := range f.byId {
		if o.StripeSessionId == sessionId {
			return o, nil
		}
	}
	return nil, orderdal.ErrNotFound
}

func (f *fakeOrders) Update(context.Context, *orderdal.Orders) error { return errNotImplemented }

func (f *fakeOrders) Delete(context.Context, int64) error { return errNotImplemented }

type fakePayment struct {
	requests []*paysession.SessionRequest
	session  *paysession.Session
	err      error
}

func (f *fakePayment) CreateSession(_ context.Context, req *paysession.SessionRequest) (*paysession.Session, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}
	return f.session, nil
}

type fakeWriter struct {
	msgs []kafka.Message
	err  error
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func (f *fakeWriter) Close() error { return nil }

func newTestServiceContext(items *fakeItems, orders *fakeOrders, pay *fakePayment) *svc.ServiceContext {
	return &svc.ServiceContext{
		Config: config.Config{
			StripeConf: paysession.StripeConf{
				SuccessURL: "http://localhost:3000/checkout/success",
				CancelURL:  "http://localhost:3000",
				Currency:   "usd",
			},
		},
		Items:   items,
		Orders:  orders,
		Payment: pay,
	}
}
