package order

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"Storefront/app/api/order/internal/config"
	"Storefront/app/api/order/internal/svc"
	"Storefront/app/common/paysession"
	"Storefront/app/common/response"
	itemdal "Storefront/app/dal/item"
	orderdal "Storefront/app/dal/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/go-zero/rest/httpx"
	"github.com/zeromicro/go-zero/rest/pathvar"
)

func TestMain(m *testing.M) {
	httpx.SetErrorHandlerCtx(response.ErrorHandler)
	os.Exit(m.Run())
}

type stubItems struct {
	itemdal.ItemsModel
	prices map[int64]string
	calls  int
}

func (s *stubItems) FindOne(_ context.Context, id int64) (*itemdal.Items, error) {
	s.calls++
	p, ok := s.prices[id]
	if !ok {
		return nil, itemdal.ErrNotFound
	}
	return &itemdal.Items{Id: id, Name: "Linen shirt", Price: decimal.RequireFromString(p)}, nil
}

type stubOrders struct {
	orderdal.OrdersModel
	inserted []*orderdal.Orders
	stored   *orderdal.Orders
}

func (s *stubOrders) Insert(_ context.Context, data *orderdal.Orders) (sql.Result, error) {
	s.inserted = append(s.inserted, data)
	return nil, nil
}

func (s *stubOrders) FindOne(_ context.Context, id int64) (*orderdal.Orders, error) {
	if s.stored != nil && s.stored.Id == id {
		return s.stored, nil
	}
	return nil, orderdal.ErrNotFound
}

func (s *stubOrders) FindOneByStripeSessionId(_ context.Context, sessionId string) (*orderdal.Orders, error) {
	if s.stored != nil && s.stored.StripeSessionId == sessionId {
		return s.stored, nil
	}
	return nil, orderdal.ErrNotFound
}

type stubPayment struct {
	calls int
	last  *paysession.SessionRequest
	err   error
}

func (s *stubPayment) CreateSession(_ context.Context, in *paysession.SessionRequest) (*paysession.Session, error) {
	s.calls++
	s.last = in
	if s.err != nil {
		return nil, s.err
	}
	return &paysession.Session{Id: "cs_test_abc"}, nil
}

func newServiceContext(items *stubItems, orders *stubOrders, pay *stubPayment) *svc.ServiceContext {
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

const validBody = `{
	"products": [{"id": 1, "count": 2}, {"id": 2, "count": 1}],
	"userName": "ada",
	"email": "ada@example.com",
	"phoneNumber": "555-0100",
	"billingAddress": {"firstName": "Ada", "lastName": "Lovelace", "country": "US", "street1": "5 Elm St", "street2": "Apt 2", "city": "Springfield", "state": "IL", "zipCode": "62701"},
	"shippingAddress": {"firstName": "Ada", "lastName": "Lovelace", "country": "US", "street1": "9 Oak Ave", "street2": "", "city": "Springfield", "state": "IL", "zipCode": "62702"}
}`

func postOrder(t *testing.T, sc *svc.ServiceContext, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	CreateOrderHandler(sc)(rec, req)
	return rec
}

func TestCreateOrderHandlerSuccess(t *testing.T) {
	items := &stubItems{prices: map[int64]string{1: "10", 2: "5"}}
	orders := &stubOrders{}
	pay := &stubPayment{}

	rec := postOrder(t, newServiceContext(items, orders, pay), validBody)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":"cs_test_abc"}`, rec.Body.String())
	assert.Equal(t, 2, items.calls)
	require.Len(t, orders.inserted, 1)
	assert.Equal(t, "cs_test_abc", orders.inserted[0].StripeSessionId)
	assert.Equal(t, "5 Elm St", orders.inserted[0].Billingstreet1)
	assert.Equal(t, "Apt 2", orders.inserted[0].BillingStreet2)
}

func TestCreateOrderHandlerMissingAddress(t *testing.T) {
	items := &stubItems{prices: map[int64]string{1: "10", 2: "5"}}
	orders := &stubOrders{}
	pay := &stubPayment{}

	body := `{"products":[{"id":1,"count":1}],"email":"ada@example.com","billingAddress":{"street1":"5 Elm St"}}`
	rec := postOrder(t, newServiceContext(items, orders, pay), body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":{"message":"Both billingAddress and shippingAddress are required"}}`, rec.Body.String())
	assert.Zero(t, items.calls)
	assert.Zero(t, pay.calls)
	assert.Empty(t, orders.inserted)
}

func TestCreateOrderHandlerBlankAddress(t *testing.T) {
	cases := map[string]string{
		"empty string billing":  `{"products":[{"id":1,"count":1}],"billingAddress":"","shippingAddress":{}}`,
		"false billing":         `{"products":[{"id":1,"count":1}],"billingAddress":false,"shippingAddress":{}}`,
		"zero billing":          `{"products":[{"id":1,"count":1}],"billingAddress":0,"shippingAddress":{}}`,
		"null billing":          `{"products":[{"id":1,"count":1}],"billingAddress":null,"shippingAddress":{}}`,
		"empty string shipping": `{"products":[{"id":1,"count":1}],"billingAddress":{},"shippingAddress":""}`,
		"false shipping":        `{"products":[{"id":1,"count":1}],"billingAddress":{},"shippingAddress":false}`,
		"zero shipping":         `{"products":[{"id":1,"count":1}],"billingAddress":{},"shippingAddress":0}`,
		"empty body":            ``,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			items := &stubItems{prices: map[int64]string{1: "10"}}
			pay := &stubPayment{}
			rec := postOrder(t, newServiceContext(items, &stubOrders{}, pay), body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, `{"error":{"message":"Both billingAddress and shippingAddress are required"}}`, rec.Body.String())
			assert.Zero(t, items.calls)
			assert.Zero(t, pay.calls)
		})
	}
}

func TestCreateOrderHandlerMissingProducts(t *testing.T) {
	items := &stubItems{}
	orders := &stubOrders{}
	pay := &stubPayment{}

	body := `{"billingAddress":{"city":"a"},"shippingAddress":{"city":"b"}}`
	rec := postOrder(t, newServiceContext(items, orders, pay), body)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":{"message":"There was a problem creating the charge"}}`, rec.Body.String())
	assert.Zero(t, items.calls)
	assert.Zero(t, pay.calls)
	assert.Empty(t, orders.inserted)
}

func TestCreateOrderHandlerEchoesAddressMetadata(t *testing.T) {
	pay := &stubPayment{}
	body := `{"products":[{"id":1,"count":1}],"billingAddress":{"city":"a","note":"ring twice"},"shippingAddress":{"zipCode":"62702","city":"b"}}`
	rec := postOrder(t, newServiceContext(&stubItems{prices: map[int64]string{1: "10"}}, &stubOrders{}, pay), body)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, pay.last)
	assert.Equal(t, `{"city":"a","note":"ring twice"}`, pay.last.Metadata["billingAddress"])
	assert.Equal(t, `{"zipCode":"62702","city":"b"}`, pay.last.Metadata["shippingAddress"])
}

func TestCreateOrderHandlerUnknownItem(t *testing.T) {
	items := &stubItems{prices: map[int64]string{1: "10"}}
	orders := &stubOrders{}
	pay := &stubPayment{}

	rec := postOrder(t, newServiceContext(items, orders, pay), validBody)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":{"message":"There was a problem creating the charge"}}`, rec.Body.String())
	assert.Zero(t, pay.calls)
	assert.Empty(t, orders.inserted)
}

func TestCreateOrderHandlerPaymentError(t *testing.T) {
	pay := &stubPayment{err: errors.New("No API key provided")}
	rec := postOrder(t, newServiceContext(&stubItems{prices: map[int64]string{1: "10", 2: "5"}}, &stubOrders{}, pay), validBody)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":{"message":"There was a problem creating the charge"}}`, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "API key")
}

func TestCreateOrderHandlerMalformedBody(t *testing.T) {
	pay := &stubPayment{}
	rec := postOrder(t, newServiceContext(&stubItems{}, &stubOrders{}, pay), `{"products":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, pay.calls)
}

func getWithVars(h http.HandlerFunc, target string, vars map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, http.NoBody)
	req = pathvar.WithVars(req, vars)
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestGetOrderHandler(t *testing.T) {
	orders := &stubOrders{stored: &orderdal.Orders{
		Id:              42,
		StripeSessionId: "cs_test_42",
		Products:        `[{"id":1,"count":2}]`,
		Billingstreet1:  "5 Elm St",
	}}
	sc := newServiceContext(&stubItems{}, orders, &stubPayment{})

	rec := getWithVars(GetOrderHandler(sc), "/api/orders/42", map[string]string{"id": "42"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"stripeSessionId":"cs_test_42"`)
	assert.Contains(t, rec.Body.String(), `"billingstreet1":"5 Elm St"`)

	rec = getWithVars(GetOrderHandler(sc), "/api/orders/7", map[string]string{"id": "7"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":{"message":"order not found"}}`, rec.Body.String())

	rec = getWithVars(GetOrderHandler(sc), "/api/orders/abc", map[string]string{"id": "abc"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetOrderBySessionHandler(t *testing.T) {
	orders := &stubOrders{stored: &orderdal.Orders{Id: 42, StripeSessionId: "cs_test_42", Products: "[]"}}
	sc := newServiceContext(&stubItems{}, orders, &stubPayment{})

	rec := getWithVars(GetOrderBySessionHandler(sc), "/api/sessions/cs_test_42/order", map[string]string{"sessionId": "cs_test_42"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":42`)

	rec = getWithVars(GetOrderBySessionHandler(sc), "/api/sessions/cs_none/order", map[string]string{"sessionId": "cs_none"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
