package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creastat/storefront"
	"github.com/creastat/storefront/api"
)

// recordingServer captures the last request so tests can assert on paths,
// headers and bodies the backend would have seen.
type recordingServer struct {
	*httptest.Server

	method string
	path   string
	query  string
	header http.Header
	body   []byte
}

func newRecordingServer(t *testing.T, status int, response string) *recordingServer {
	t.Helper()
	rs := &recordingServer{}
	rs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rs.method = r.Method
		rs.path = r.URL.Path
		rs.query = r.URL.RawQuery
		rs.header = r.Header.Clone()
		rs.body, _ = io.ReadAll(r.Body)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(rs.Close)
	return rs
}

func newClient(t *testing.T, srv *recordingServer, tokens api.TokenSource) *api.Client {
	t.Helper()
	client, err := api.New(api.Config{
		BaseURL: srv.URL,
		Tokens:  tokens,
	})
	require.NoError(t, err)
	return client
}

func TestAuthenticatedCalls_CarryTokenHeader(t *testing.T) {
	srv := newRecordingServer(t, http.StatusOK, `{"status":"success","numOfCartItems":0,"cartId":"c1","data":{"_id":"c1","products":[]}}`)
	client := newClient(t, srv, api.StaticToken("jwt-abc"))

	_, err := client.GetCart(context.Background())
	require.NoError(t, err)

	// The backend reads the credential from a header literally named
	// "token", not an Authorization scheme.
	assert.Equal(t, "jwt-abc", srv.header.Get("token"))
	assert.Empty(t, srv.header.Get("Authorization"))
}

func TestPublicCalls_OmitTokenHeader(t *testing.T) {
	srv := newRecordingServer(t, http.StatusOK, `{"results":1,"data":[{"_id":"p1","title":"Shawl"}]}`)
	client := newClient(t, srv, api.StaticToken("jwt-abc"))

	products, err := client.Products(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "p1", products[0].ID)
	assert.Empty(t, srv.header.Get("token"))
}

func TestAuthenticatedCalls_WithoutTokenFailFast(t *testing.T) {
	srv := newRecordingServer(t, http.StatusOK, `{}`)

	t.Run("nil source", func(t *testing.T) {
		client := newClient(t, srv, nil)
		_, err := client.GetCart(context.Background())
		assert.ErrorIs(t, err, storefront.ErrNotAuthenticated)
	})

	t.Run("empty token", func(t *testing.T) {
		client := newClient(t, srv, api.StaticToken(""))
		_, err := client.GetCart(context.Background())
		assert.ErrorIs(t, err, storefront.ErrNotAuthenticated)
	})
}

func TestErrorEnvelope_MappedToError(t *testing.T) {
	srv := newRecordingServer(t, http.StatusUnauthorized, `{"statusMsg":"fail","message":"Incorrect email or password"}`)
	client := newClient(t, srv, nil)

	_, err := client.SignIn(context.Background(), api.Credentials{Email: "a@b.co", Password: "x"})
	require.Error(t, err)

	var apiErr *api.Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "fail", apiErr.Status)
	assert.Equal(t, "Incorrect email or password", apiErr.Message)
	assert.Contains(t, apiErr.Error(), "Incorrect email or password")
}

func TestAddCartItem_SendsProductIDBody(t *testing.T) {
	srv := newRecordingServer(t, http.StatusOK, `{"status":"success","numOfCartItems":1,"cartId":"c1"}`)
	client := newClient(t, srv, api.StaticToken("jwt"))

	resp, err := client.AddCartItem(context.Background(), "p42")
	require.NoError(t, err)
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, "c1", resp.CartID)

	assert.Equal(t, http.MethodPost, srv.method)
	assert.Equal(t, "/cart", srv.path)
	assert.JSONEq(t, `{"productId":"p42"}`, string(srv.body))
	assert.Equal(t, "application/json", srv.header.Get("Content-Type"))
}

func TestUpdateCartItem_SendsCountBody(t *testing.T) {
	srv := newRecordingServer(t, http.StatusOK, `{"status":"success"}`)
	client := newClient(t, srv, api.StaticToken("jwt"))

	_, err := client.UpdateCartItem(context.Background(), "p42", 3)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, srv.method)
	assert.Equal(t, "/cart/p42", srv.path)
	assert.JSONEq(t, `{"count":3}`, string(srv.body))
}

func TestCreateCheckoutSession_PassesReturnURLQuery(t *testing.T) {
	srv := newRecordingServer(t, http.StatusOK, `{"status":"success","session":{"url":"https://pay.example/s/1"}}`)
	client := newClient(t, srv, api.StaticToken("jwt"))

	addr := api.ShippingAddress{Details: "Flat 3", Phone: "01012345678", City: "Giza"}
	resp, err := client.CreateCheckoutSession(context.Background(), "c1", "http://localhost:5173", addr)
	require.NoError(t, err)
	assert.Equal(t, "https://pay.example/s/1", resp.Session.URL)

	assert.Equal(t, "/orders/checkout-session/c1", srv.path)
	assert.Equal(t, "url=http%3A%2F%2Flocalhost%3A5173", srv.query)

	var body struct {
		ShippingAddress api.ShippingAddress `json:"shippingAddress"`
	}
	require.NoError(t, json.Unmarshal(srv.body, &body))
	assert.Equal(t, addr, body.ShippingAddress)
}

func TestUserOrders_DecodesBareArray(t *testing.T) {
	srv := newRecordingServer(t, http.StatusOK, `[{"_id":"o1"},{"_id":"o2"}]`)
	client := newClient(t, srv, api.StaticToken("jwt"))

	orders, err := client.UserOrders(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "/orders/user/u1", srv.path)
}

func TestGetCart_DecodesEnvelope(t *testing.T) {
	srv := newRecordingServer(t, http.StatusOK, `{
		"status": "success",
		"numOfCartItems": 2,
		"cartId": "c9",
		"data": {
			"_id": "c9",
			"cartOwner": "u1",
			"products": [
				{"count": 2, "price": 149, "product": {"_id": "p1", "title": "Shawl"}}
			],
			"totalCartPrice": 298
		}
	}`)
	client := newClient(t, srv, api.StaticToken("jwt"))

	resp, err := client.GetCart(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, resp.NumOfCartItems)
	assert.Equal(t, "c9", resp.CartID)
	assert.Equal(t, "u1", resp.Data.CartOwner)
	require.Len(t, resp.Data.Products, 1)
	assert.Equal(t, 2, resp.Data.Products[0].Count)
	assert.Equal(t, "p1", resp.Data.Products[0].Product.ID)
	assert.True(t, resp.Data.TotalCartPrice.Equal(resp.Data.Products[0].Price.Mul(decimal.NewFromInt(2))))
}
