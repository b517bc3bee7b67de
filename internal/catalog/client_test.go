package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const productsFixture = `[
  {"id":1,"title":"Fjallraven Backpack","price":109.95,"description":"bag","category":"men's clothing","image":"https://img/1.jpg","rating":{"rate":3.9,"count":120}},
  {"id":9,"title":"WD 2TB Elements","price":64,"description":"drive","category":{"id":2,"category":"electronics"},"image":"https://img/9.jpg","rating":{"rate":3.3,"count":203}},
  {"id":14,"title":"Samsung Monitor","price":999.99,"description":"screen","category":{"name":"electronics"},"image":"https://img/14.jpg","rating":{"rate":2.2,"count":140}}
]`

func newCatalogServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, time.Second)
}

func TestFetchProductsDecodesCatalog(t *testing.T) {
	client := newCatalogServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/products", r.URL.Path)
		require.Empty(t, r.URL.RawQuery)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(productsFixture))
	})

	products, err := client.FetchProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 3)
	require.Equal(t, "Fjallraven Backpack", products[0].Title)
	require.Equal(t, Category("men's clothing"), products[0].Category)
	require.Equal(t, Category("electronics"), products[1].Category)
	require.Equal(t, Category("electronics"), products[2].Category)
	require.Equal(t, Rating{Rate: 3.3, Count: 203}, products[1].Rating)

	model := products[0].ToModel()
	require.Equal(t, 1, model.ID)
	require.Equal(t, 3.9, model.Rating)
	require.Equal(t, 120, model.RatingCount)
	require.False(t, model.IsFavourite)
	require.Equal(t, products[0], FromModel(model))
}

func TestFetchProductsServerErrorUsesStructuredMessage(t *testing.T) {
	client := newCatalogServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"status":503,"code":"maintenance","message":"catalog offline"}`))
	})

	_, err := client.FetchProducts(context.Background())
	require.ErrorIs(t, err, ErrServerError)
	var serverErr *ServerError
	require.True(t, errors.As(err, &serverErr))
	require.Equal(t, http.StatusServiceUnavailable, serverErr.StatusCode)
	require.Equal(t, "catalog offline", serverErr.Message)
}

func TestFetchProductsServerErrorFallsBackToStatus(t *testing.T) {
	client := newCatalogServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("not here"))
	})

	_, err := client.FetchProducts(context.Background())
	var serverErr *ServerError
	require.ErrorAs(t, err, &serverErr)
	require.Equal(t, "HTTP 404", serverErr.Message)
}

func TestFetchProductsDecodeFailure(t *testing.T) {
	client := newCatalogServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not":"an array"}`))
	})

	_, err := client.FetchProducts(context.Background())
	require.ErrorIs(t, err, ErrDecodeFailed)
}

func TestFetchProductsInvalidURL(t *testing.T) {
	for _, base := range []string{"", "not a url", "://missing-scheme"} {
		_, err := NewClient(base, time.Second).FetchProducts(context.Background())
		require.ErrorIs(t, err, ErrInvalidURL, "base=%q", base)
	}
}

func TestFetchProductsTransportFailureCollapsesToDecodeFailed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	base := server.URL
	server.Close()

	_, err := NewClient(base, time.Second).FetchProducts(context.Background())
	require.ErrorIs(t, err, ErrDecodeFailed)
}

func TestFetchProductsCancelledContext(t *testing.T) {
	client := newCatalogServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(productsFixture))
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.FetchProducts(ctx)
	require.ErrorIs(t, err, ErrInvalidResponse)
}

func TestFetchProductsAsyncDeliversOnce(t *testing.T) {
	client := newCatalogServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(productsFixture))
	})

	ch := client.FetchProductsAsync(context.Background())
	result, ok := <-ch
	require.True(t, ok)
	require.NoError(t, result.Err)
	require.Len(t, result.Products, 3)
	_, ok = <-ch
	require.False(t, ok, "channel must close after the single result")
}
