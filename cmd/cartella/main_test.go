package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const cliCatalogFixture = `[
  {"id":1,"title":"Fjallraven Backpack","price":109.95,"description":"bag","category":"men's clothing","image":"https://img/1.png","rating":{"rate":3.9,"count":120}},
  {"id":2,"title":"Slim Fit T-Shirt","price":22.3,"description":"shirt","category":"men's clothing","image":"https://img/2.png","rating":{"rate":4.1,"count":259}},
  {"id":3,"title":"Gold Bracelet","price":695,"description":"gold","category":"jewelery","image":"https://img/3.png","rating":{"rate":4.6,"count":400}}
]`

type cliHarness struct {
	t          *testing.T
	dsn        string
	catalogURL string
}

func newCLIHarness(t *testing.T) *cliHarness {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/products" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(cliCatalogFixture))
	}))
	t.Cleanup(srv.Close)
	return &cliHarness{
		t:          t,
		dsn:        filepath.Join(t.TempDir(), "cli.db"),
		catalogURL: srv.URL,
	}
}

func (h *cliHarness) run(args ...string) (string, error) {
	h.t.Helper()
	cli := newCLI()
	var out bytes.Buffer
	cli.root.SetOut(&out)
	cli.root.SetErr(&out)
	cli.root.SetArgs(append([]string{"--driver", "sqlite", "--dsn", h.dsn, "--catalog-url", h.catalogURL}, args...))
	err := cli.Execute()
	return out.String(), err
}

func (h *cliHarness) mustRun(args ...string) string {
	h.t.Helper()
	out, err := h.run(args...)
	require.NoError(h.t, err, "cartella %v", args)
	return out
}

func TestCatalogAndProductsCommands(t *testing.T) {
	h := newCLIHarness(t)

	out := h.mustRun("catalog", "list", "--category", "men's clothing")
	require.Contains(t, out, "Fjallraven Backpack")
	require.NotContains(t, out, "Gold Bracelet")
	require.Contains(t, out, "2 product(s)")

	out = h.mustRun("catalog", "categories")
	require.Equal(t, "jewelery\nmen's clothing\n", out)

	out = h.mustRun("products", "list")
	require.Contains(t, out, "3 of 3 product(s)")

	out = h.mustRun("products", "favourite", "3")
	require.Equal(t, "3 favourite=true\n", out)

	out = h.mustRun("products", "list", "--favourites")
	require.Contains(t, out, "* 3")
	require.NotContains(t, out, "Backpack")

	out = h.mustRun("products", "show", "3")
	require.Contains(t, out, "favourite: true")
	require.Contains(t, out, "in cart: false")

	_, err := h.run("products", "show", "99")
	require.EqualError(t, err, "Alert: Product not available")

	_, err = h.run("products", "show", "abc")
	require.Error(t, err)
}

func TestCatalogSyncCommand(t *testing.T) {
	h := newCLIHarness(t)
	out := h.mustRun("catalog", "sync")
	require.Equal(t, "synced 3 product(s)\n", out)
}

func TestCartCommands(t *testing.T) {
	h := newCLIHarness(t)
	h.mustRun("catalog", "sync")

	out := h.mustRun("cart", "add", "1")
	require.Contains(t, out, "Item added to cart successfully")
	h.mustRun("cart", "add", "1")
	h.mustRun("cart", "add", "2")

	require.Equal(t, "242.20\n", h.mustRun("cart", "total"))

	out = h.mustRun("cart", "list")
	require.Contains(t, out, "x2")
	require.Contains(t, out, "total: 242.20")

	h.mustRun("cart", "qty", "1", "1")
	require.Equal(t, "132.25\n", h.mustRun("cart", "total"))

	_, err := h.run("cart", "qty", "3", "2")
	require.EqualError(t, err, "Error: Item not found in cart")

	_, err = h.run("cart", "pay", "2")
	require.EqualError(t, err, "Error: Enter Card Number")

	out = h.mustRun("cart", "pay", "2", "--card", "4111 1111 1111 1111", "--exp", "12/29", "--cvv", "123")
	require.Equal(t, "paid\n", out)
	require.Equal(t, "109.95\n", h.mustRun("cart", "total"))

	h.mustRun("cart", "clear")
	require.Equal(t, "0.00\n", h.mustRun("cart", "total"))
}

func TestUserAndCardCommands(t *testing.T) {
	h := newCLIHarness(t)

	_, err := h.run("cards", "list")
	require.EqualError(t, err, "Alert: No user is logged in.")

	out := h.mustRun("user", "signup", "ada@example.com", "secret123")
	require.Contains(t, out, "next: create_profile")
	require.Equal(t, "initial\n", h.mustRun("user", "start"))

	out = h.mustRun("user", "profile", "Ada")
	require.Contains(t, out, "ada@example.com")
	require.Contains(t, out, "next: home")
	require.Equal(t, "home\n", h.mustRun("user", "start"))
	require.Equal(t, "Ada <ada@example.com>\n", h.mustRun("user", "show"))

	_, err = h.run("cards", "add", "--number", "4111", "--expiry", "12/29", "--cvv", "123", "--name", "Ada")
	require.Error(t, err)

	out = h.mustRun("cards", "add", "--number", "4111 1111 1111 1111", "--expiry", "12/29", "--cvv", "123", "--name", "Ada")
	require.Contains(t, out, "**** **** **** 1111")

	out = h.mustRun("cards", "list")
	require.Contains(t, out, "**** **** **** 1111")

	h.mustRun("cards", "clear")
	require.Empty(t, h.mustRun("cards", "list"))

	h.mustRun("user", "logout")
	require.Equal(t, "initial\n", h.mustRun("user", "start"))

	// 登出会清除资料完善标记，重新登录后回到完善资料页
	out = h.mustRun("user", "login", "ada@example.com", "secret123")
	require.Contains(t, out, "next: create_profile")

	h.mustRun("user", "delete")
	_, err = h.run("user", "show")
	require.EqualError(t, err, "Alert: No user is logged in.")
}
