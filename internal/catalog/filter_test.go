package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func titles(products []Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.Title)
	}
	return out
}

func TestFilterProductsByCategoryAndQuery(t *testing.T) {
	products := []Product{
		{ID: 1, Title: "iPhone Case", Category: "electronics"},
		{ID: 2, Title: "Smartphone Stand", Category: "electronics"},
		{ID: 3, Title: "Phone Pouch", Category: "women's clothing"},
		{ID: 4, Title: "SSD Drive", Category: "electronics"},
	}

	got := FilterProducts(products, "electronics", "PHONE")
	if diff := cmp.Diff([]string{"iPhone Case", "Smartphone Stand"}, titles(got)); diff != "" {
		t.Fatalf("unexpected filter result (-want +got):\n%s", diff)
	}
	require.Len(t, FilterProducts(products, "", ""), 4)
	require.Len(t, FilterProducts(products, "", "phone"), 3)
	require.Empty(t, FilterProducts(products, "jewelery", ""))
}

func TestCategoriesSortedUnique(t *testing.T) {
	products := []Product{
		{Category: "men's clothing"},
		{Category: "electronics"},
		{Category: "men's clothing"},
		{Category: ""},
		{Category: "jewelery"},
	}
	if diff := cmp.Diff([]string{"electronics", "jewelery", "men's clothing"}, Categories(products)); diff != "" {
		t.Fatalf("unexpected categories (-want +got):\n%s", diff)
	}
	require.Empty(t, Categories(nil))
}

func TestFetchThenFilterEndToEnd(t *testing.T) {
	fixture := []map[string]interface{}{
		{"id": 1, "title": "Gaming Phone X", "price": 499.0, "category": "electronics"},
		{"id": 2, "title": "phone charger", "price": 19.5, "category": "electronics"},
		{"id": 3, "title": "Headphones", "price": 89.0, "category": "electronics"},
		{"id": 4, "title": "Phone Wallet", "price": 25.0, "category": "women's clothing"},
		{"id": 5, "title": "Laptop", "price": 999.0, "category": "electronics"},
	}
	client := newCatalogServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewEncoder(w).Encode(fixture))
	})

	products, err := client.FetchProducts(context.Background())
	require.NoError(t, err)
	filtered := FilterProducts(products, "electronics", "phone")
	require.Len(t, filtered, 3)
	for _, p := range filtered {
		require.Equal(t, Category("electronics"), p.Category)
		require.Contains(t, []int{1, 2, 3}, p.ID)
	}
}

func TestCategoryUnmarshalRejectsNumbers(t *testing.T) {
	var c Category
	require.Error(t, json.Unmarshal([]byte(`42`), &c))
	require.NoError(t, json.Unmarshal([]byte(`null`), &c))
	require.Equal(t, Category(""), c)
	require.NoError(t, json.Unmarshal([]byte(`{"id":3}`), &c))
	require.Equal(t, Category(""), c)
}
