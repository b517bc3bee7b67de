package catalog

import (
	"sort"
	"strings"
)

// FilterProducts 先按分类相等过滤，再按标题大小写不敏感包含过滤；空条件不生效
func FilterProducts(products []Product, category, query string) []Product {
	category = strings.TrimSpace(category)
	query = strings.ToLower(strings.TrimSpace(query))

	out := make([]Product, 0, len(products))
	for _, p := range products {
		if category != "" && string(p.Category) != category {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(p.Title), query) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Categories 去重排序后的非空分类
func Categories(products []Product) []string {
	seen := make(map[string]struct{}, len(products))
	out := make([]string, 0)
	for _, p := range products {
		label := strings.TrimSpace(string(p.Category))
		if label == "" {
			continue
		}
		if _, ok := seen[label]; ok {
			continue
		}
		seen[label] = struct{}{}
		out = append(out, label)
	}
	sort.Strings(out)
	return out
}
