package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cartella/internal/models"
)

// Rating 评分
type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

// Product 目录商品
type Product struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
	Image       string   `json:"image"`
	Rating      Rating   `json:"rating"`
}

// Category 分类标签；兼容字符串与 {"category"|"name": ...} 对象两种形态
type Category string

// UnmarshalJSON 解析分类
func (c *Category) UnmarshalJSON(b []byte) error {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*c = ""
		return nil
	}
	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*c = Category(s)
		return nil
	case '{':
		var obj struct {
			Category *string `json:"category"`
			Name     *string `json:"name"`
		}
		if err := json.Unmarshal(trimmed, &obj); err != nil {
			return err
		}
		switch {
		case obj.Category != nil:
			*c = Category(*obj.Category)
		case obj.Name != nil:
			*c = Category(*obj.Name)
		default:
			*c = ""
		}
		return nil
	default:
		return fmt.Errorf("unsupported category value: %s", string(trimmed))
	}
}

// String 标签文本
func (c Category) String() string {
	return string(c)
}

// ToModel 转换为本地缓存模型（收藏标记为 false）
func (p Product) ToModel() models.Product {
	return models.Product{
		ID:          p.ID,
		Title:       p.Title,
		Price:       p.Price,
		Description: p.Description,
		Category:    strings.TrimSpace(p.Category.String()),
		Image:       p.Image,
		Rating:      p.Rating.Rate,
		RatingCount: p.Rating.Count,
	}
}

// FromModel 由本地缓存模型还原目录商品
func FromModel(m models.Product) Product {
	return Product{
		ID:          m.ID,
		Title:       m.Title,
		Price:       m.Price,
		Description: m.Description,
		Category:    Category(m.Category),
		Image:       m.Image,
		Rating:      Rating{Rate: m.Rating, Count: m.RatingCount},
	}
}

// ToModels 批量转换
func ToModels(products []Product) []models.Product {
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		out = append(out, p.ToModel())
	}
	return out
}
