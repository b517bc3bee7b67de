package repository

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// dbDialectName 获取数据库方言名称，默认按 sqlite 处理。
func dbDialectName(db *gorm.DB) string {
	if db == nil || db.Dialector == nil {
		return "sqlite"
	}
	name := strings.ToLower(strings.TrimSpace(db.Dialector.Name()))
	if name == "" {
		return "sqlite"
	}
	return name
}

// caseInsensitiveLikeCondition 构建大小写不敏感的 LIKE 条件，兼容 sqlite 与 postgres。
func caseInsensitiveLikeCondition(db *gorm.DB, column string) string {
	return caseInsensitiveLikeConditionByDialect(dbDialectName(db), column)
}

func caseInsensitiveLikeConditionByDialect(dialect, column string) string {
	switch strings.ToLower(strings.TrimSpace(dialect)) {
	case "postgres", "postgresql":
		return fmt.Sprintf("%s ILIKE ? ESCAPE '\\'", column)
	default:
		// sqlite 的 LIKE 仅对 ASCII 大小写不敏感，统一转小写比较
		return fmt.Sprintf("LOWER(%s) LIKE LOWER(?) ESCAPE '\\'", column)
	}
}

// likePattern 转义通配符后生成包含匹配模式。
func likePattern(keyword string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + replacer.Replace(strings.TrimSpace(keyword)) + "%"
}
