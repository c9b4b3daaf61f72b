package repository

import (
	"strings"

	"gorm.io/gorm"
)

// ── 查询构建公共辅助 ──

// sortColumns 排序白名单：规范化后的字段名 → 列名
type sortColumns map[string]string

// normalizeSortKey 忽略大小写与下划线，"StartTime" / "start_time" / "starttime" 等价
func normalizeSortKey(key string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(key)), "_", "")
}

// applySort 未知或缺省的排序字段回退为 id 升序；非 id 排序追加 id 作为稳定次序
func applySort(db *gorm.DB, columns sortColumns, sortBy string, desc bool) *gorm.DB {
	col, ok := columns[normalizeSortKey(sortBy)]
	if !ok {
		return db.Order("id ASC")
	}

	dir := "ASC"
	if desc {
		dir = "DESC"
	}
	db = db.Order(col + " " + dir)
	if col != "id" {
		db = db.Order("id " + dir)
	}
	return db
}

// likeEscaper 转义 LIKE 元字符，输入按字面匹配
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// like 生成 "<expr> LIKE ? ESCAPE '\'"，postgres 与 sqlite 通用
func like(expr string) string {
	return expr + ` LIKE ? ESCAPE '\'`
}

// containsPattern 生成大小写不敏感的包含匹配模式（配合 like(LOWER(col))）
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(strings.TrimSpace(s))) + "%"
}

// whereContains 非空时追加 LOWER(col) LIKE 条件
func whereContains(db *gorm.DB, column, value string) *gorm.DB {
	if strings.TrimSpace(value) == "" {
		return db
	}
	return db.Where(like("LOWER("+column+")"), containsPattern(value))
}

// searchAny 在白名单列上做 OR 包含匹配，并匹配数字 ID
func searchAny(db *gorm.DB, search string, columns ...string) *gorm.DB {
	if strings.TrimSpace(search) == "" {
		return db
	}
	p := containsPattern(search)

	conds := make([]string, 0, len(columns)+1)
	args := make([]interface{}, 0, len(columns)+1)
	for _, c := range columns {
		conds = append(conds, like("LOWER("+c+")"))
		args = append(args, p)
	}
	conds = append(conds, like("CAST(id AS TEXT)"))
	args = append(args, p)

	return db.Where("("+strings.Join(conds, " OR ")+")", args...)
}
