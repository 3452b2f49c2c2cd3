package utils

import "strconv"

func P[T any](v T) *T {
	return &v
}

// Deref 指针为 nil 时返回 def
func Deref[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}

// ParseID 解析路径中的数字 ID ，0 视为无效
func ParseID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, err
	}
	if id == 0 {
		return 0, strconv.ErrRange
	}
	return uint(id), nil
}
