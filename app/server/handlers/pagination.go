package handlers

import (
	"habit-tracker/app/server/types"
	"math"

	"github.com/labstack/echo/v4"
)

func (a *App) bindPagination(c echo.Context) (*types.Pagination, error) {
	var (
		p           types.Pagination
		page, limit uint
	)
	if err := echo.QueryParamsBinder(c).
		Uint("page", &page).
		Uint("limit", &limit).
		BindError(); err != nil {
		return nil, err
	}

	if c.QueryParam("page") != "" {
		p.Page = &page
	}
	if c.QueryParam("limit") != "" {
		p.Limit = &limit
	}

	return &p, nil
}

// 单页最多条数
const maxPageSize uint = 1000

// parsePagination 返回 (是否全部, offset, limit)
func (a *App) parsePagination(p *types.Pagination) (bool, int, int) {
	if p.Page != nil && *p.Page == 0 && p.Limit != nil && *p.Limit == 0 {
		// 特殊参数：展示全部
		return true, 0, -1
	}

	// 页码从 1 开始，缺省时为第一页
	var page, limit uint = 0, 100
	if p.Page != nil && *p.Page >= 1 {
		page = *p.Page - 1
	}
	if p.Limit != nil && *p.Limit > 0 {
		limit = min(*p.Limit, maxPageSize)
	}
	// 避免 offset 溢出
	if page > math.MaxInt32/limit {
		page = math.MaxInt32 / limit
	}

	return false, int(page * limit), int(limit)
}

func (a *App) calcMaxPage(count int64, showAll bool, limit int) int64 {
	if showAll {
		return 1
	}

	pageMax := count / int64(limit)
	if (count % int64(limit)) != 0 {
		pageMax++
	}
	return pageMax
}
