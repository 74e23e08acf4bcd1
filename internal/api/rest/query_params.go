package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/feral-file/farmtrace/internal/api/shared/constants"
	"github.com/feral-file/farmtrace/internal/domain"
	"github.com/feral-file/farmtrace/internal/store"
	"github.com/feral-file/farmtrace/internal/store/schema"
)

// ListProductsQueryParams holds query parameters for GET /products
type ListProductsQueryParams struct {
	Owner    string `form:"owner"`
	Category string `form:"category"`

	// Pagination
	Limit  int `form:"limit,default=50"`
	Offset int `form:"offset,default=0"`
}

// ListUserTransfersQueryParams holds query parameters for GET /user/:id/transfers
type ListUserTransfersQueryParams struct {
	Direction store.TransferDirection `form:"direction,default=all"`
	Status    schema.TransferStatus   `form:"status"`

	// Pagination
	Limit  int `form:"limit,default=50"`
	Offset int `form:"offset,default=0"`
}

// ListUsersQueryParams holds query parameters for GET /users
type ListUsersQueryParams struct {
	Role  domain.Role `form:"role"`
	Limit int         `form:"limit,default=50"`
}

// ListNotificationsQueryParams holds query parameters for GET /user/:id/notifications
type ListNotificationsQueryParams struct {
	Unread bool `form:"unread,default=false"`
	Limit  int  `form:"limit,default=20"`
}

// RecentScansQueryParams holds query parameters for GET /scans/recent
type RecentScansQueryParams struct {
	User  string `form:"user"`
	Limit int    `form:"limit,default=10"`
}

// capLimit clamps a page size into [1, MAX_PAGE_SIZE], falling back to def
func capLimit(limit, def int) int {
	if limit <= 0 {
		return def
	}
	if limit > constants.MAX_PAGE_SIZE {
		return constants.MAX_PAGE_SIZE
	}
	return limit
}

// ParseListProductsQuery parses query parameters for GET /products
func ParseListProductsQuery(c *gin.Context) (*ListProductsQueryParams, error) {
	var params ListProductsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	params.Limit = capLimit(params.Limit, constants.DEFAULT_PAGE_SIZE)
	if params.Offset < 0 {
		params.Offset = 0
	}

	return &params, nil
}

// Filter converts the query parameters into a store filter
func (p *ListProductsQueryParams) Filter() store.ProductQueryFilter {
	filter := store.ProductQueryFilter{
		Limit:  p.Limit,
		Offset: p.Offset,
	}
	if p.Owner != "" {
		filter.OwnerID = &p.Owner
	}
	if p.Category != "" {
		filter.Category = &p.Category
	}
	return filter
}

// ParseListUserTransfersQuery parses query parameters for GET /user/:id/transfers
func ParseListUserTransfersQuery(c *gin.Context) (*ListUserTransfersQueryParams, error) {
	var params ListUserTransfersQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	params.Limit = capLimit(params.Limit, constants.DEFAULT_PAGE_SIZE)
	if params.Offset < 0 {
		params.Offset = 0
	}

	return &params, nil
}

// Filter converts the query parameters into a store filter for the given user
func (p *ListUserTransfersQueryParams) Filter(userID string) store.TransferQueryFilter {
	filter := store.TransferQueryFilter{
		UserID:    &userID,
		Direction: p.Direction,
		Limit:     p.Limit,
		Offset:    p.Offset,
	}
	if p.Status != "" {
		filter.Status = &p.Status
	}
	return filter
}

// ParseListUsersQuery parses query parameters for GET /users
func ParseListUsersQuery(c *gin.Context) (*ListUsersQueryParams, error) {
	var params ListUsersQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	params.Limit = capLimit(params.Limit, constants.DEFAULT_PAGE_SIZE)

	return &params, nil
}

// ParseListNotificationsQuery parses query parameters for GET /user/:id/notifications
func ParseListNotificationsQuery(c *gin.Context) (*ListNotificationsQueryParams, error) {
	var params ListNotificationsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	params.Limit = capLimit(params.Limit, constants.DEFAULT_NOTIFICATIONS_SIZE)

	return &params, nil
}

// ParseRecentScansQuery parses query parameters for GET /scans/recent
func ParseRecentScansQuery(c *gin.Context) (*RecentScansQueryParams, error) {
	var params RecentScansQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	params.Limit = capLimit(params.Limit, constants.DEFAULT_RECENT_SCANS_SIZE)

	return &params, nil
}

// Filter converts the query parameters into a store filter
func (p *RecentScansQueryParams) Filter() store.ScanQueryFilter {
	filter := store.ScanQueryFilter{Limit: p.Limit}
	if p.User != "" {
		filter.UserID = &p.User
	}
	return filter
}
