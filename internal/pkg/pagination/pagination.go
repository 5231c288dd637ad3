package pagination

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Params represents pagination and sorting parameters
type Params struct {
	Page      int    `json:"page"`
	Size      int    `json:"size"`
	Offset    int    `json:"-"`
	SortBy    string `json:"sort_by"`
	Direction string `json:"direction"`
}

// Meta represents pagination metadata
type Meta struct {
	Page       int   `json:"page"`
	Size       int   `json:"size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

// DefaultSize is the default number of items per page
const DefaultSize = 10

// MaxSize is the maximum number of items per page
const MaxSize = 100

// GetParams extracts pagination parameters from request
func GetParams(c *fiber.Ctx) *Params {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	size, _ := strconv.Atoi(c.Query("size", strconv.Itoa(DefaultSize)))

	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = DefaultSize
	}
	if size > MaxSize {
		size = MaxSize
	}

	direction := strings.ToLower(c.Query("direction", "desc"))
	if direction != "asc" {
		direction = "desc"
	}

	return &Params{
		Page:      page,
		Size:      size,
		Offset:    (page - 1) * size,
		SortBy:    c.Query("sortBy", "created_at"),
		Direction: direction,
	}
}

// GetMeta calculates pagination metadata
func GetMeta(params *Params, total int64) *Meta {
	totalPages := int(total) / params.Size
	if int(total)%params.Size > 0 {
		totalPages++
	}

	return &Meta{
		Page:       params.Page,
		Size:       params.Size,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    params.Page < totalPages,
		HasPrev:    params.Page > 1,
	}
}

// Response represents paginated response
type Response struct {
	Data interface{} `json:"data"`
	Meta *Meta       `json:"meta"`
}

// NewResponse creates a new paginated response
func NewResponse(data interface{}, params *Params, total int64) *Response {
	return &Response{
		Data: data,
		Meta: GetMeta(params, total),
	}
}
