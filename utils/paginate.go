package utils

import (
	"math"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Pagination struct {
	TotalData   int64 `json:"total_data"`
	TotalPage   int   `json:"total_page"`
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
}

// Paginate reads page/limit from the query string, counts the full result
// set and fills dest with one page of it.
func Paginate(c *fiber.Ctx, query *gorm.DB, dest interface{}) (*Pagination, error) {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.Query("limit", "10"))
	if err != nil || limit < 1 {
		limit = 10
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	if err := query.Offset((page - 1) * limit).Limit(limit).Find(dest).Error; err != nil {
		return nil, err
	}

	return &Pagination{
		TotalData:   total,
		TotalPage:   int(math.Ceil(float64(total) / float64(limit))),
		CurrentPage: page,
		PerPage:     limit,
	}, nil
}
