package pagination

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/changhyeonkim/project-board/go-api-server/internal/config"
	"github.com/gin-gonic/gin"
)

// Query parameter names
const (
	PageParam = "page"
	SizeParam = "size"
	SortParam = "sort"
)

// FromQuery parses page, size and sort query parameters.
//
//	?page=0&size=20&sort=createdAt,desc&sort=title
//
// Missing page/size fall back to 0 and cfg.DefaultSize; size above cfg.MaxSize is clamped.
// A page whose offset would overflow is rejected.
// defaultSort applies only when no sort parameter is present.
func FromQuery(c *gin.Context, cfg config.PaginationConfig, defaultSort ...Order) (Request, error) {
	page, err := intQuery(c, PageParam, 0)
	if err != nil {
		return Request{}, err
	}
	if page < 0 {
		return Request{}, fmt.Errorf("page=%d: %w", page, ErrInvalidPageRequest)
	}

	size, err := intQuery(c, SizeParam, cfg.DefaultSize)
	if err != nil {
		return Request{}, err
	}
	if size < 1 {
		return Request{}, fmt.Errorf("size=%d: %w", size, ErrInvalidPageRequest)
	}
	if size > cfg.MaxSize {
		size = cfg.MaxSize
	}
	if offsetOverflows(page, size) {
		return Request{}, fmt.Errorf("page=%d size=%d: offset overflows: %w", page, size, ErrInvalidPageRequest)
	}

	sort, err := ParseSort(c.QueryArray(SortParam))
	if err != nil {
		return Request{}, err
	}
	if len(sort) == 0 {
		sort = append(sort, defaultSort...)
	}

	return Of(page, size, sort...), nil
}

// ParseSort parses "property[,asc|desc]" values; direction defaults to ASC
func ParseSort(values []string) ([]Order, error) {
	orders := make([]Order, 0, len(values))
	for _, value := range values {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}

		property, direction, _ := strings.Cut(value, ",")
		property = strings.TrimSpace(property)
		if property == "" {
			return nil, fmt.Errorf("sort=%q: %w", value, ErrInvalidPageRequest)
		}

		switch strings.ToUpper(strings.TrimSpace(direction)) {
		case "", string(ASC):
			orders = append(orders, Asc(property))
		case string(DESC):
			orders = append(orders, Desc(property))
		default:
			return nil, fmt.Errorf("sort direction %q: %w", direction, ErrInvalidPageRequest)
		}
	}
	return orders, nil
}

func intQuery(c *gin.Context, key string, defaultValue int) (int, error) {
	raw, ok := c.GetQuery(key)
	if !ok || strings.TrimSpace(raw) == "" {
		return defaultValue, nil
	}

	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%s=%q: %w", key, raw, ErrInvalidPageRequest)
	}
	return value, nil
}
