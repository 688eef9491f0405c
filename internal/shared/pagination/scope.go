package pagination

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SortColumns allow-lists sortable properties: public property name -> column
type SortColumns map[string]clause.Column

// Scope returns a gorm scope applying ORDER BY, OFFSET and LIMIT for req.
// Sort properties missing from columns yield ErrUnsupportedSortProperty.
// No order is added when req.Sort is empty.
func Scope(req Request, columns SortColumns) (func(*gorm.DB) *gorm.DB, error) {
	if req.Page < 0 || req.Size < 1 || offsetOverflows(req.Page, req.Size) {
		return nil, fmt.Errorf("page=%d size=%d: %w", req.Page, req.Size, ErrInvalidPageRequest)
	}

	orderBy := make([]clause.OrderByColumn, 0, len(req.Sort))
	for _, o := range req.Sort {
		column, ok := columns[o.Property]
		if !ok {
			return nil, fmt.Errorf("sort property %q: %w", o.Property, ErrUnsupportedSortProperty)
		}
		orderBy = append(orderBy, clause.OrderByColumn{Column: column, Desc: o.Direction == DESC})
	}

	return func(db *gorm.DB) *gorm.DB {
		if len(orderBy) > 0 {
			db = db.Order(clause.OrderBy{Columns: orderBy})
		}
		return db.Offset(req.Offset()).Limit(req.Size)
	}, nil
}
