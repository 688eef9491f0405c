package pagination

import (
	"fmt"
	"math"
	"strings"
)

type Direction string

const (
	ASC  Direction = "ASC"
	DESC Direction = "DESC"
)

// Order is one sort criterion; Property is the public (JSON) field name
type Order struct {
	Property  string    `json:"property"`
	Direction Direction `json:"direction"`
}

func Asc(property string) Order {
	return Order{Property: property, Direction: ASC}
}

func Desc(property string) Order {
	return Order{Property: property, Direction: DESC}
}

// Request is a zero-based page request
type Request struct {
	Page int
	Size int
	Sort []Order
}

// Of creates a page request. Negative page is treated as 0.
func Of(page, size int, sort ...Order) Request {
	if page < 0 {
		page = 0
	}
	return Request{Page: page, Size: size, Sort: sort}
}

// Offset returns the number of rows to skip
func (r Request) Offset() int {
	return r.Page * r.Size
}

// offsetOverflows reports whether page*size does not fit in an int
func offsetOverflows(page, size int) bool {
	return size > 0 && page > math.MaxInt/size
}

func (r Request) String() string {
	parts := make([]string, 0, len(r.Sort))
	for _, o := range r.Sort {
		parts = append(parts, o.Property+","+strings.ToLower(string(o.Direction)))
	}
	return fmt.Sprintf("page=%d size=%d sort=[%s]", r.Page, r.Size, strings.Join(parts, ";"))
}

// Page is a bounded slice of results plus paging metadata
type Page[T any] struct {
	Content          []T     `json:"content"`
	Number           int     `json:"number"`
	Size             int     `json:"size"`
	NumberOfElements int     `json:"numberOfElements"`
	TotalElements    int64   `json:"totalElements"`
	TotalPages       int     `json:"totalPages"`
	First            bool    `json:"first"`
	Last             bool    `json:"last"`
	Empty            bool    `json:"empty"`
	Sort             []Order `json:"sort"`
}

// NewPage builds a page from one slice of content and the total row count
func NewPage[T any](content []T, req Request, total int64) Page[T] {
	if content == nil {
		content = []T{}
	}
	sort := req.Sort
	if sort == nil {
		sort = []Order{}
	}

	totalPages := 0
	if req.Size > 0 {
		totalPages = int((total + int64(req.Size) - 1) / int64(req.Size))
	}

	return Page[T]{
		Content:          content,
		Number:           req.Page,
		Size:             req.Size,
		NumberOfElements: len(content),
		TotalElements:    total,
		TotalPages:       totalPages,
		First:            req.Page == 0,
		Last:             req.Page >= totalPages-1,
		Empty:            len(content) == 0,
		Sort:             sort,
	}
}

// Empty returns a page with no content and zero total for req
func Empty[T any](req Request) Page[T] {
	return NewPage[T](nil, req, 0)
}

// Map converts page content while keeping the paging metadata
func Map[T, U any](p Page[T], fn func(T) U) Page[U] {
	content := make([]U, 0, len(p.Content))
	for _, item := range p.Content {
		content = append(content, fn(item))
	}

	return Page[U]{
		Content:          content,
		Number:           p.Number,
		Size:             p.Size,
		NumberOfElements: p.NumberOfElements,
		TotalElements:    p.TotalElements,
		TotalPages:       p.TotalPages,
		First:            p.First,
		Last:             p.Last,
		Empty:            p.Empty,
		Sort:             p.Sort,
	}
}
