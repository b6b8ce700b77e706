package pagination

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Params holds page-based pagination parameters
type Params struct {
	Page  int `json:"page" form:"page"`
	Limit int `json:"limit" form:"limit"`
}

// Meta holds pagination metadata for responses
type Meta struct {
	CurrentPage int   `json:"currentPage"`
	PerPage     int   `json:"perPage"`
	TotalPages  int   `json:"totalPages"`
	TotalCount  int64 `json:"totalCount"`
	HasNext     bool  `json:"hasNext"`
	HasPrev     bool  `json:"hasPrev"`
}

// DefaultParams returns default pagination parameters
func DefaultParams() Params {
	return Params{
		Page:  1,
		Limit: 20,
	}
}

// Normalize ensures pagination parameters are within valid bounds
func (p *Params) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = 20
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
}

// Offset calculates the database offset
func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// NewMeta creates pagination metadata from params and total count
func NewMeta(params Params, totalCount int64) Meta {
	totalPages := int(totalCount) / params.Limit
	if int(totalCount)%params.Limit > 0 {
		totalPages++
	}
	if totalPages == 0 {
		totalPages = 1
	}

	return Meta{
		CurrentPage: params.Page,
		PerPage:     params.Limit,
		TotalPages:  totalPages,
		TotalCount:  totalCount,
		HasNext:     params.Page < totalPages,
		HasPrev:     params.Page > 1,
	}
}

// Cursor represents a position in a result set ordered by creation time
type Cursor struct {
	CreatedAt time.Time `json:"created_at"`
	ID        uuid.UUID `json:"id"`
}

// Encode serializes the cursor to an opaque base64 token
func (c Cursor) Encode() (string, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(data), nil
}

// DecodeCursor parses an opaque cursor token
func DecodeCursor(token string) (*Cursor, error) {
	data, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return nil, err
	}
	var c Cursor
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// CursorParams holds cursor-based pagination parameters
type CursorParams struct {
	Cursor string `json:"cursor" form:"cursor"`
	Limit  int    `json:"limit" form:"limit"`
}

// Normalize ensures cursor parameters are within valid bounds
func (p *CursorParams) Normalize() {
	if p.Limit < 1 {
		p.Limit = 20
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
}

// CursorMeta holds cursor pagination metadata for responses
type CursorMeta struct {
	NextCursor string `json:"nextCursor,omitempty"`
	HasNext    bool   `json:"hasNext"`
	PerPage    int    `json:"perPage"`
}
