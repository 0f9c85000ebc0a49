package dto

import (
	"errors"
	"strings"
	"time"

	"accounthub-backend/internal/auth/domain"
)

var allowedSortFields = map[string]bool{
	"name":       true,
	"email":      true,
	"dob":        true,
	"created_at": true,
}

type UpdateProfileRequest struct {
	Name         string `json:"name" binding:"omitempty,min=2"`
	DOB          string `json:"dob" binding:"omitempty"`
	ProfileImage string `json:"profileImage" binding:"omitempty,url"`
}

// Fields returns the partial update map, parsing the optional date of birth.
func (r *UpdateProfileRequest) Fields() (map[string]interface{}, error) {
	fields := map[string]interface{}{}
	if r.Name != "" {
		fields["name"] = strings.TrimSpace(r.Name)
	}
	if r.DOB != "" {
		dob, err := time.Parse("2006-01-02", r.DOB)
		if err != nil {
			return nil, errors.New("invalid date format")
		}
		fields["dob"] = dob
	}
	if r.ProfileImage != "" {
		fields["profile_image"] = r.ProfileImage
	}
	return fields, nil
}

type ListUsersQuery struct {
	Search    string `form:"search"`
	SortField string `form:"sortField,default=created_at"`
	SortOrder string `form:"sortOrder,default=DESC"`
	Page      int    `form:"page,default=1"`
	Limit     int    `form:"limit,default=10"`
}

// Normalize validates sorting inputs and clamps pagination.
func (q *ListUsersQuery) Normalize() error {
	if !allowedSortFields[q.SortField] {
		return errors.New("invalid sort field")
	}
	q.SortOrder = strings.ToUpper(q.SortOrder)
	if q.SortOrder != "ASC" && q.SortOrder != "DESC" {
		return errors.New("invalid sort order")
	}
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 || q.Limit > 100 {
		q.Limit = 10
	}
	return nil
}

type Pagination struct {
	Total       int64 `json:"total"`
	TotalPages  int   `json:"totalPages"`
	CurrentPage int   `json:"currentPage"`
	Limit       int   `json:"limit"`
}

type ListUsersResponse struct {
	Users      []*domain.PublicUser `json:"users"`
	Pagination Pagination           `json:"pagination"`
}
