package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListUsersQueryNormalize(t *testing.T) {
	q := &ListUsersQuery{SortField: "created_at", SortOrder: "desc", Page: 0, Limit: 500}
	require.NoError(t, q.Normalize())
	assert.Equal(t, "DESC", q.SortOrder)
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 10, q.Limit)
}

func TestListUsersQueryRejectsUnknownSortField(t *testing.T) {
	q := &ListUsersQuery{SortField: "password", SortOrder: "ASC", Page: 1, Limit: 10}
	assert.EqualError(t, q.Normalize(), "invalid sort field")

	q = &ListUsersQuery{SortField: "name", SortOrder: "sideways", Page: 1, Limit: 10}
	assert.EqualError(t, q.Normalize(), "invalid sort order")
}

func TestUpdateProfileRequestFields(t *testing.T) {
	req := &UpdateProfileRequest{Name: " Jane Doe ", DOB: "1991-02-03"}
	fields, err := req.Fields()
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", fields["name"])
	assert.Equal(t, time.Date(1991, 2, 3, 0, 0, 0, 0, time.UTC), fields["dob"])
	_, hasImage := fields["profile_image"]
	assert.False(t, hasImage)
}

func TestUpdateProfileRequestRejectsBadDate(t *testing.T) {
	req := &UpdateProfileRequest{DOB: "03/02/1991"}
	_, err := req.Fields()
	assert.EqualError(t, err, "invalid date format")
}

func TestUpdateProfileRequestEmptyIsNoop(t *testing.T) {
	fields, err := (&UpdateProfileRequest{}).Fields()
	require.NoError(t, err)
	assert.Empty(t, fields)
}
