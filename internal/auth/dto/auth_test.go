package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupRequestValidate(t *testing.T) {
	req := &SignupRequest{
		Name:     "Jane Doe",
		Email:    "jane@x.com",
		Password: "longenough1",
		DOB:      "1990-05-01",
	}

	dob, err := req.Validate()
	require.NoError(t, err)
	assert.Equal(t, time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC), dob)
}

func TestSignupRequestRejectsBadName(t *testing.T) {
	req := &SignupRequest{Name: "J4ne!", Email: "jane@x.com", Password: "longenough1", DOB: "1990-05-01"}

	_, err := req.Validate()
	assert.EqualError(t, err, "name can only contain letters and spaces")
}

func TestSignupRequestRejectsBadDate(t *testing.T) {
	req := &SignupRequest{Name: "Jane", Email: "jane@x.com", Password: "longenough1", DOB: "01/05/1990"}

	_, err := req.Validate()
	assert.EqualError(t, err, "invalid date format")
}

func TestSignupRequestRejectsUnderThirteen(t *testing.T) {
	tooYoung := time.Now().AddDate(-12, 0, 0).Format("2006-01-02")
	req := &SignupRequest{Name: "Kid", Email: "kid@x.com", Password: "longenough1", DOB: tooYoung}

	_, err := req.Validate()
	assert.EqualError(t, err, "must be at least 13 years old")

	oldEnough := time.Now().AddDate(-13, 0, -1).Format("2006-01-02")
	req.DOB = oldEnough
	_, err = req.Validate()
	assert.NoError(t, err)
}

func TestUpdatePasswordRequestRejectsSamePassword(t *testing.T) {
	req := &UpdatePasswordRequest{CurrentPassword: "samepass123", NewPassword: "samepass123"}
	assert.Error(t, req.Validate())

	req.NewPassword = "different123"
	assert.NoError(t, req.Validate())
}
