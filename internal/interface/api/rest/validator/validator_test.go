package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assignly-api/internal/interface/api/rest/dto/auth"
	"assignly-api/internal/interface/api/rest/dto/reftype"
	"assignly-api/internal/interface/api/rest/dto/task"
	"assignly-api/internal/interface/api/rest/dto/user"
)

func validUserRequest() user.Request {
	return user.Request{
		FirstName: "Ana",
		LastName:  "Souza",
		Email:     "ana@example.com",
		Password:  "supersecret1",
		BirthDate: "1990-04-12",
		Phone:     "+5511999999999",
	}
}

func TestValidateUser(t *testing.T) {
	require.Nil(t, ValidateUser(validUserRequest()))

	cases := []struct {
		name   string
		mutate func(*user.Request)
		field  string
	}{
		{"missing first name", func(r *user.Request) { r.FirstName = "" }, "first_name"},
		{"one-letter first name", func(r *user.Request) { r.FirstName = "A" }, "first_name"},
		{"digits in last name", func(r *user.Request) { r.LastName = "S0uza" }, "last_name"},
		{"bad email", func(r *user.Request) { r.Email = "not-an-email" }, "email"},
		{"short password", func(r *user.Request) { r.Password = "short" }, "password"},
		{"long password", func(r *user.Request) { r.Password = strings.Repeat("x", 80) }, "password"},
		{"bad birth date", func(r *user.Request) { r.BirthDate = "12/04/1990" }, "birth_date"},
		{"bad phone", func(r *user.Request) { r.Phone = "12345" }, "phone"},
	}

	for _, tt := range cases {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := validUserRequest()
			tt.mutate(&r)
			errs := ValidateUser(r)
			require.NotNil(t, errs)
			assert.Contains(t, errs, tt.field)
		})
	}
}

func TestValidateUserUpdate_OnlyPresentFields(t *testing.T) {
	require.Nil(t, ValidateUserUpdate(user.UpdateRequest{}))

	bad := "not-an-email"
	errs := ValidateUserUpdate(user.UpdateRequest{Email: &bad})
	require.NotNil(t, errs)
	assert.Contains(t, errs, "email")

	good := "bia@example.com"
	require.Nil(t, ValidateUserUpdate(user.UpdateRequest{Email: &good}))
}

func TestValidateType(t *testing.T) {
	require.Nil(t, ValidateType(reftype.Request{Name: "haircut"}))
	require.NotNil(t, ValidateType(reftype.Request{Name: ""}))
	require.NotNil(t, ValidateType(reftype.Request{Name: "x"}))

	empty := " "
	require.NotNil(t, ValidateTypeUpdate(reftype.UpdateRequest{Name: &empty}))
	require.Nil(t, ValidateTypeUpdate(reftype.UpdateRequest{}))
}

func TestValidateTask_Schedule(t *testing.T) {
	valid := task.Request{
		TaskTypeID:   "b3bb4745-9b8a-4a6b-8f3b-2f5a3f1c9d01",
		CreatedBy:    "c4cc5856-0c9b-4b7c-9e4c-3a6b4a2d0e12",
		ScheduleDate: "2025-04-12",
		ScheduleHour: "14:30",
	}
	require.Nil(t, ValidateTask(valid))

	cases := []struct {
		name   string
		mutate func(*task.Request)
		field  string
	}{
		{"missing type", func(r *task.Request) { r.TaskTypeID = "" }, "task_type_id"},
		{"missing creator", func(r *task.Request) { r.CreatedBy = "" }, "created_by"},
		{"date wrong shape", func(r *task.Request) { r.ScheduleDate = "2025-4-2" }, "schedule_date"},
		{"hour out of range", func(r *task.Request) { r.ScheduleHour = "24:00" }, "schedule_hour"},
		{"hour bad minutes", func(r *task.Request) { r.ScheduleHour = "14:61" }, "schedule_hour"},
	}

	for _, tt := range cases {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			tt.mutate(&r)
			errs := ValidateTask(r)
			require.NotNil(t, errs)
			assert.Contains(t, errs, tt.field)
		})
	}

	price := -1.5
	r := valid
	r.TaskPrice = &price
	errs := ValidateTask(r)
	require.NotNil(t, errs)
	assert.Contains(t, errs, "task_price")
}

func TestValidateLogin(t *testing.T) {
	require.Nil(t, ValidateLogin(auth.LoginRequest{Email: "ana@example.com", Password: "supersecret1"}))

	errs := ValidateLogin(auth.LoginRequest{Email: "", Password: ""})
	require.NotNil(t, errs)
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "password")
}

func TestIsUUID(t *testing.T) {
	ok, _ := IsUUID("b3bb4745-9b8a-4a6b-8f3b-2f5a3f1c9d01")
	assert.True(t, ok)
	ok, _ = IsUUID("nope")
	assert.False(t, ok)
}
