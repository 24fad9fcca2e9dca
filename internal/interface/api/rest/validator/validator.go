package validator

import (
	"net/mail"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"

	"assignly-api/internal/interface/api/rest/dto/auth"
	"assignly-api/internal/interface/api/rest/dto/reftype"
	"assignly-api/internal/interface/api/rest/dto/task"
	"assignly-api/internal/interface/api/rest/dto/user"
)

const (
	minPasswordLen = 8
	maxPasswordLen = 72 // bcrypt safe
)

var (
	e164Re         = regexp.MustCompile(`^\+[1-9]\d{7,14}$`)
	scheduleDateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	scheduleHourRe = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
)

func IsUUID(s string) (bool, uuid.UUID) {
	id, err := uuid.Parse(s)
	return err == nil, id
}

func ValidateUser(r user.Request) map[string]string {
	errs := make(map[string]string)

	checkHumanName(errs, "first_name", r.FirstName, true)
	if strings.TrimSpace(r.MiddleName) != "" {
		checkHumanName(errs, "middle_name", r.MiddleName, false)
	}
	checkHumanName(errs, "last_name", r.LastName, true)
	checkEmail(errs, r.Email, true)
	checkPassword(errs, r.Password, true)
	checkPhone(errs, r.Phone, true)

	if strings.TrimSpace(r.BirthDate) == "" {
		errs["birth_date"] = "birth_date is required"
	} else if !scheduleDateRe.MatchString(strings.TrimSpace(r.BirthDate)) {
		errs["birth_date"] = "must be YYYY-MM-DD"
	}

	if len(errs) == 0 {
		return nil
	}

	return errs
}

func ValidateUserUpdate(r user.UpdateRequest) map[string]string {
	errs := make(map[string]string)

	if r.FirstName != nil {
		checkHumanName(errs, "first_name", *r.FirstName, true)
	}
	if r.MiddleName != nil && strings.TrimSpace(*r.MiddleName) != "" {
		checkHumanName(errs, "middle_name", *r.MiddleName, false)
	}
	if r.LastName != nil {
		checkHumanName(errs, "last_name", *r.LastName, true)
	}
	if r.Email != nil {
		checkEmail(errs, *r.Email, true)
	}
	if r.Password != nil {
		checkPassword(errs, *r.Password, true)
	}
	if r.Phone != nil {
		checkPhone(errs, *r.Phone, true)
	}
	if r.BirthDate != nil && !scheduleDateRe.MatchString(strings.TrimSpace(*r.BirthDate)) {
		errs["birth_date"] = "must be YYYY-MM-DD"
	}

	if len(errs) == 0 {
		return nil
	}

	return errs
}

func ValidateType(r reftype.Request) map[string]string {
	errs := make(map[string]string)

	name := strings.TrimSpace(r.Name)
	if name == "" {
		errs["name"] = "name is required"
	} else if l := utf8.RuneCountInString(name); l < 2 || l > 64 {
		errs["name"] = "name length must be 2-64 characters"
	}

	if len(errs) == 0 {
		return nil
	}

	return errs
}

func ValidateTypeUpdate(r reftype.UpdateRequest) map[string]string {
	errs := make(map[string]string)

	if r.Name != nil {
		name := strings.TrimSpace(*r.Name)
		if name == "" {
			errs["name"] = "name must not be empty"
		} else if l := utf8.RuneCountInString(name); l < 2 || l > 64 {
			errs["name"] = "name length must be 2-64 characters"
		}
	}

	if len(errs) == 0 {
		return nil
	}

	return errs
}

func ValidateTask(r task.Request) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(r.TaskTypeID) == "" {
		errs["task_type_id"] = "task_type_id is required"
	}
	if strings.TrimSpace(r.CreatedBy) == "" {
		errs["created_by"] = "created_by is required"
	}
	checkSchedule(errs, "schedule_date", r.ScheduleDate, scheduleDateRe, "must be YYYY-MM-DD", true)
	checkSchedule(errs, "schedule_hour", r.ScheduleHour, scheduleHourRe, "must be HH:MM (24h)", true)
	if r.TaskPrice != nil && *r.TaskPrice < 0 {
		errs["task_price"] = "task_price must not be negative"
	}

	if len(errs) == 0 {
		return nil
	}

	return errs
}

func ValidateTaskUpdate(r task.UpdateRequest) map[string]string {
	errs := make(map[string]string)

	if r.ScheduleDate != nil {
		checkSchedule(errs, "schedule_date", *r.ScheduleDate, scheduleDateRe, "must be YYYY-MM-DD", true)
	}
	if r.ScheduleHour != nil {
		checkSchedule(errs, "schedule_hour", *r.ScheduleHour, scheduleHourRe, "must be HH:MM (24h)", true)
	}
	if r.TaskPrice != nil && *r.TaskPrice < 0 {
		errs["task_price"] = "task_price must not be negative"
	}

	if len(errs) == 0 {
		return nil
	}

	return errs
}

func ValidateLogin(r auth.LoginRequest) map[string]string {
	errs := make(map[string]string)

	checkEmail(errs, r.Email, true)
	if strings.TrimSpace(r.Password) == "" {
		errs["password"] = "password is required"
	}

	if len(errs) == 0 {
		return nil
	}

	return errs
}

func checkHumanName(errs map[string]string, field, value string, required bool) {
	v := strings.TrimSpace(value)
	if v == "" {
		if required {
			errs[field] = field + " is required"
		}
		return
	}
	if l := utf8.RuneCountInString(v); l < 2 || l > 64 {
		errs[field] = field + " length must be 2-64 characters"
		return
	}
	if !isHumanName(v) {
		errs[field] = "allowed characters: letters, space, '-', '''"
	}
}

func checkEmail(errs map[string]string, value string, required bool) {
	email := strings.ToLower(strings.TrimSpace(value))
	if email == "" {
		if required {
			errs["email"] = "email is required"
		}
		return
	}
	if _, err := mail.ParseAddress(email); err != nil {
		errs["email"] = "invalid email format"
	}
}

func checkPassword(errs map[string]string, value string, required bool) {
	if strings.TrimSpace(value) == "" {
		if required {
			errs["password"] = "password is required"
		}
		return
	}
	if l := utf8.RuneCountInString(value); l < minPasswordLen || l > maxPasswordLen {
		errs["password"] = "password length must be 8-72 characters"
	}
}

func checkPhone(errs map[string]string, value string, required bool) {
	phone := strings.TrimSpace(value)
	if phone == "" {
		if required {
			errs["phone"] = "phone is required"
		}
		return
	}
	if !e164Re.MatchString(phone) {
		errs["phone"] = "must be in E.164 format (e.g., +33788888888)"
	}
}

func checkSchedule(errs map[string]string, field, value string, re *regexp.Regexp, msg string, required bool) {
	v := strings.TrimSpace(value)
	if v == "" {
		if required {
			errs[field] = field + " is required"
		}
		return
	}
	if !re.MatchString(v) {
		errs[field] = msg
	}
}

func isHumanName(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || r == ' ' || r == '-' || r == '\'' {
			continue
		}
		return false
	}
	return true
}
