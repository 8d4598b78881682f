package models

import "errors"

var (
	ErrEmployeeNotFound    = errors.New("employee not found")
	ErrEmployeeIDTaken     = errors.New("employee_id already exists")
	ErrEmailTaken          = errors.New("email already registered")
	ErrDuplicateAttendance = errors.New("attendance already marked for this date")
)
