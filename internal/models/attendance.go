package models

// Attendance status values
const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
)

type MarkAttendanceDTO struct {
	EmployeeID int64  `json:"employee_id" binding:"required"`
	Date       string `json:"date" binding:"required,datetime=2006-01-02"`
	Status     string `json:"status" binding:"required,oneof=Present Absent"`
}

type Attendance struct {
	ID         int64  `json:"id"`
	EmployeeID int64  `json:"employee_id"`
	Date       string `json:"date"` // YYYY-MM-DD
	Status     string `json:"status"`
}

// AttendanceSummary is an employee's profile together with their
// (optionally date-filtered) records and per-status counts over
// that same window.
type AttendanceSummary struct {
	Employee     Employee     `json:"employee"`
	TotalPresent int          `json:"total_present"`
	TotalAbsent  int          `json:"total_absent"`
	Records      []Attendance `json:"records"`
}

// RecentAttendance is an attendance row joined with its employee's
// display name and external code.
type RecentAttendance struct {
	ID           int64  `json:"id"`
	EmployeeName string `json:"employee_name"`
	EmployeeCode string `json:"employee_code"`
	Date         string `json:"date"`
	Status       string `json:"status"`
}
