package repository

import (
	"context"
	"fmt"
	"time"

	"hrms-lite/internal/models"
)

const (
	dateLayout  = "2006-01-02"
	recentLimit = 10
)

type AttendanceRepository struct {
	db DB
}

func NewAttendanceRepository(db DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

// Mark records attendance for an employee on a date. The employee must
// exist and at most one record per (employee, date) is allowed; the checks
// and the insert share one transaction.
func (r *AttendanceRepository) Mark(ctx context.Context, employeeID int64, date time.Time, status string) (*models.Attendance, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var exists bool
	if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM employees WHERE id=$1)`, employeeID).Scan(&exists); err != nil {
		return nil, err
	}
	if !exists {
		return nil, models.ErrEmployeeNotFound
	}
	if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM attendance WHERE employee_id=$1 AND date=$2)`, employeeID, date).Scan(&exists); err != nil {
		return nil, err
	}
	if exists {
		return nil, models.ErrDuplicateAttendance
	}

	rec := models.Attendance{
		EmployeeID: employeeID,
		Date:       date.Format(dateLayout),
		Status:     status,
	}
	err = tx.QueryRow(ctx, `
		INSERT INTO attendance (employee_id, date, status)
		VALUES ($1, $2, $3)
		RETURNING id
	`, employeeID, date, status).Scan(&rec.ID)
	if err != nil {
		return nil, translateUniqueViolation(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &rec, nil
}

// ListForEmployee returns an employee's records, newest date first,
// optionally restricted to an inclusive [from, to] window.
func (r *AttendanceRepository) ListForEmployee(ctx context.Context, employeeID int64, from, to *time.Time) ([]models.Attendance, error) {
	query := `SELECT id, employee_id, date, status FROM attendance WHERE employee_id=$1`
	args := []any{employeeID}
	argIdx := 2
	if from != nil {
		query += fmt.Sprintf(" AND date >= $%d", argIdx)
		args = append(args, *from)
		argIdx++
	}
	if to != nil {
		query += fmt.Sprintf(" AND date <= $%d", argIdx)
		args = append(args, *to)
		argIdx++
	}
	query += " ORDER BY date DESC, id DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]models.Attendance, 0)
	for rows.Next() {
		var (
			rec  models.Attendance
			date time.Time
		)
		if err := rows.Scan(&rec.ID, &rec.EmployeeID, &date, &rec.Status); err != nil {
			return nil, err
		}
		rec.Date = date.Format(dateLayout)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// Recent returns the 10 most recent records across all employees, newest
// date first and latest insert first within a date.
func (r *AttendanceRepository) Recent(ctx context.Context) ([]models.RecentAttendance, error) {
	rows, err := r.db.Query(ctx, `
		SELECT a.id, e.full_name, e.employee_id, a.date, a.status
		FROM attendance a
		JOIN employees e ON e.id = a.employee_id
		ORDER BY a.date DESC, a.id DESC
		LIMIT $1
	`, recentLimit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]models.RecentAttendance, 0)
	for rows.Next() {
		var (
			rec  models.RecentAttendance
			date time.Time
		)
		if err := rows.Scan(&rec.ID, &rec.EmployeeName, &rec.EmployeeCode, &date, &rec.Status); err != nil {
			return nil, err
		}
		rec.Date = date.Format(dateLayout)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
