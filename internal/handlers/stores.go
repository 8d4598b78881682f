package handlers

import (
	"context"
	"time"

	"hrms-lite/internal/models"
)

// Store interfaces keep the handlers free of SQL and swappable in tests.
// The repository package provides the real implementations.

type EmployeeStore interface {
	Create(ctx context.Context, in models.CreateEmployeeDTO) (*models.Employee, error)
	List(ctx context.Context) ([]models.Employee, error)
	GetByID(ctx context.Context, id int64) (*models.Employee, error)
	Delete(ctx context.Context, id int64) error
}

type AttendanceStore interface {
	Mark(ctx context.Context, employeeID int64, date time.Time, status string) (*models.Attendance, error)
	ListForEmployee(ctx context.Context, employeeID int64, from, to *time.Time) ([]models.Attendance, error)
	Recent(ctx context.Context) ([]models.RecentAttendance, error)
}

type DashboardStore interface {
	Stats(ctx context.Context) (*models.DashboardStats, error)
}
