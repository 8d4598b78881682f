package handlers

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"hrms-lite/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubEmployeeStore struct {
	createFn func(ctx context.Context, in models.CreateEmployeeDTO) (*models.Employee, error)
	listFn   func(ctx context.Context) ([]models.Employee, error)
	getFn    func(ctx context.Context, id int64) (*models.Employee, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (s *stubEmployeeStore) Create(ctx context.Context, in models.CreateEmployeeDTO) (*models.Employee, error) {
	return s.createFn(ctx, in)
}

func (s *stubEmployeeStore) List(ctx context.Context) ([]models.Employee, error) {
	return s.listFn(ctx)
}

func (s *stubEmployeeStore) GetByID(ctx context.Context, id int64) (*models.Employee, error) {
	return s.getFn(ctx, id)
}

func (s *stubEmployeeStore) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

type stubAttendanceStore struct {
	markFn   func(ctx context.Context, employeeID int64, date time.Time, status string) (*models.Attendance, error)
	listFn   func(ctx context.Context, employeeID int64, from, to *time.Time) ([]models.Attendance, error)
	recentFn func(ctx context.Context) ([]models.RecentAttendance, error)
}

func (s *stubAttendanceStore) Mark(ctx context.Context, employeeID int64, date time.Time, status string) (*models.Attendance, error) {
	return s.markFn(ctx, employeeID, date, status)
}

func (s *stubAttendanceStore) ListForEmployee(ctx context.Context, employeeID int64, from, to *time.Time) ([]models.Attendance, error) {
	return s.listFn(ctx, employeeID, from, to)
}

func (s *stubAttendanceStore) Recent(ctx context.Context) ([]models.RecentAttendance, error) {
	return s.recentFn(ctx)
}

type stubDashboardStore struct {
	statsFn func(ctx context.Context) (*models.DashboardStats, error)
}

func (s *stubDashboardStore) Stats(ctx context.Context) (*models.DashboardStats, error) {
	return s.statsFn(ctx)
}

func performRequest(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sampleEmployee() *models.Employee {
	return &models.Employee{
		ID:         7,
		EmployeeID: "EMP-001",
		FullName:   "Jane Doe",
		Email:      "jane@example.com",
		Department: "Engineering",
		CreatedAt:  time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

var _ EmployeeStore = (*stubEmployeeStore)(nil)
var _ AttendanceStore = (*stubAttendanceStore)(nil)
var _ DashboardStore = (*stubDashboardStore)(nil)
