package repository

import (
	"context"

	"hrms-lite/internal/models"
)

type DashboardRepository struct {
	db DB
}

func NewDashboardRepository(db DB) *DashboardRepository {
	return &DashboardRepository{db: db}
}

// Stats recomputes every figure from current storage state on each call.
// Today is the database server's current calendar date.
func (r *DashboardRepository) Stats(ctx context.Context) (*models.DashboardStats, error) {
	stats := models.DashboardStats{Departments: make([]models.DepartmentCount, 0)}

	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&stats.TotalEmployees); err != nil {
		return nil, err
	}
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM attendance WHERE date=CURRENT_DATE AND status=$1`, models.StatusPresent).Scan(&stats.PresentToday); err != nil {
		return nil, err
	}
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM attendance WHERE date=CURRENT_DATE AND status=$1`, models.StatusAbsent).Scan(&stats.AbsentToday); err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, `
		SELECT department, COUNT(*)
		FROM employees
		GROUP BY department
		ORDER BY department ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var dc models.DepartmentCount
		if err := rows.Scan(&dc.Department, &dc.Count); err != nil {
			return nil, err
		}
		stats.Departments = append(stats.Departments, dc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &stats, nil
}
