package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"hrms-lite/internal/models"
)

type EmployeeRepository struct {
	db DB
}

func NewEmployeeRepository(db DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// Create inserts a new employee after checking that neither the external
// employee_id nor the email is already taken. Both checks and the insert
// run in one transaction; a unique violation raised by a racing writer is
// reported the same way as a pre-check hit.
func (r *EmployeeRepository) Create(ctx context.Context, in models.CreateEmployeeDTO) (*models.Employee, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var taken bool
	if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM employees WHERE employee_id=$1)`, in.EmployeeID).Scan(&taken); err != nil {
		return nil, err
	}
	if taken {
		return nil, models.ErrEmployeeIDTaken
	}
	if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM employees WHERE email=$1)`, in.Email).Scan(&taken); err != nil {
		return nil, err
	}
	if taken {
		return nil, models.ErrEmailTaken
	}

	emp := models.Employee{
		EmployeeID: in.EmployeeID,
		FullName:   in.FullName,
		Email:      in.Email,
		Department: in.Department,
	}
	err = tx.QueryRow(ctx, `
		INSERT INTO employees (employee_id, full_name, email, department)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, in.EmployeeID, in.FullName, in.Email, in.Department).Scan(&emp.ID, &emp.CreatedAt)
	if err != nil {
		return nil, translateUniqueViolation(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &emp, nil
}

// List returns all employees, newest first.
func (r *EmployeeRepository) List(ctx context.Context) ([]models.Employee, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, employee_id, full_name, email, department, created_at
		FROM employees
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]models.Employee, 0)
	for rows.Next() {
		var e models.Employee
		if err := rows.Scan(&e.ID, &e.EmployeeID, &e.FullName, &e.Email, &e.Department, &e.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id int64) (*models.Employee, error) {
	var e models.Employee
	err := r.db.QueryRow(ctx, `
		SELECT id, employee_id, full_name, email, department, created_at
		FROM employees
		WHERE id=$1
	`, id).Scan(&e.ID, &e.EmployeeID, &e.FullName, &e.Email, &e.Department, &e.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrEmployeeNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Delete removes the employee; the attendance FK cascades in the same
// statement.
func (r *EmployeeRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM employees WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrEmployeeNotFound
	}
	return nil
}
