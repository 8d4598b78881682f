package models

import "time"

type CreateEmployeeDTO struct {
	EmployeeID string `json:"employee_id" binding:"required,max=50"`
	FullName   string `json:"full_name" binding:"required,max=150"`
	Email      string `json:"email" binding:"required,email"`
	Department string `json:"department" binding:"required,max=100"`
}

type Employee struct {
	ID         int64     `json:"id"`
	EmployeeID string    `json:"employee_id"`
	FullName   string    `json:"full_name"`
	Email      string    `json:"email"`
	Department string    `json:"department"`
	CreatedAt  time.Time `json:"created_at"`
}
