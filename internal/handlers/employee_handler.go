package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"hrms-lite/internal/models"
)

type EmployeeHandler struct {
	store EmployeeStore
}

func NewEmployeeHandler(store EmployeeStore) *EmployeeHandler {
	return &EmployeeHandler{store: store}
}

// POST /api/employees/
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var in models.CreateEmployeeDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	in.EmployeeID = strings.TrimSpace(in.EmployeeID)
	in.FullName = strings.TrimSpace(in.FullName)
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	in.Department = strings.TrimSpace(in.Department)
	if in.EmployeeID == "" || in.FullName == "" || in.Department == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "employee_id, full_name and department are required"})
		return
	}

	emp, err := h.store.Create(c.Request.Context(), in)
	switch {
	case errors.Is(err, models.ErrEmployeeIDTaken):
		c.JSON(http.StatusConflict, gin.H{"error": fmt.Sprintf("employee ID '%s' already exists", in.EmployeeID)})
	case errors.Is(err, models.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": fmt.Sprintf("email '%s' is already registered", in.Email)})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create employee"})
	default:
		c.JSON(http.StatusCreated, emp)
	}
}

// GET /api/employees/
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	list, err := h.store.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list employees"})
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/employees/:id
func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	emp, err := h.store.GetByID(c.Request.Context(), id)
	if errors.Is(err, models.ErrEmployeeNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "employee not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch employee"})
		return
	}
	c.JSON(http.StatusOK, emp)
}

// DELETE /api/employees/:id
func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	err := h.store.Delete(c.Request.Context(), id)
	if errors.Is(err, models.ErrEmployeeNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "employee not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete employee"})
		return
	}
	c.Status(http.StatusNoContent)
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be an integer"})
		return 0, false
	}
	return id, true
}
