package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hrms-lite/internal/models"
)

const dateLayout = "2006-01-02"

type AttendanceHandler struct {
	store     AttendanceStore
	employees EmployeeStore
}

func NewAttendanceHandler(store AttendanceStore, employees EmployeeStore) *AttendanceHandler {
	return &AttendanceHandler{store: store, employees: employees}
}

// POST /api/attendance/
func (h *AttendanceHandler) MarkAttendance(c *gin.Context) {
	var in models.MarkAttendanceDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	date, err := time.Parse(dateLayout, in.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	rec, err := h.store.Mark(c.Request.Context(), in.EmployeeID, date, in.Status)
	switch {
	case errors.Is(err, models.ErrEmployeeNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "employee not found"})
	case errors.Is(err, models.ErrDuplicateAttendance):
		c.JSON(http.StatusConflict, gin.H{"error": fmt.Sprintf("attendance for this employee on %s already exists", in.Date)})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to mark attendance"})
	default:
		c.JSON(http.StatusCreated, rec)
	}
}

// GET /api/attendance/:id
// Optional query filters: date_from, date_to (inclusive, YYYY-MM-DD).
func (h *AttendanceHandler) GetEmployeeAttendance(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	from, ok := dateQuery(c, "date_from")
	if !ok {
		return
	}
	to, ok := dateQuery(c, "date_to")
	if !ok {
		return
	}

	emp, err := h.employees.GetByID(c.Request.Context(), id)
	if errors.Is(err, models.ErrEmployeeNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "employee not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch employee"})
		return
	}

	records, err := h.store.ListForEmployee(c.Request.Context(), id, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch attendance"})
		return
	}

	// Counts cover the filtered window only, not the whole history.
	summary := models.AttendanceSummary{Employee: *emp, Records: records}
	for _, rec := range records {
		switch rec.Status {
		case models.StatusPresent:
			summary.TotalPresent++
		case models.StatusAbsent:
			summary.TotalAbsent++
		}
	}
	c.JSON(http.StatusOK, summary)
}

// GET /api/attendance/recent
func (h *AttendanceHandler) RecentAttendance(c *gin.Context) {
	records, err := h.store.Recent(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch recent attendance"})
		return
	}
	c.JSON(http.StatusOK, records)
}

func dateQuery(c *gin.Context, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	d, err := time.Parse(dateLayout, raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be YYYY-MM-DD"})
		return nil, false
	}
	return &d, true
}
