package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"employeehub/service"
	"employeehub/validation"

	"github.com/gin-gonic/gin"
)

func employeeID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 0 {
		return 0, false
	}
	return id, true
}

// auditUser is the caller recorded in the change trail.
func auditUser(c *gin.Context) string {
	return c.GetHeader("X-User-ID")
}

func (h *Handlers) employeeError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
		return
	}
	var dbErr *service.DatabaseError
	if errors.As(err, &dbErr) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Server error: %v", err)})
}

// ListEmployeesHandler lists every employee
// @Summary      List employees
// @Description  Get all employees, newest first
// @Tags         Employees
// @Produce      json
// @Success      200  {array}   models.Employee    "Employees"
// @Failure      500  {object}  map[string]string  "Database error"
// @Router       /api/employees [get]
func (h *Handlers) ListEmployeesHandler(c *gin.Context) {
	rows, err := h.employees.List(c.Request.Context())
	if err != nil {
		h.employeeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GetEmployeeHandler retrieves one employee
// @Summary      Get employee
// @Tags         Employees
// @Produce      json
// @Param        id   path      int  true  "Employee ID"
// @Success      200  {object}  models.Employee    "Employee"
// @Failure      404  {object}  map[string]string  "Employee not found"
// @Failure      500  {object}  map[string]string  "Database error"
// @Router       /api/employees/{id} [get]
func (h *Handlers) GetEmployeeHandler(c *gin.Context) {
	id, ok := employeeID(c)
	if !ok {
		h.NotFoundHandler(c)
		return
	}

	row, err := h.employees.Get(c.Request.Context(), id)
	if err != nil {
		h.employeeError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

// CreateEmployeeHandler adds an employee
// @Summary      Add employee
// @Description  Validate and store a new employee. The change is audited and mailed.
// @Tags         Employees
// @Accept       json
// @Produce      json
// @Param        request  body      models.Employee    true  "Employee"
// @Header       201      {string}  X-User-ID          "Optional user recorded in the audit trail"
// @Success      201      {object}  models.Employee    "Stored employee"
// @Failure      400      {object}  map[string]string  "Validation error"
// @Failure      500      {object}  map[string]string  "Database error"
// @Router       /api/employees [post]
func (h *Handlers) CreateEmployeeHandler(c *gin.Context) {
	var data map[string]interface{}
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid data format: %v", err)})
		return
	}

	e, err := validation.ValidateEmployee(data)
	if err != nil {
		log.Printf("Validation failed: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.employees.Create(c.Request.Context(), e, auditUser(c))
	if err != nil {
		h.employeeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateEmployeeHandler replaces an employee
// @Summary      Update employee
// @Tags         Employees
// @Accept       json
// @Produce      json
// @Param        id       path      int                true  "Employee ID"
// @Param        request  body      models.Employee    true  "Employee"
// @Success      200      {object}  models.Employee    "Updated employee"
// @Failure      400      {object}  map[string]string  "Validation error"
// @Failure      404      {object}  map[string]string  "Employee not found"
// @Failure      500      {object}  map[string]string  "Database error"
// @Router       /api/employees/{id} [put]
func (h *Handlers) UpdateEmployeeHandler(c *gin.Context) {
	id, ok := employeeID(c)
	if !ok {
		h.NotFoundHandler(c)
		return
	}

	var data map[string]interface{}
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid data format: %v", err)})
		return
	}

	e, err := validation.ValidateEmployee(data)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.employees.Update(c.Request.Context(), id, e, auditUser(c))
	if err != nil {
		h.employeeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteEmployeeHandler removes an employee
// @Summary      Delete employee
// @Tags         Employees
// @Produce      json
// @Param        id   path      int  true  "Employee ID"
// @Success      200  {object}  map[string]interface{}  "Deleted"
// @Failure      404  {object}  map[string]string       "Employee not found"
// @Failure      500  {object}  map[string]string       "Database error"
// @Router       /api/employees/{id} [delete]
func (h *Handlers) DeleteEmployeeHandler(c *gin.Context) {
	id, ok := employeeID(c)
	if !ok {
		h.NotFoundHandler(c)
		return
	}

	if err := h.employees.Delete(c.Request.Context(), id, auditUser(c)); err != nil {
		h.employeeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id, "message": "Employee deleted successfully"})
}

// ExportEmployeesHandler downloads every employee
// @Summary      Export employees
// @Description  Download all employees as JSON or CSV
// @Tags         Employees
// @Produce      json
// @Produce      text/csv
// @Param        format  query     string  false  "json (default) or csv"
// @Success      200     {file}    file    "Employee export"
// @Failure      400     {object}  map[string]string  "Unsupported format"
// @Failure      500     {object}  map[string]string  "Database error"
// @Router       /api/employees/export [get]
func (h *Handlers) ExportEmployeesHandler(c *gin.Context) {
	format := c.DefaultQuery("format", "json")
	if format != "json" && format != "csv" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "format must be json or csv"})
		return
	}

	rows, err := h.employees.List(c.Request.Context())
	if err != nil {
		h.employeeError(c, err)
		return
	}

	filename := fmt.Sprintf("employees_%s.%s", time.Now().Format("20060102_150405"), format)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if format == "csv" {
		c.Header("Content-Type", "text/csv; charset=utf-8")
		c.Status(http.StatusOK)
		err = service.WriteCSV(c.Writer, rows)
	} else {
		c.Header("Content-Type", "application/json; charset=utf-8")
		c.Status(http.StatusOK)
		err = service.WriteJSON(c.Writer, rows)
	}
	if err != nil {
		log.Printf("Error writing %s export: %v", format, err)
		h.recordFailure("EXPORT_EMPLOYEES", err.Error())
	}
}
