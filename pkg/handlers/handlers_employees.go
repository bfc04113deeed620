package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/anasbendaikha-blip/baggplanning-sub000/pkg/auth"
	"github.com/anasbendaikha-blip/baggplanning-sub000/pkg/database"
	"github.com/anasbendaikha-blip/baggplanning-sub000/pkg/models"
)

type employeePayload struct {
	Name     string                   `json:"name"`
	Initials string                   `json:"initials"`
	Role     models.Role              `json:"role"`
	Contract models.ContractKind      `json:"contract"`
	Active   *bool                    `json:"active"`
	Template map[models.DayKey]string `json:"template"`
	Password string                   `json:"password,omitempty"`
}

// CreateEmployee registers a staff record
func (h *Handler) CreateEmployee(c *gin.Context) {
	var req employeePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}
	if !req.Role.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown role"})
		return
	}
	if req.Contract != models.ContractFixed && req.Contract != models.ContractVariable {
		c.JSON(http.StatusBadRequest, gin.H{"error": "contract must be fixed or variable"})
		return
	}

	emp := models.Employee{
		ID:       uuid.NewString(),
		Name:     req.Name,
		Initials: req.Initials,
		Role:     req.Role,
		Contract: req.Contract,
		Active:   true,
		Template: req.Template,
	}
	if req.Active != nil {
		emp.Active = *req.Active
	}

	row, err := database.EmployeeFromModel(emp)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Password != "" {
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not hash password"})
			return
		}
		row.PasswordHash = hash
	}

	if err := h.DB.Create(&row).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create employee"})
		return
	}
	c.JSON(http.StatusCreated, emp)
}

// ListEmployees returns every staff record
func (h *Handler) ListEmployees(c *gin.Context) {
	employees, err := h.loadEmployees()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out := make([]models.Employee, 0, len(employees))
	for _, emp := range employees {
		out = append(out, *emp)
	}
	c.JSON(http.StatusOK, gin.H{"employees": out})
}

// UpdateEmployee edits a staff record in place
func (h *Handler) UpdateEmployee(c *gin.Context) {
	id := c.Param("id")

	var row database.Employee
	if err := h.DB.Where("id = ?", id).First(&row).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "employee not found"})
		return
	}

	var req employeePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	emp, err := database.EmployeeToModel(row)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if req.Name != "" {
		emp.Name = req.Name
	}
	if req.Initials != "" {
		emp.Initials = req.Initials
	}
	if req.Role != "" {
		if !req.Role.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown role"})
			return
		}
		emp.Role = req.Role
	}
	if req.Contract != "" {
		if req.Contract != models.ContractFixed && req.Contract != models.ContractVariable {
			c.JSON(http.StatusBadRequest, gin.H{"error": "contract must be fixed or variable"})
			return
		}
		emp.Contract = req.Contract
	}
	if req.Active != nil {
		emp.Active = *req.Active
	}
	if req.Template != nil {
		emp.Template = req.Template
	}

	updated, err := database.EmployeeFromModel(emp)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated.PasswordHash = row.PasswordHash
	if req.Password != "" {
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not hash password"})
			return
		}
		updated.PasswordHash = hash
	}
	updated.CreatedAt = row.CreatedAt

	if err := h.DB.Save(&updated).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update employee"})
		return
	}
	c.JSON(http.StatusOK, emp)
}

// DeleteEmployee removes a staff record
func (h *Handler) DeleteEmployee(c *gin.Context) {
	id := c.Param("id")
	result := h.DB.Where("id = ?", id).Delete(&database.Employee{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete employee"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "employee not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Employee deleted"})
}
