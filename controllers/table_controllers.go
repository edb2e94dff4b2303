package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dineres/booking-backend/models"
	"github.com/dineres/booking-backend/services"
	"github.com/dineres/booking-backend/utils"
)

type TableController struct {
	service *services.TableService
}

func NewTableController(service *services.TableService) *TableController {
	return &TableController{service: service}
}

type tableRequest struct {
	Number   int `json:"number" binding:"required"`
	Capacity int `json:"capacity" binding:"required"`
}

// CreateTable -> POST /api/tables
func (tc *TableController) CreateTable(c *gin.Context) {
	var req tableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	table, err := tc.service.Create(&models.Table{
		Number:   req.Number,
		Capacity: req.Capacity,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.InfoLogger.Printf("New table created: %d (capacity=%d)", table.Number, table.Capacity)
	utils.RespondJSON(c, http.StatusCreated, "Table created successfully", table)
}

// GetAllTables -> GET /api/tables
func (tc *TableController) GetAllTables(c *gin.Context) {
	tables, err := tc.service.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of tables", tables)
}

// GetTableByID -> GET /api/tables/:table_id
func (tc *TableController) GetTableByID(c *gin.Context) {
	id, err := parseIDParam(c, "table_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	table, err := tc.service.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table detail", table)
}

// GetTableByNumber -> GET /api/tables/number/:number
func (tc *TableController) GetTableByNumber(c *gin.Context) {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	table, err := tc.service.GetByNumber(number)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table detail", table)
}

// UpdateTable -> PUT /api/tables/:table_id
func (tc *TableController) UpdateTable(c *gin.Context) {
	id, err := parseIDParam(c, "table_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var req tableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	table, err := tc.service.Update(id, models.Table{
		Number:   req.Number,
		Capacity: req.Capacity,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table updated successfully", table)
}

// DeleteTable -> DELETE /api/tables/:table_id
func (tc *TableController) DeleteTable(c *gin.Context) {
	id, err := parseIDParam(c, "table_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := tc.service.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.InfoLogger.Printf("Table %d deleted", id)
	c.Status(http.StatusNoContent)
}

// CheckTableExists -> GET /api/tables/exists/:table_id
func (tc *TableController) CheckTableExists(c *gin.Context) {
	id, err := parseIDParam(c, "table_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	exists, err := tc.service.Exists(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table existence check", exists)
}

// CheckTableExistsByNumber -> GET /api/tables/exists/number/:number
func (tc *TableController) CheckTableExistsByNumber(c *gin.Context) {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	exists, err := tc.service.ExistsByNumber(number)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table existence check", exists)
}
