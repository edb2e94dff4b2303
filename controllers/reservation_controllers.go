package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dineres/booking-backend/models"
	"github.com/dineres/booking-backend/services"
	"github.com/dineres/booking-backend/utils"
)

type ReservationController struct {
	service *services.ReservationService
}

func NewReservationController(service *services.ReservationService) *ReservationController {
	return &ReservationController{service: service}
}

// CheckAvailability -> GET /api/reservations/available?date&time&numberOfGuests
func (rc *ReservationController) CheckAvailability(c *gin.Context) {
	date, err := services.NormalizeDate(c.Query("date"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	timeOfDay, err := services.NormalizeTime(c.Query("time"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	guests, err := strconv.Atoi(c.Query("numberOfGuests"))
	if err != nil || guests < 1 || guests > 10 {
		utils.RespondError(c, http.StatusBadRequest,
			errors.New("numberOfGuests must be an integer between 1 and 10"))
		return
	}

	tables, err := rc.service.GetAvailableTables(date, timeOfDay, guests)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Available tables", tables)
}

type reservationRequest struct {
	UserID         uint   `json:"user_id" binding:"required"`
	TableID        uint   `json:"table_id" binding:"required"`
	Date           string `json:"date" binding:"required"`
	Time           string `json:"time" binding:"required"`
	NumberOfGuests int    `json:"number_of_guests" binding:"required"`
	Status         string `json:"status"`
}

// CreateReservation -> POST /api/reservations
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var req reservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	reservation, err := rc.service.Create(&models.Reservation{
		UserID:         req.UserID,
		TableID:        req.TableID,
		Date:           req.Date,
		Time:           req.Time,
		NumberOfGuests: req.NumberOfGuests,
		Status:         req.Status,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Reservation created successfully", reservation)
}

// GetAllReservations -> GET /api/reservations
func (rc *ReservationController) GetAllReservations(c *gin.Context) {
	reservations, err := rc.service.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of reservations", reservations)
}
