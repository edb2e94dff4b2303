package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dineres/booking-backend/models"
	"github.com/dineres/booking-backend/services"
	"github.com/dineres/booking-backend/utils"
)

type UserController struct {
	service *services.UserService
}

func NewUserController(service *services.UserService) *UserController {
	return &UserController{service: service}
}

type userRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
	Phone string `json:"phone"`
}

// CreateUser -> POST /api/users
func (uc *UserController) CreateUser(c *gin.Context) {
	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	user, err := uc.service.Create(&models.User{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "User created successfully", user)
}

// GetUserByID -> GET /api/users/:user_id
func (uc *UserController) GetUserByID(c *gin.Context) {
	id, err := parseIDParam(c, "user_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	user, err := uc.service.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "User detail", user)
}

// GetUserByEmail -> GET /api/users/email/:email
func (uc *UserController) GetUserByEmail(c *gin.Context) {
	user, err := uc.service.GetByEmail(c.Param("email"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "User detail", user)
}

// GetAllUsers -> GET /api/users
func (uc *UserController) GetAllUsers(c *gin.Context) {
	users, err := uc.service.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of users", users)
}

// UpdateUser -> PUT /api/users/:user_id
func (uc *UserController) UpdateUser(c *gin.Context) {
	id, err := parseIDParam(c, "user_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	user, err := uc.service.Update(id, models.User{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "User updated successfully", user)
}

// DeleteUser -> DELETE /api/users/:user_id
func (uc *UserController) DeleteUser(c *gin.Context) {
	id, err := parseIDParam(c, "user_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := uc.service.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CheckUserExists -> GET /api/users/:user_id/exists
func (uc *UserController) CheckUserExists(c *gin.Context) {
	id, err := parseIDParam(c, "user_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	exists, err := uc.service.Exists(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "User existence check", exists)
}

// CheckUserExistsByEmail -> GET /api/users/email/:email/exists
func (uc *UserController) CheckUserExistsByEmail(c *gin.Context) {
	exists, err := uc.service.ExistsByEmail(c.Param("email"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "User existence check", exists)
}
