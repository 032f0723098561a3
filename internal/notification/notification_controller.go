package notification

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/league/internal/common"
	"github.com/DhavalSuthar-24/league/pkg/responses"
	"github.com/DhavalSuthar-24/league/pkg/utils"
)

type NotificationController struct {
	repo NotificationRepository
}

func NewNotificationController(repo NotificationRepository) *NotificationController {
	return &NotificationController{repo: repo}
}

// List godoc
// @Summary List notifications
// @Tags Notifications
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=[]Notification}
// @Router /notifications [get]
func (nc *NotificationController) List(c *gin.Context) {
	out, err := nc.repo.List(c.Request.Context())
	if err != nil {
		common.RespondStoreError(c, err, "Failed to retrieve notifications")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", out)
}

// Create godoc
// @Summary Publish a notification
// @Tags Notifications
// @Accept json
// @Produce json
// @Param notification body CreateNotificationRequest true "Notification"
// @Success 201 {object} responses.SuccessResponse{data=Notification}
// @Security ApiKeyAuth
// @Router /notifications [post]
func (nc *NotificationController) Create(c *gin.Context) {
	var req CreateNotificationRequest
	if !common.BindJSON(c, &req) {
		return
	}
	n := Notification{Title: req.Title, Description: req.Description}
	if err := nc.repo.Create(c.Request.Context(), &n); err != nil {
		common.RespondStoreError(c, err, "Failed to create notification")
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Notification added.", n)
}

// Update godoc
// @Summary Edit a notification
// @Tags Notifications
// @Accept json
// @Produce json
// @Param notification_id path uint true "Notification ID"
// @Param notification body UpdateNotificationRequest true "Fields to change"
// @Success 200 {object} responses.SuccessResponse{data=Notification}
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /notifications/{notification_id} [put]
func (nc *NotificationController) Update(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "notification_id")
	if !ok {
		responses.BadRequest(c, "Invalid notification ID")
		return
	}
	var req UpdateNotificationRequest
	if !common.BindJSON(c, &req) {
		return
	}
	n, err := nc.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		common.RespondStoreError(c, err, "Failed to retrieve notification")
		return
	}
	if n == nil {
		responses.NotFound(c, "Notification")
		return
	}
	if req.Title != nil {
		n.Title = *req.Title
	}
	if req.Description != nil {
		n.Description = *req.Description
	}
	if err := nc.repo.Update(c.Request.Context(), n); err != nil {
		common.RespondStoreError(c, err, "Failed to update notification")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Notification updated.", n)
}

// Delete godoc
// @Summary Delete a notification
// @Tags Notifications
// @Param notification_id path uint true "Notification ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /notifications/{notification_id} [delete]
func (nc *NotificationController) Delete(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "notification_id")
	if !ok {
		responses.BadRequest(c, "Invalid notification ID")
		return
	}
	if err := nc.repo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			responses.NotFound(c, "Notification")
			return
		}
		common.RespondStoreError(c, err, "Failed to delete notification")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Notification deleted.", nil)
}
