package event

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/league/internal/common"
	"github.com/DhavalSuthar-24/league/pkg/responses"
	"github.com/DhavalSuthar-24/league/pkg/utils"
)

type EventController struct {
	repo EventRepository
}

func NewEventController(repo EventRepository) *EventController {
	return &EventController{repo: repo}
}

// List godoc
// @Summary List all events
// @Tags Events
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=[]Event}
// @Router /events [get]
func (ec *EventController) List(c *gin.Context) {
	out, err := ec.repo.List(c.Request.Context())
	if err != nil {
		common.RespondStoreError(c, err, "Failed to retrieve events")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", out)
}

// ListByMatch godoc
// @Summary List the events of a match
// @Tags Events
// @Produce json
// @Param match_id path uint true "Match ID"
// @Success 200 {object} responses.SuccessResponse{data=[]Event}
// @Router /matches/{match_id}/events [get]
func (ec *EventController) ListByMatch(c *gin.Context) {
	matchID, ok := utils.ParseIDParam(c, "match_id")
	if !ok {
		responses.BadRequest(c, "Invalid match ID")
		return
	}
	out, err := ec.repo.ListByMatch(c.Request.Context(), matchID)
	if err != nil {
		common.RespondStoreError(c, err, "Failed to retrieve match events")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", out)
}

// Get godoc
// @Summary Get an event
// @Tags Events
// @Produce json
// @Param event_id path uint true "Event ID"
// @Success 200 {object} responses.SuccessResponse{data=Event}
// @Failure 404 {object} responses.ErrorResponse
// @Router /events/{event_id} [get]
func (ec *EventController) Get(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "event_id")
	if !ok {
		responses.BadRequest(c, "Invalid event ID")
		return
	}
	e, err := ec.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		common.RespondStoreError(c, err, "Failed to retrieve event")
		return
	}
	if e == nil {
		responses.NotFound(c, "Event")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", e)
}

// Create godoc
// @Summary Record a match event
// @Tags Events
// @Accept json
// @Produce json
// @Param event body CreateEventRequest true "Event"
// @Success 201 {object} responses.SuccessResponse{data=Event}
// @Failure 400 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /events [post]
func (ec *EventController) Create(c *gin.Context) {
	var req CreateEventRequest
	if !common.BindJSON(c, &req) {
		return
	}
	e := Event{
		MatchID:   req.MatchID,
		Player1ID: req.Player1ID,
		Player2ID: req.Player2ID,
		Type:      req.Type,
		Value:     req.Value,
	}
	if !playersDistinct(&e) {
		responses.BadRequest(c, "An event's two players must differ")
		return
	}
	if err := ec.repo.Create(c.Request.Context(), &e); err != nil {
		common.RespondStoreError(c, err, "Failed to create event")
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Event added.", e)
}

// Update godoc
// @Summary Edit an event
// @Tags Events
// @Accept json
// @Produce json
// @Param event_id path uint true "Event ID"
// @Param event body UpdateEventRequest true "Fields to change"
// @Success 200 {object} responses.SuccessResponse{data=Event}
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /events/{event_id} [put]
func (ec *EventController) Update(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "event_id")
	if !ok {
		responses.BadRequest(c, "Invalid event ID")
		return
	}
	var req UpdateEventRequest
	if !common.BindJSON(c, &req) {
		return
	}
	e, err := ec.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		common.RespondStoreError(c, err, "Failed to retrieve event")
		return
	}
	if e == nil {
		responses.NotFound(c, "Event")
		return
	}
	if req.Player1ID != nil {
		e.Player1ID = *req.Player1ID
	}
	if req.Player2ID != nil {
		e.Player2ID = req.Player2ID
	}
	if req.Type != nil {
		e.Type = *req.Type
	}
	if req.Value != nil {
		e.Value = *req.Value
	}
	if !playersDistinct(e) {
		responses.BadRequest(c, "An event's two players must differ")
		return
	}
	if err := ec.repo.Update(c.Request.Context(), e); err != nil {
		common.RespondStoreError(c, err, "Failed to update event")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Event updated.", e)
}

// Delete godoc
// @Summary Delete an event
// @Tags Events
// @Param event_id path uint true "Event ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /events/{event_id} [delete]
func (ec *EventController) Delete(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "event_id")
	if !ok {
		responses.BadRequest(c, "Invalid event ID")
		return
	}
	if err := ec.repo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			responses.NotFound(c, "Event")
			return
		}
		common.RespondStoreError(c, err, "Failed to delete event")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Event deleted.", nil)
}

func playersDistinct(e *Event) bool {
	return e.Player2ID == nil || *e.Player2ID != e.Player1ID
}
