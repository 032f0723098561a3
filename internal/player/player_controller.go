package player

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/league/internal/common"
	"github.com/DhavalSuthar-24/league/pkg/responses"
	"github.com/DhavalSuthar-24/league/pkg/utils"
)

type PlayerController struct {
	repo PlayerRepository
}

func NewPlayerController(repo PlayerRepository) *PlayerController {
	return &PlayerController{repo: repo}
}

// GetPlayers godoc
// @Summary List players
// @Tags Players
// @Produce json
// @Param team_id query int false "Only players of this team"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(50)
// @Success 200 {object} responses.PaginatedResponse{data=[]Player}
// @Router /players [get]
func (pc *PlayerController) GetPlayers(c *gin.Context) {
	page, limit := utils.Pagination(c)
	var teamID uint
	if raw := c.Query("team_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			responses.BadRequest(c, "Invalid team ID")
			return
		}
		teamID = uint(id)
	}

	players, total, err := pc.repo.GetPlayers(c.Request.Context(), teamID, page, limit)
	if err != nil {
		common.RespondStoreError(c, err, "Failed to retrieve players")
		return
	}
	responses.SendPaginated(c, http.StatusOK, "Players retrieved successfully", players, total, page, limit)
}

// GetPlayer godoc
// @Summary Get a player
// @Tags Players
// @Produce json
// @Param player_id path uint true "Player ID"
// @Success 200 {object} responses.SuccessResponse{data=Player}
// @Failure 404 {object} responses.ErrorResponse
// @Router /players/{player_id} [get]
func (pc *PlayerController) GetPlayer(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "player_id")
	if !ok {
		responses.BadRequest(c, "Invalid player ID")
		return
	}
	p, err := pc.repo.GetPlayerByID(c.Request.Context(), id)
	if err != nil {
		common.RespondStoreError(c, err, "Failed to retrieve player")
		return
	}
	if p == nil {
		responses.SendError(c, http.StatusNotFound, "Player "+strconv.FormatUint(uint64(id), 10)+" does not exist.")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", p)
}

// CreatePlayer godoc
// @Summary Create a player
// @Tags Players
// @Accept json
// @Produce json
// @Param player body CreatePlayerRequest true "Player"
// @Success 201 {object} responses.SuccessResponse{data=Player}
// @Failure 400 {object} responses.ErrorResponse "Invalid payload, gender or team"
// @Security ApiKeyAuth
// @Router /players [post]
func (pc *PlayerController) CreatePlayer(c *gin.Context) {
	var req CreatePlayerRequest
	if !common.BindJSON(c, &req) {
		return
	}
	p := Player{Name: req.Name, Gender: req.Gender, TeamID: req.TeamID}
	if err := pc.repo.CreatePlayer(c.Request.Context(), &p); err != nil {
		common.RespondStoreError(c, err, "Failed to create player")
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Player created successfully", p)
}

// UpdatePlayer godoc
// @Summary Update a player
// @Tags Players
// @Accept json
// @Produce json
// @Param player_id path uint true "Player ID"
// @Param player body UpdatePlayerRequest true "Fields to change"
// @Success 200 {object} responses.SuccessResponse{data=Player}
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /players/{player_id} [put]
func (pc *PlayerController) UpdatePlayer(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "player_id")
	if !ok {
		responses.BadRequest(c, "Invalid player ID")
		return
	}
	var req UpdatePlayerRequest
	if !common.BindJSON(c, &req) {
		return
	}

	p, err := pc.repo.GetPlayerByID(c.Request.Context(), id)
	if err != nil {
		common.RespondStoreError(c, err, "Failed to retrieve player")
		return
	}
	if p == nil {
		responses.NotFound(c, "Player")
		return
	}
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Gender != nil {
		p.Gender = *req.Gender
	}
	if req.TeamID != nil {
		p.TeamID = *req.TeamID
		p.Team = nil
	}
	if err := pc.repo.UpdatePlayer(c.Request.Context(), p); err != nil {
		common.RespondStoreError(c, err, "Failed to update player")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Player updated successfully", p)
}

// DeletePlayer godoc
// @Summary Delete a player
// @Tags Players
// @Param player_id path uint true "Player ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /players/{player_id} [delete]
func (pc *PlayerController) DeletePlayer(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "player_id")
	if !ok {
		responses.BadRequest(c, "Invalid player ID")
		return
	}
	if err := pc.repo.DeletePlayer(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			responses.NotFound(c, "Player")
			return
		}
		common.RespondStoreError(c, err, "Failed to delete player")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Player deleted.", nil)
}
