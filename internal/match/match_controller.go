package match

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/league/internal/common"
	"github.com/DhavalSuthar-24/league/internal/season"
	"github.com/DhavalSuthar-24/league/pkg/responses"
	"github.com/DhavalSuthar-24/league/pkg/utils"
)

// MatchController handles match-related HTTP requests
type MatchController struct {
	repo    MatchRepository
	seasons season.SeasonRepository
}

// NewMatchController creates a new match controller
func NewMatchController(repo MatchRepository, seasons season.SeasonRepository) *MatchController {
	return &MatchController{repo: repo, seasons: seasons}
}

// GetMatches godoc
// @Summary List matches
// @Tags Matches
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(50)
// @Success 200 {object} responses.PaginatedResponse{data=[]Match}
// @Router /matches [get]
func (mc *MatchController) GetMatches(c *gin.Context) {
	page, limit := utils.Pagination(c)
	matches, total, err := mc.repo.GetMatches(c.Request.Context(), page, limit)
	if err != nil {
		common.RespondStoreError(c, err, "Failed to retrieve matches")
		return
	}
	responses.SendPaginated(c, http.StatusOK, "Matches retrieved successfully", matches, total, page, limit)
}

// GetMatch godoc
// @Summary Get a match with its team names
// @Tags Matches
// @Produce json
// @Param match_id path uint true "Match ID"
// @Success 200 {object} responses.SuccessResponse{data=Summary}
// @Failure 404 {object} responses.ErrorResponse
// @Router /matches/{match_id} [get]
func (mc *MatchController) GetMatch(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "match_id")
	if !ok {
		responses.BadRequest(c, "Invalid match ID")
		return
	}
	summary, err := mc.repo.GetMatchSummary(c.Request.Context(), id)
	if err != nil {
		common.RespondStoreError(c, err, "Failed to retrieve match")
		return
	}
	if summary == nil {
		responses.NotFound(c, "Match")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", summary)
}

// CreateMatch godoc
// @Summary Schedule a match
// @Tags Matches
// @Accept json
// @Produce json
// @Param match body CreateMatchRequest true "Match"
// @Success 201 {object} responses.SuccessResponse{data=Match}
// @Failure 400 {object} responses.ErrorResponse "Invalid payload or unknown season/team"
// @Security ApiKeyAuth
// @Router /matches [post]
func (mc *MatchController) CreateMatch(c *gin.Context) {
	var req CreateMatchRequest
	if !common.BindJSON(c, &req) {
		return
	}
	m := Match{
		Date:        req.Date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		SeasonID:    req.SeasonID,
		TeamAID:     req.TeamAID,
		TeamBID:     req.TeamBID,
		TeamAPoints: req.TeamAPoints,
		TeamBPoints: req.TeamBPoints,
	}
	if msg := checkMatch(&m); msg != "" {
		responses.BadRequest(c, msg)
		return
	}
	if err := mc.repo.CreateMatch(c.Request.Context(), &m); err != nil {
		common.RespondStoreError(c, err, "Failed to create match")
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Match added.", m)
}

// UpdateMatch godoc
// @Summary Update a match (score, schedule or teams)
// @Tags Matches
// @Accept json
// @Produce json
// @Param match_id path uint true "Match ID"
// @Param match body UpdateMatchRequest true "Fields to change"
// @Success 200 {object} responses.SuccessResponse{data=Match}
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /matches/{match_id} [put]
func (mc *MatchController) UpdateMatch(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "match_id")
	if !ok {
		responses.BadRequest(c, "Invalid match ID")
		return
	}
	var req UpdateMatchRequest
	if !common.BindJSON(c, &req) {
		return
	}
	m, err := mc.repo.GetMatchByID(c.Request.Context(), id)
	if err != nil {
		common.RespondStoreError(c, err, "Failed to retrieve match")
		return
	}
	if m == nil {
		responses.NotFound(c, "Match")
		return
	}

	if req.Date != nil {
		m.Date = *req.Date
	}
	if req.StartTime != nil {
		m.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		m.EndTime = *req.EndTime
	}
	if req.SeasonID != nil {
		m.SeasonID = *req.SeasonID
	}
	if req.TeamAID != nil {
		m.TeamAID = *req.TeamAID
	}
	if req.TeamBID != nil {
		m.TeamBID = *req.TeamBID
	}
	if req.TeamAPoints != nil {
		m.TeamAPoints = *req.TeamAPoints
	}
	if req.TeamBPoints != nil {
		m.TeamBPoints = *req.TeamBPoints
	}
	if msg := checkMatch(m); msg != "" {
		responses.BadRequest(c, msg)
		return
	}

	if err := mc.repo.UpdateMatch(c.Request.Context(), m); err != nil {
		common.RespondStoreError(c, err, "Failed to update match")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Match updated.", m)
}

// DeleteMatch godoc
// @Summary Delete a match
// @Tags Matches
// @Param match_id path uint true "Match ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /matches/{match_id} [delete]
func (mc *MatchController) DeleteMatch(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "match_id")
	if !ok {
		responses.BadRequest(c, "Invalid match ID")
		return
	}
	if err := mc.repo.DeleteMatch(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			responses.NotFound(c, "Match")
			return
		}
		common.RespondStoreError(c, err, "Failed to delete match")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Match deleted.", nil)
}

// GetSeasonMatches godoc
// @Summary List the matches of a season
// @Tags Seasons
// @Produce json
// @Param season_id path uint true "Season ID"
// @Success 200 {object} responses.SuccessResponse{data=[]Summary}
// @Failure 404 {object} responses.ErrorResponse
// @Router /seasons/{season_id}/matches [get]
func (mc *MatchController) GetSeasonMatches(c *gin.Context) {
	seasonID, ok := mc.requireSeason(c)
	if !ok {
		return
	}
	rows, err := mc.repo.GetSeasonMatches(c.Request.Context(), seasonID)
	if err != nil {
		common.RespondStoreError(c, err, "Failed to retrieve season matches")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", rows)
}

// GetSeasonHighscore godoc
// @Summary Points per team over a season, best first
// @Tags Seasons
// @Produce json
// @Param season_id path uint true "Season ID"
// @Success 200 {object} responses.SuccessResponse{data=[]TeamScore}
// @Failure 404 {object} responses.ErrorResponse
// @Router /seasons/{season_id}/highscore [get]
func (mc *MatchController) GetSeasonHighscore(c *gin.Context) {
	seasonID, ok := mc.requireSeason(c)
	if !ok {
		return
	}
	rows, err := mc.repo.GetSeasonHighscore(c.Request.Context(), seasonID)
	if err != nil {
		common.RespondStoreError(c, err, "Failed to compute season highscore")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", rows)
}

func (mc *MatchController) requireSeason(c *gin.Context) (uint, bool) {
	seasonID, ok := utils.ParseIDParam(c, "season_id")
	if !ok {
		responses.BadRequest(c, "Invalid season ID")
		return 0, false
	}
	s, err := mc.seasons.GetSeasonByID(c.Request.Context(), seasonID)
	if err != nil {
		common.RespondStoreError(c, err, "Failed to retrieve season")
		return 0, false
	}
	if s == nil {
		responses.NotFound(c, "Season")
		return 0, false
	}
	return seasonID, true
}

// checkMatch returns a client-facing message when m is inconsistent.
func checkMatch(m *Match) string {
	if m.TeamAID == m.TeamBID {
		return "A match needs two different teams"
	}
	if m.StartTime != "" && m.EndTime != "" && m.EndTime < m.StartTime {
		return "Match end time precedes its start time"
	}
	return ""
}
