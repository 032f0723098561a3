package season

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/league/internal/common"
	"github.com/DhavalSuthar-24/league/pkg/responses"
	"github.com/DhavalSuthar-24/league/pkg/utils"
)

// SeasonController handles season CRUD. Season matches and highscores are
// served by the match package.
type SeasonController struct {
	repo SeasonRepository
}

func NewSeasonController(repo SeasonRepository) *SeasonController {
	return &SeasonController{repo: repo}
}

// GetSeasons godoc
// @Summary List seasons
// @Tags Seasons
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=[]Season}
// @Router /seasons [get]
func (sc *SeasonController) GetSeasons(c *gin.Context) {
	seasons, err := sc.repo.GetSeasons(c.Request.Context())
	if err != nil {
		common.RespondStoreError(c, err, "Failed to retrieve seasons")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", seasons)
}

// GetSeason godoc
// @Summary Get a season
// @Tags Seasons
// @Produce json
// @Param season_id path uint true "Season ID"
// @Success 200 {object} responses.SuccessResponse{data=Season}
// @Failure 404 {object} responses.ErrorResponse
// @Router /seasons/{season_id} [get]
func (sc *SeasonController) GetSeason(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "season_id")
	if !ok {
		responses.BadRequest(c, "Invalid season ID")
		return
	}
	s, err := sc.repo.GetSeasonByID(c.Request.Context(), id)
	if err != nil {
		common.RespondStoreError(c, err, "Failed to retrieve season")
		return
	}
	if s == nil {
		responses.NotFound(c, "Season")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", s)
}

// CreateSeason godoc
// @Summary Create a season
// @Tags Seasons
// @Accept json
// @Produce json
// @Param season body CreateSeasonRequest true "Season"
// @Success 201 {object} responses.SuccessResponse{data=Season}
// @Failure 400 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /seasons [post]
func (sc *SeasonController) CreateSeason(c *gin.Context) {
	var req CreateSeasonRequest
	if !common.BindJSON(c, &req) {
		return
	}
	s := Season{Title: req.Title, StartDate: req.StartDate, EndDate: req.EndDate}
	if !datesOrdered(&s) {
		responses.BadRequest(c, "Season end date precedes its start date")
		return
	}
	if err := sc.repo.CreateSeason(c.Request.Context(), &s); err != nil {
		common.RespondStoreError(c, err, "Failed to create season")
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Season added.", s)
}

// UpdateSeason godoc
// @Summary Update a season
// @Tags Seasons
// @Accept json
// @Produce json
// @Param season_id path uint true "Season ID"
// @Param season body UpdateSeasonRequest true "Fields to change"
// @Success 200 {object} responses.SuccessResponse{data=Season}
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /seasons/{season_id} [put]
func (sc *SeasonController) UpdateSeason(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "season_id")
	if !ok {
		responses.BadRequest(c, "Invalid season ID")
		return
	}
	var req UpdateSeasonRequest
	if !common.BindJSON(c, &req) {
		return
	}
	s, err := sc.repo.GetSeasonByID(c.Request.Context(), id)
	if err != nil {
		common.RespondStoreError(c, err, "Failed to retrieve season")
		return
	}
	if s == nil {
		responses.NotFound(c, "Season")
		return
	}
	if req.Title != nil {
		s.Title = *req.Title
	}
	if req.StartDate != nil {
		s.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		s.EndDate = *req.EndDate
	}
	if !datesOrdered(s) {
		responses.BadRequest(c, "Season end date precedes its start date")
		return
	}
	if err := sc.repo.UpdateSeason(c.Request.Context(), s); err != nil {
		common.RespondStoreError(c, err, "Failed to update season")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Season updated.", s)
}

// DeleteSeason godoc
// @Summary Delete a season
// @Tags Seasons
// @Param season_id path uint true "Season ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /seasons/{season_id} [delete]
func (sc *SeasonController) DeleteSeason(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "season_id")
	if !ok {
		responses.BadRequest(c, "Invalid season ID")
		return
	}
	if err := sc.repo.DeleteSeason(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			responses.NotFound(c, "Season")
			return
		}
		common.RespondStoreError(c, err, "Failed to delete season")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Season deleted.", nil)
}

// Fixed-width YYYYMMDD compares lexically.
func datesOrdered(s *Season) bool {
	return s.StartDate <= s.EndDate
}
