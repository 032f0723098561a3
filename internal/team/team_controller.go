package team

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/league/internal/common"
	"github.com/DhavalSuthar-24/league/pkg/responses"
	"github.com/DhavalSuthar-24/league/pkg/utils"
)

// TeamController handles team-related HTTP requests
type TeamController struct {
	repo TeamRepository
}

// NewTeamController creates a new team controller
func NewTeamController(repo TeamRepository) *TeamController {
	return &TeamController{repo: repo}
}

// CreateTeam godoc
// @Summary Create a new team
// @Tags Teams
// @Accept json
// @Produce json
// @Param team body CreateTeamRequest true "Team Creation Data"
// @Success 201 {object} responses.SuccessResponse{data=Team}
// @Failure 400 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse "Team name already exists"
// @Security ApiKeyAuth
// @Router /teams [post]
func (tc *TeamController) CreateTeam(c *gin.Context) {
	var req CreateTeamRequest
	if !common.BindJSON(c, &req) {
		return
	}

	team := Team{Name: req.Name}
	if err := tc.repo.CreateTeam(c.Request.Context(), &team); err != nil {
		common.RespondStoreError(c, err, "Failed to create team")
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Team created successfully", team)
}

// GetTeamByID godoc
// @Summary Get a team by its ID
// @Tags Teams
// @Produce json
// @Param team_id path uint true "Team ID"
// @Success 200 {object} responses.SuccessResponse{data=Team}
// @Failure 404 {object} responses.ErrorResponse "Team not found"
// @Router /teams/{team_id} [get]
func (tc *TeamController) GetTeamByID(c *gin.Context) {
	teamID, ok := utils.ParseIDParam(c, "team_id")
	if !ok {
		responses.BadRequest(c, "Invalid team ID")
		return
	}

	team, err := tc.repo.GetTeamByID(c.Request.Context(), teamID)
	if err != nil {
		common.RespondStoreError(c, err, "Failed to retrieve team")
		return
	}
	if team == nil {
		responses.NotFound(c, "Team")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Team retrieved successfully", team)
}

// GetAllTeams godoc
// @Summary Get all teams
// @Tags Teams
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(50)
// @Success 200 {object} responses.PaginatedResponse{data=[]Team}
// @Router /teams [get]
func (tc *TeamController) GetAllTeams(c *gin.Context) {
	page, limit := utils.Pagination(c)
	teams, total, err := tc.repo.GetAllTeams(c.Request.Context(), page, limit)
	if err != nil {
		common.RespondStoreError(c, err, "Failed to retrieve teams")
		return
	}
	responses.SendPaginated(c, http.StatusOK, "Teams retrieved successfully", teams, total, page, limit)
}

// UpdateTeam godoc
// @Summary Update a team
// @Tags Teams
// @Accept json
// @Produce json
// @Param team_id path uint true "Team ID"
// @Param team body UpdateTeamRequest true "Team Update Data"
// @Success 200 {object} responses.SuccessResponse{data=Team}
// @Failure 404 {object} responses.ErrorResponse "Team not found"
// @Security ApiKeyAuth
// @Router /teams/{team_id} [put]
func (tc *TeamController) UpdateTeam(c *gin.Context) {
	teamID, ok := utils.ParseIDParam(c, "team_id")
	if !ok {
		responses.BadRequest(c, "Invalid team ID")
		return
	}
	var req UpdateTeamRequest
	if !common.BindJSON(c, &req) {
		return
	}

	team, err := tc.repo.GetTeamByID(c.Request.Context(), teamID)
	if err != nil {
		common.RespondStoreError(c, err, "Failed to retrieve team")
		return
	}
	if team == nil {
		responses.NotFound(c, "Team")
		return
	}
	if req.Name != nil {
		team.Name = *req.Name
	}
	if err := tc.repo.UpdateTeam(c.Request.Context(), team); err != nil {
		common.RespondStoreError(c, err, "Failed to update team")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Team updated successfully", team)
}

// DeleteTeam godoc
// @Summary Delete a team
// @Tags Teams
// @Param team_id path uint true "Team ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse "Team not found"
// @Security ApiKeyAuth
// @Router /teams/{team_id} [delete]
func (tc *TeamController) DeleteTeam(c *gin.Context) {
	teamID, ok := utils.ParseIDParam(c, "team_id")
	if !ok {
		responses.BadRequest(c, "Invalid team ID")
		return
	}
	if err := tc.repo.DeleteTeam(c.Request.Context(), teamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			responses.NotFound(c, "Team")
			return
		}
		common.RespondStoreError(c, err, "Failed to delete team")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Team deleted.", nil)
}
