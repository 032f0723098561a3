package roster

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/league/internal/common"
	"github.com/DhavalSuthar-24/league/pkg/logger"
	"github.com/DhavalSuthar-24/league/pkg/responses"
	"github.com/DhavalSuthar-24/league/pkg/utils"
)

type AddPlayerRequest struct {
	PlayerID uint `json:"player_id" binding:"required"`
}

type SubstituteRequest struct {
	SubstitutedPlayer  uint `json:"substituted_player" binding:"required"`
	SubstitutingPlayer uint `json:"substituting_player" binding:"required"`
}

type SubstitutionRequest struct {
	MatchID            uint   `json:"substitution_match" binding:"required"`
	Time               string `json:"substitution_time" binding:"required,hhmmss"`
	SubstitutedPlayer  uint   `json:"substituted_player" binding:"required"`
	SubstitutingPlayer uint   `json:"substituting_player" binding:"required"`
}

// RosterController exposes the engine over HTTP.
type RosterController struct {
	engine *Engine
}

func NewRosterController(engine *Engine) *RosterController {
	return &RosterController{engine: engine}
}

// GetMatchPlayers godoc
// @Summary Roster of a match, active and inactive
// @Tags Roster
// @Produce json
// @Param match_id path uint true "Match ID"
// @Success 200 {object} responses.SuccessResponse{data=[]Entry}
// @Failure 404 {object} responses.ErrorResponse
// @Router /matches/{match_id}/players [get]
func (rc *RosterController) GetMatchPlayers(c *gin.Context) {
	matchID, ok := utils.ParseIDParam(c, "match_id")
	if !ok {
		responses.BadRequest(c, "Invalid match ID")
		return
	}
	entries, err := rc.engine.GetMatchRoster(c.Request.Context(), matchID)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", entries)
}

// AddMatchPlayer godoc
// @Summary Put a player on a match roster
// @Tags Roster
// @Accept json
// @Produce json
// @Param match_id path uint true "Match ID"
// @Param player body AddPlayerRequest true "Player"
// @Success 201 {object} responses.SuccessResponse{data=Entry}
// @Failure 400 {object} responses.ErrorResponse "Already in match or gender quota exceeded"
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /matches/{match_id}/players [post]
func (rc *RosterController) AddMatchPlayer(c *gin.Context) {
	matchID, ok := utils.ParseIDParam(c, "match_id")
	if !ok {
		responses.BadRequest(c, "Invalid match ID")
		return
	}
	var req AddPlayerRequest
	if !common.BindJSON(c, &req) {
		return
	}
	entry, err := rc.engine.AddMatchPlayer(c.Request.Context(), matchID, req.PlayerID)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Player added to match.", entry)
}

// Substitute godoc
// @Summary Swap an active player for a teammate without recording it
// @Tags Roster
// @Accept json
// @Produce json
// @Param match_id path uint true "Match ID"
// @Param substitution body SubstituteRequest true "Players"
// @Success 200 {object} responses.SuccessResponse{data=[]Entry}
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /matches/{match_id}/substitute [post]
func (rc *RosterController) Substitute(c *gin.Context) {
	matchID, ok := utils.ParseIDParam(c, "match_id")
	if !ok {
		responses.BadRequest(c, "Invalid match ID")
		return
	}
	var req SubstituteRequest
	if !common.BindJSON(c, &req) {
		return
	}
	ctx := c.Request.Context()
	if err := rc.engine.SubstitutePlayer(ctx, matchID, req.SubstitutedPlayer, req.SubstitutingPlayer); err != nil {
		respondEngineError(c, err)
		return
	}
	entries, err := rc.engine.GetMatchRoster(ctx, matchID)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Players substituted.", entries)
}

// GetMatchSubstitutions godoc
// @Summary Substitution ledger of a match
// @Tags Roster
// @Produce json
// @Param match_id path uint true "Match ID"
// @Success 200 {object} responses.SuccessResponse{data=[]SubstitutionView}
// @Failure 404 {object} responses.ErrorResponse
// @Router /matches/{match_id}/substitutions [get]
func (rc *RosterController) GetMatchSubstitutions(c *gin.Context) {
	matchID, ok := utils.ParseIDParam(c, "match_id")
	if !ok {
		responses.BadRequest(c, "Invalid match ID")
		return
	}
	subs, err := rc.engine.ListSubstitutions(c.Request.Context(), matchID)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", subs)
}

// GetSubstitutions godoc
// @Summary Every recorded substitution
// @Tags Roster
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=[]SubstitutionView}
// @Router /substitutions [get]
func (rc *RosterController) GetSubstitutions(c *gin.Context) {
	subs, err := rc.engine.ListSubstitutions(c.Request.Context(), 0)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", subs)
}

// GetSubstitution godoc
// @Summary Get a substitution
// @Tags Roster
// @Produce json
// @Param substitution_id path uint true "Substitution ID"
// @Success 200 {object} responses.SuccessResponse{data=SubstitutionView}
// @Failure 404 {object} responses.ErrorResponse
// @Router /substitutions/{substitution_id} [get]
func (rc *RosterController) GetSubstitution(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "substitution_id")
	if !ok {
		responses.BadRequest(c, "Invalid substitution ID")
		return
	}
	sub, err := rc.engine.GetSubstitution(c.Request.Context(), id)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", sub)
}

// AddSubstitution godoc
// @Summary Substitute a player and record it
// @Tags Roster
// @Accept json
// @Produce json
// @Param substitution body SubstitutionRequest true "Substitution"
// @Success 201 {object} responses.SuccessResponse{data=Substitution}
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /substitutions [post]
func (rc *RosterController) AddSubstitution(c *gin.Context) {
	var req SubstitutionRequest
	if !common.BindJSON(c, &req) {
		return
	}
	sub, err := rc.engine.AddSubstitution(c.Request.Context(), req.MatchID,
		req.SubstitutedPlayer, req.SubstitutingPlayer, req.Time)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Substitution added.", sub)
}

// EditSubstitution godoc
// @Summary Replace a substitution, re-validating it as a new one
// @Tags Roster
// @Accept json
// @Produce json
// @Param substitution_id path uint true "Substitution ID"
// @Param substitution body SubstitutionRequest true "Substitution"
// @Success 200 {object} responses.SuccessResponse{data=Substitution}
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /substitutions/{substitution_id} [put]
func (rc *RosterController) EditSubstitution(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "substitution_id")
	if !ok {
		responses.BadRequest(c, "Invalid substitution ID")
		return
	}
	var req SubstitutionRequest
	if !common.BindJSON(c, &req) {
		return
	}
	sub, err := rc.engine.EditSubstitution(c.Request.Context(), id, req.MatchID,
		req.SubstitutedPlayer, req.SubstitutingPlayer, req.Time)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Substitution updated.", sub)
}

func respondEngineError(c *gin.Context, err error) {
	var ve *ValidationError
	var nf *NotFoundError
	switch {
	case errors.As(err, &ve):
		responses.BadRequest(c, ve.Msg)
	case errors.As(err, &nf):
		responses.SendError(c, http.StatusNotFound, nf.Error())
	default:
		logger.FromContext(c.Request.Context()).Error("roster request failed", "error", err, "path", c.FullPath())
		responses.InternalServerError(c)
	}
}
