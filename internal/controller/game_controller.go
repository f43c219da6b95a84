package controller

import (
	"errors"
	"net/http"
	"strconv"

	"millionaire_backend/internal/model"
	"millionaire_backend/internal/service"
	"millionaire_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type GameController struct {
	GameService *service.GameService
}

func NewGameController(gameService *service.GameService) *GameController {
	return &GameController{GameService: gameService}
}

type AnswerRequest struct {
	Answer string `json:"answer" binding:"required"`
}

type HelpRequest struct {
	Kind string `json:"kind" binding:"required"`
}

func parseGameID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil || id <= 0 {
		util.BadRequest(ctx, "invalid game id")
		return 0, false
	}
	return uint(id), true
}

func (c *GameController) handleGameError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrGameNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx)
	case errors.Is(err, util.ErrActiveGameExists),
		errors.Is(err, model.ErrGameFinished),
		errors.Is(err, model.ErrNothingToTake),
		errors.Is(err, model.ErrHelpAlreadyUsed):
		util.Conflict(ctx, err.Error())
	case errors.Is(err, util.ErrUnknownHelpKind):
		util.BadRequest(ctx, err.Error())
	case errors.Is(err, util.ErrQuestionShortage):
		util.Error(ctx, http.StatusServiceUnavailable, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}

// @Summary 开始新游戏
// @Tags 游戏
// @Security BearerAuth
// @Produce json
// @Success 201 {object} util.Response
// @Router /api/games [post]
func (c *GameController) CreateGame(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	game, err := c.GameService.CreateGameForUser(user.UserID)
	if err != nil {
		c.handleGameError(ctx, err)
		return
	}

	util.Created(ctx, service.NewGameView(game))
}

// @Summary 查看一局游戏
// @Tags 游戏
// @Security BearerAuth
// @Produce json
// @Param id path int true "游戏ID"
// @Success 200 {object} util.Response
// @Router /api/games/{id} [get]
func (c *GameController) GetGame(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	id, ok := parseGameID(ctx)
	if !ok {
		return
	}

	game, err := c.GameService.GetGame(user.UserID, id)
	if err != nil {
		c.handleGameError(ctx, err)
		return
	}

	util.Success(ctx, service.NewGameView(game))
}

// @Summary 历史游戏列表
// @Tags 游戏
// @Security BearerAuth
// @Produce json
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页数量" default(20)
// @Success 200 {object} util.Response
// @Router /api/games [get]
func (c *GameController) ListGames(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	page := 1
	limit := 20
	if p := ctx.Query("page"); p != "" {
		if v, err := strconv.Atoi(p); err == nil && v > 0 {
			page = v
		}
	}
	if l := ctx.Query("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 {
			limit = v
		}
	}

	games, total, err := c.GameService.ListGames(user.UserID, page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	views := make([]service.GameView, 0, len(games))
	for i := range games {
		views = append(views, service.NewGameView(&games[i]))
	}

	util.Success(ctx, util.PageResponse{
		List:  views,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// @Summary 回答当前题目
// @Tags 游戏
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "游戏ID"
// @Param body body AnswerRequest true "作答字母 a/b/c/d"
// @Success 200 {object} util.Response
// @Router /api/games/{id}/answer [put]
func (c *GameController) Answer(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	id, ok := parseGameID(ctx)
	if !ok {
		return
	}

	var req AnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	correct, game, err := c.GameService.AnswerCurrentQuestion(user.UserID, id, req.Answer)
	if err != nil {
		c.handleGameError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"correct": correct,
		"game":    service.NewGameView(game),
	})
}

// @Summary 带走奖金并结束游戏
// @Tags 游戏
// @Security BearerAuth
// @Produce json
// @Param id path int true "游戏ID"
// @Success 200 {object} util.Response
// @Router /api/games/{id}/take-money [put]
func (c *GameController) TakeMoney(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	id, ok := parseGameID(ctx)
	if !ok {
		return
	}

	game, err := c.GameService.TakeMoney(user.UserID, id)
	if err != nil {
		c.handleGameError(ctx, err)
		return
	}

	util.Success(ctx, service.NewGameView(game))
}

// @Summary 对当前题目使用提示
// @Tags 游戏
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "游戏ID"
// @Param body body HelpRequest true "提示类型 fifty_fifty/audience_help/friend_call"
// @Success 200 {object} util.Response
// @Router /api/games/{id}/help [put]
func (c *GameController) UseHelp(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	id, ok := parseGameID(ctx)
	if !ok {
		return
	}

	var req HelpRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	gq, err := c.GameService.UseHelp(user.UserID, id, req.Kind)
	if err != nil {
		c.handleGameError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"help": gq.HelpMap()})
}
