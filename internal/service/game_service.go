package service

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"millionaire_backend/internal/model"
	"millionaire_backend/internal/repository"
	"millionaire_backend/internal/util"
	"millionaire_backend/pkg/logger"
	"millionaire_backend/pkg/monitoring"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// GameService 负责游戏编排：建局、判答、提示、提现。
// 游戏状态机本身在 model 层，这里只做加载、校验、落库和奖金入账。
type GameService struct {
	GameRepo     *repository.GameRepository
	QuestionRepo *repository.QuestionRepository
	UserRepo     *repository.UserRepository
	DB           *gorm.DB

	// rand.Rand 非并发安全，所有取随机数的路径都要拿锁
	mu  sync.Mutex
	rng *rand.Rand
}

func NewGameService(gameRepo *repository.GameRepository, questionRepo *repository.QuestionRepository, userRepo *repository.UserRepository, db *gorm.DB) *GameService {
	return &GameService{
		GameRepo:     gameRepo,
		QuestionRepo: questionRepo,
		UserRepo:     userRepo,
		DB:           db,
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// randomPermutation 返回 {1,2,3,4} 的均匀随机排列
func (s *GameService) randomPermutation() [4]int {
	s.mu.Lock()
	perm := s.rng.Perm(4)
	s.mu.Unlock()

	var p [4]int
	for i, v := range perm {
		p[i] = v + 1
	}
	return p
}

// CreateGameForUser 为玩家开一局新游戏：每个难度 0..14 随机抽一题，
// 每题配一个独立的随机字母排列。任一难度抽不到题则整个事务回滚。
func (s *GameService) CreateGameForUser(userID uint) (*model.Game, error) {
	if _, err := s.UserRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	if _, err := s.GameRepo.FindActiveByUser(userID); err == nil {
		return nil, util.ErrActiveGameExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var gameID uint
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		game := &model.Game{UserID: userID, CurrentLevel: model.FirstLevel}
		if err := tx.Create(game).Error; err != nil {
			return err
		}

		for level := model.FirstLevel; level <= model.MaxLevel; level++ {
			q, err := s.QuestionRepo.RandomByLevel(tx, level)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: no question for level %d", util.ErrQuestionShortage, level)
				}
				return err
			}

			p := s.randomPermutation()
			gq := &model.GameQuestion{
				GameID:     game.ID,
				QuestionID: q.ID,
				A:          p[0],
				B:          p[1],
				C:          p[2],
				D:          p[3],
			}
			if err := tx.Create(gq).Error; err != nil {
				return err
			}
		}

		gameID = game.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Log.Info("game created",
		zap.Uint("userId", userID),
		zap.Uint("gameId", gameID))

	return s.GameRepo.FindByID(gameID)
}

func (s *GameService) loadOwnedGame(userID, gameID uint) (*model.Game, error) {
	game, err := s.GameRepo.FindByID(gameID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrGameNotFound
		}
		return nil, err
	}
	if game.UserID != userID {
		return nil, util.ErrPermissionDenied
	}
	return game, nil
}

// GetGame 返回玩家自己的一局游戏
func (s *GameService) GetGame(userID, gameID uint) (*model.Game, error) {
	return s.loadOwnedGame(userID, gameID)
}

// ListGames 返回玩家的历史游戏
func (s *GameService) ListGames(userID uint, page, limit int) ([]model.Game, int64, error) {
	return s.GameRepo.ListByUser(userID, page, limit)
}

// AnswerCurrentQuestion 提交当前题目的作答。状态机判定在 model 层完成，
// 落库和终局入账在同一事务内提交。
func (s *GameService) AnswerCurrentQuestion(userID, gameID uint, key string) (bool, *model.Game, error) {
	game, err := s.loadOwnedGame(userID, gameID)
	if err != nil {
		return false, nil, err
	}

	correct, err := game.AnswerCurrentQuestion(key, time.Now())
	if err != nil {
		return false, nil, err
	}

	if err := s.persistGame(game); err != nil {
		return false, nil, err
	}

	if game.Finished() {
		monitoring.GamesFinished.WithLabelValues(string(game.Status())).Inc()
	}

	logger.Log.Info("answer evaluated",
		zap.Uint("gameId", game.ID),
		zap.Bool("correct", correct),
		zap.String("status", string(game.Status())))

	return correct, game, nil
}

// TakeMoney 提前结束游戏并给玩家入账
func (s *GameService) TakeMoney(userID, gameID uint) (*model.Game, error) {
	game, err := s.loadOwnedGame(userID, gameID)
	if err != nil {
		return nil, err
	}

	prize, err := game.TakeMoney(time.Now())
	if err != nil {
		return nil, err
	}

	if err := s.persistGame(game); err != nil {
		return nil, err
	}

	monitoring.GamesFinished.WithLabelValues(string(game.Status())).Inc()

	logger.Log.Info("money taken",
		zap.Uint("gameId", game.ID),
		zap.Int("prize", prize))

	return game, nil
}

// persistGame 保存游戏；终局且有奖金时在同一事务内入账。
// 游戏结束后所有变更操作都会被拒绝，入账不会重复发生。
func (s *GameService) persistGame(game *model.Game) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.GameRepo.SaveTx(tx, game); err != nil {
			return err
		}
		if game.Finished() && game.Prize > 0 {
			return s.UserRepo.CreditBalance(tx, game.UserID, game.Prize)
		}
		return nil
	})
}

// UseHelp 对当前题目使用一种提示，结果写入 help_hash 后持久化
func (s *GameService) UseHelp(userID, gameID uint, kind string) (*model.GameQuestion, error) {
	game, err := s.loadOwnedGame(userID, gameID)
	if err != nil {
		return nil, err
	}
	if game.Finished() {
		return nil, model.ErrGameFinished
	}

	gq := game.CurrentGameQuestion()
	if gq == nil {
		return nil, model.ErrGameFinished
	}

	s.mu.Lock()
	switch kind {
	case model.HelpFiftyFifty:
		_, err = gq.AddFiftyFifty(s.rng)
	case model.HelpAudience:
		_, err = gq.AddAudienceHelp(s.rng)
	case model.HelpFriendCall:
		_, err = gq.AddFriendCall(s.rng)
	default:
		err = util.ErrUnknownHelpKind
	}
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	if err := s.GameRepo.SaveGameQuestion(gq); err != nil {
		return nil, err
	}

	logger.Log.Info("help used",
		zap.Uint("gameId", game.ID),
		zap.String("kind", kind))

	return gq, nil
}
