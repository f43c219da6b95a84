package model

import (
	"errors"
	"time"
)

type GameStatus string

const (
	StatusInProgress GameStatus = "in_progress"
	StatusWon        GameStatus = "won"
	StatusFail       GameStatus = "fail"
	StatusTimeout    GameStatus = "timeout"
	StatusMoney      GameStatus = "money"
)

const (
	FirstLevel = 0
	MaxLevel   = 14

	// 从创建时刻起允许的游戏时长
	TimeLimit = time.Hour
)

var (
	ErrGameFinished  = errors.New("game already finished")
	ErrNothingToTake = errors.New("cannot take money before the first correct answer")
)

// Game 持有一局游戏的 15 道 GameQuestion（按难度 0..14 排列）、
// 当前进度和终局字段。状态不落库，由字段实时推导。
// swagger:model Game
type Game struct {
	BaseModel

	UserID uint `gorm:"index;type:bigint unsigned" json:"userId"`
	User   User `gorm:"foreignKey:UserID" json:"-"`

	GameQuestions []GameQuestion `gorm:"foreignKey:GameID" json:"-"`

	CurrentLevel int        `gorm:"default:0" json:"currentLevel"`
	IsFailed     bool       `gorm:"default:false" json:"isFailed"`
	Prize        int        `gorm:"default:0" json:"prize"`
	FinishedAt   *time.Time `json:"finishedAt,omitempty"`
}

func (Game) TableName() string {
	return "games"
}

// Finished 游戏是否已经结束
func (g *Game) Finished() bool {
	return g.FinishedAt != nil
}

// PreviousLevel 最近一道已答题目的等级，开局时为 -1
func (g *Game) PreviousLevel() int {
	return g.CurrentLevel - 1
}

// CurrentGameQuestion 当前待答的题目，已答完全部题目时为 nil
func (g *Game) CurrentGameQuestion() *GameQuestion {
	return g.questionAt(g.CurrentLevel)
}

// PreviousGameQuestion 最近一道已答的题目，开局时为 nil
func (g *Game) PreviousGameQuestion() *GameQuestion {
	return g.questionAt(g.PreviousLevel())
}

func (g *Game) questionAt(level int) *GameQuestion {
	if level < 0 || level >= len(g.GameQuestions) {
		return nil
	}
	return &g.GameQuestions[level]
}

// Status 按固定顺序推导游戏状态，永不缓存
func (g *Game) Status() GameStatus {
	if !g.Finished() {
		return StatusInProgress
	}
	if g.IsFailed {
		if g.FinishedAt.Sub(g.CreatedAt) > TimeLimit {
			return StatusTimeout
		}
		return StatusFail
	}
	if g.CurrentLevel > MaxLevel {
		return StatusWon
	}
	return StatusMoney
}

// TimedOut 从创建时刻到 now 是否已超出时限
func (g *Game) TimedOut(now time.Time) bool {
	return now.Sub(g.CreatedAt) > TimeLimit
}

func (g *Game) finish(now time.Time, failed bool, prize int) {
	g.FinishedAt = &now
	g.IsFailed = failed
	g.Prize = prize
}

// AnswerCurrentQuestion 判定当前题目的作答，只改内存状态，持久化由服务层负责。
// 返回 false 表示超时、答错或游戏就此结束；对已结束的游戏返回错误。
func (g *Game) AnswerCurrentQuestion(key string, now time.Time) (bool, error) {
	if g.Finished() {
		return false, ErrGameFinished
	}

	if g.TimedOut(now) {
		g.finish(now, true, FireproofPrize(g.PreviousLevel()))
		return false, nil
	}

	gq := g.CurrentGameQuestion()
	if gq == nil {
		return false, ErrGameFinished
	}

	if !gq.AnswerCorrect(key) {
		g.finish(now, true, FireproofPrize(g.PreviousLevel()))
		return false, nil
	}

	answered := g.CurrentLevel
	g.CurrentLevel++

	if answered == MaxLevel {
		g.finish(now, false, PrizeForLevel(MaxLevel))
	} else if IsFireproof(answered) {
		// 过保底检查点，奖金就此锁定
		g.Prize = PrizeForLevel(answered)
	}
	return true, nil
}

// TakeMoney 提前结束游戏，带走上一等级的全额奖金
func (g *Game) TakeMoney(now time.Time) (int, error) {
	if g.Finished() {
		return 0, ErrGameFinished
	}
	if g.CurrentLevel <= FirstLevel {
		return 0, ErrNothingToTake
	}
	g.finish(now, false, PrizeForLevel(g.PreviousLevel()))
	return g.Prize, nil
}
