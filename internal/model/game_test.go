package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestGame 构造一局带 15 道题的内存游戏，所有题目正确字母均为 b
func newTestGame(createdAt time.Time) *Game {
	g := &Game{
		BaseModel:    BaseModel{ID: 1, CreatedAt: createdAt},
		UserID:       1,
		CurrentLevel: FirstLevel,
	}
	for level := FirstLevel; level <= MaxLevel; level++ {
		g.GameQuestions = append(g.GameQuestions, GameQuestion{
			GameID: g.ID,
			Question: Question{
				Level:   level,
				Text:    "题目",
				Answer1: "正确",
				Answer2: "错误1",
				Answer3: "错误2",
				Answer4: "错误3",
			},
			A: 2, B: 1, C: 4, D: 3,
		})
	}
	return g
}

func finishedAt(g *Game, d time.Duration) {
	t := g.CreatedAt.Add(d)
	g.FinishedAt = &t
}

func TestGameStatus(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name  string
		setup func(g *Game)
		want  GameStatus
	}{
		{
			"未结束即进行中",
			func(g *Game) {},
			StatusInProgress,
		},
		{
			"失败且超时优先判定为超时",
			func(g *Game) {
				g.IsFailed = true
				finishedAt(g, TimeLimit+time.Minute)
			},
			StatusTimeout,
		},
		{
			"时限内失败",
			func(g *Game) {
				g.IsFailed = true
				finishedAt(g, 10*time.Minute)
			},
			StatusFail,
		},
		{
			"答完最后一题即获胜",
			func(g *Game) {
				g.CurrentLevel = MaxLevel + 1
				finishedAt(g, 30*time.Minute)
			},
			StatusWon,
		},
		{
			"中途提现",
			func(g *Game) {
				g.CurrentLevel = 5
				finishedAt(g, 10*time.Minute)
			},
			StatusMoney,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(now)
			tt.setup(g)
			assert.Equal(t, tt.want, g.Status())
		})
	}
}

func TestGameLevelNavigation(t *testing.T) {
	g := newTestGame(time.Now())

	// 开局：上一题不存在
	assert.Equal(t, -1, g.PreviousLevel())
	assert.Nil(t, g.PreviousGameQuestion())
	require.NotNil(t, g.CurrentGameQuestion())
	assert.Equal(t, FirstLevel, g.CurrentGameQuestion().Level())

	g.CurrentLevel = 5
	assert.Equal(t, 4, g.PreviousLevel())
	assert.Equal(t, 5, g.CurrentGameQuestion().Level())
	assert.Equal(t, 4, g.PreviousGameQuestion().Level())

	// 全部答完后不再有当前题目
	g.CurrentLevel = MaxLevel + 1
	assert.Nil(t, g.CurrentGameQuestion())
	assert.Equal(t, MaxLevel, g.PreviousGameQuestion().Level())
}

func TestAnswerCorrectContinuesGame(t *testing.T) {
	g := newTestGame(time.Now())

	correct, err := g.AnswerCurrentQuestion("b", time.Now())
	require.NoError(t, err)

	assert.True(t, correct)
	assert.Equal(t, 1, g.CurrentLevel)
	assert.Equal(t, 0, g.PreviousLevel())
	assert.False(t, g.Finished())
	assert.Equal(t, StatusInProgress, g.Status())
	assert.Equal(t, 0, g.Prize)
}

func TestAnswerFireproofLevelLocksPrize(t *testing.T) {
	g := newTestGame(time.Now())
	g.CurrentLevel = 4

	correct, err := g.AnswerCurrentQuestion("b", time.Now())
	require.NoError(t, err)

	assert.True(t, correct)
	assert.False(t, g.Finished())
	assert.Equal(t, Prizes[4], g.Prize)
}

func TestAnswerWrongFailsGame(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name      string
		level     int
		wantPrize int
	}{
		{"未过任何检查点", 3, 0},
		{"过了第一个检查点", 7, Prizes[4]},
		{"过了第二个检查点", 12, Prizes[9]},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(now)
			g.CurrentLevel = tt.level

			correct, err := g.AnswerCurrentQuestion("a", now)
			require.NoError(t, err)

			assert.False(t, correct)
			assert.True(t, g.Finished())
			assert.Equal(t, StatusFail, g.Status())
			assert.Equal(t, tt.wantPrize, g.Prize)
			// 答错不推进等级
			assert.Equal(t, tt.level, g.CurrentLevel)
		})
	}
}

func TestAnswerLastQuestionWinsMillion(t *testing.T) {
	g := newTestGame(time.Now())
	g.CurrentLevel = MaxLevel

	correct, err := g.AnswerCurrentQuestion("b", time.Now())
	require.NoError(t, err)

	assert.True(t, correct)
	assert.True(t, g.Finished())
	assert.Equal(t, StatusWon, g.Status())
	assert.Equal(t, MaxLevel+1, g.CurrentLevel)
	assert.Equal(t, 1000000, g.Prize)
	assert.False(t, g.IsFailed)
}

func TestAnswerAfterTimeLimit(t *testing.T) {
	created := time.Now().Add(-TimeLimit - time.Minute)
	g := newTestGame(created)
	g.CurrentLevel = 10

	// 即便字母正确，超时也判负
	correct, err := g.AnswerCurrentQuestion("b", time.Now())
	require.NoError(t, err)

	assert.False(t, correct)
	assert.True(t, g.Finished())
	assert.Equal(t, StatusTimeout, g.Status())
	assert.Equal(t, Prizes[9], g.Prize)
}

func TestAnswerFinishedGameRejected(t *testing.T) {
	g := newTestGame(time.Now())
	finishedAt(g, time.Minute)

	_, err := g.AnswerCurrentQuestion("b", time.Now())
	assert.ErrorIs(t, err, ErrGameFinished)
}

func TestTakeMoney(t *testing.T) {
	g := newTestGame(time.Now())
	g.CurrentLevel = 6

	prize, err := g.TakeMoney(time.Now())
	require.NoError(t, err)

	// 提现拿的是上一等级的全额奖金
	assert.Equal(t, Prizes[5], prize)
	assert.Equal(t, Prizes[5], g.Prize)
	assert.True(t, g.Finished())
	assert.False(t, g.IsFailed)
	assert.Equal(t, StatusMoney, g.Status())
}

func TestTakeMoneyBeforeFirstAnswer(t *testing.T) {
	g := newTestGame(time.Now())

	_, err := g.TakeMoney(time.Now())
	assert.ErrorIs(t, err, ErrNothingToTake)
	assert.False(t, g.Finished())
}

func TestTakeMoneyOnFinishedGame(t *testing.T) {
	g := newTestGame(time.Now())
	g.CurrentLevel = 6
	finishedAt(g, time.Minute)

	_, err := g.TakeMoney(time.Now())
	assert.ErrorIs(t, err, ErrGameFinished)
}

func TestFullGamePlaythrough(t *testing.T) {
	g := newTestGame(time.Now())

	for level := FirstLevel; level <= MaxLevel; level++ {
		correct, err := g.AnswerCurrentQuestion("b", time.Now())
		require.NoError(t, err)
		require.True(t, correct)
	}

	assert.Equal(t, StatusWon, g.Status())
	assert.Equal(t, 1000000, g.Prize)
}

func TestPrizeTable(t *testing.T) {
	require.Len(t, Prizes, MaxLevel+1)

	// 奖金严格递增
	for i := 1; i < len(Prizes); i++ {
		assert.Greater(t, Prizes[i], Prizes[i-1])
	}

	assert.Equal(t, 100, PrizeForLevel(0))
	assert.Equal(t, 1000000, PrizeForLevel(MaxLevel))
	assert.Equal(t, 0, PrizeForLevel(-1))
	assert.Equal(t, 0, PrizeForLevel(MaxLevel+1))
}

func TestFireproof(t *testing.T) {
	assert.True(t, IsFireproof(4))
	assert.True(t, IsFireproof(9))
	assert.True(t, IsFireproof(14))
	assert.False(t, IsFireproof(0))
	assert.False(t, IsFireproof(10))

	tests := []struct {
		answeredLevel int
		want          int
	}{
		{-1, 0},
		{3, 0},
		{4, Prizes[4]},
		{8, Prizes[4]},
		{9, Prizes[9]},
		{13, Prizes[9]},
		{14, Prizes[14]},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FireproofPrize(tt.answeredLevel))
	}
}
