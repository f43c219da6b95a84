package service

import (
	"encoding/json"
	"time"

	"millionaire_backend/internal/model"
)

// QuestionView 展示给玩家的当前题目。只给出字母到文本的映射，
// 不暴露正确槽位。
type QuestionView struct {
	Level    int                        `json:"level"`
	Text     string                     `json:"text"`
	Variants map[string]string          `json:"variants"`
	Help     map[string]json.RawMessage `json:"help,omitempty"`
}

// GameView 游戏的对外视图，status 为实时推导值
// swagger:model GameView
type GameView struct {
	ID           uint             `json:"id"`
	Status       model.GameStatus `json:"status"`
	CurrentLevel int              `json:"currentLevel"`
	Prize        int              `json:"prize"`
	CreatedAt    time.Time        `json:"createdAt"`
	FinishedAt   *time.Time       `json:"finishedAt,omitempty"`
	Question     *QuestionView    `json:"question,omitempty"`
}

func NewGameView(g *model.Game) GameView {
	view := GameView{
		ID:           g.ID,
		Status:       g.Status(),
		CurrentLevel: g.CurrentLevel,
		Prize:        g.Prize,
		CreatedAt:    g.CreatedAt,
		FinishedAt:   g.FinishedAt,
	}

	if !g.Finished() {
		if gq := g.CurrentGameQuestion(); gq != nil {
			view.Question = &QuestionView{
				Level:    gq.Level(),
				Text:     gq.Text(),
				Variants: gq.Variants(),
				Help:     gq.HelpMap(),
			}
		}
	}
	return view
}
