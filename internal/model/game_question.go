package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"strings"
)

// 展示给玩家的字母
var AnswerKeys = []string{"a", "b", "c", "d"}

// help_hash 的键，每题每种提示最多使用一次
const (
	HelpFiftyFifty = "fifty_fifty"
	HelpAudience   = "audience_help"
	HelpFriendCall = "friend_call"
)

var ErrHelpAlreadyUsed = errors.New("help already used on this question")

// GameQuestion 把一道题和本局游戏内固定的答案乱序绑定在一起
// swagger:model GameQuestion
type GameQuestion struct {
	BaseModel

	GameID     uint     `gorm:"index;type:bigint unsigned" json:"gameId"`
	QuestionID uint     `gorm:"index;type:bigint unsigned" json:"-"`
	Question   Question `gorm:"foreignKey:QuestionID" json:"-"`

	// 字母到存储槽位（1..4）的映射，{1,2,3,4} 的一个排列，创建后不可变。
	// 恰好有一个字段等于 1（正确槽位）。
	A int `gorm:"not null" json:"-"`
	B int `gorm:"not null" json:"-"`
	C int `gorm:"not null" json:"-"`
	D int `gorm:"not null" json:"-"`

	// 已使用提示的结果，JSON 对象，键只增不改
	HelpHash string `gorm:"type:json" json:"helpHash"`
}

func (GameQuestion) TableName() string {
	return "game_questions"
}

// Text 委托到题目文本
func (gq *GameQuestion) Text() string {
	return gq.Question.Text
}

// Level 委托到题目难度
func (gq *GameQuestion) Level() int {
	return gq.Question.Level
}

func (gq *GameQuestion) slot(key string) int {
	switch key {
	case "a":
		return gq.A
	case "b":
		return gq.B
	case "c":
		return gq.C
	case "d":
		return gq.D
	}
	return 0
}

// Variants 返回字母到答案文本的映射
func (gq *GameQuestion) Variants() map[string]string {
	v := make(map[string]string, len(AnswerKeys))
	for _, k := range AnswerKeys {
		v[k] = gq.Question.Answer(gq.slot(k))
	}
	return v
}

// CorrectAnswerKey 返回指向槽位 1 的字母
func (gq *GameQuestion) CorrectAnswerKey() string {
	for _, k := range AnswerKeys {
		if gq.slot(k) == 1 {
			return k
		}
	}
	// 排列不变式保证不会走到这里
	return ""
}

// AnswerCorrect 判断玩家提交的字母是否正确，未知字母一律算错
func (gq *GameQuestion) AnswerCorrect(key string) bool {
	return strings.ToLower(strings.TrimSpace(key)) == gq.CorrectAnswerKey()
}

// HelpMap 解码 help_hash，空串视为空映射
func (gq *GameQuestion) HelpMap() map[string]json.RawMessage {
	m := make(map[string]json.RawMessage)
	if gq.HelpHash != "" {
		json.Unmarshal([]byte(gq.HelpHash), &m)
	}
	return m
}

// HelpUsed 判断某种提示是否已经用过
func (gq *GameQuestion) HelpUsed(kind string) bool {
	_, ok := gq.HelpMap()[kind]
	return ok
}

func (gq *GameQuestion) putHelp(kind string, value interface{}) error {
	m := gq.HelpMap()
	if _, ok := m[kind]; ok {
		return ErrHelpAlreadyUsed
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m[kind] = raw
	buf, err := json.Marshal(m)
	if err != nil {
		return err
	}
	gq.HelpHash = string(buf)
	return nil
}

// AddFiftyFifty 留下正确字母和一个随机错误字母
func (gq *GameQuestion) AddFiftyFifty(r *rand.Rand) ([]string, error) {
	correct := gq.CorrectAnswerKey()
	wrong := wrongKeys(correct)
	keep := []string{correct, wrong[r.Intn(len(wrong))]}
	sort.Strings(keep)
	if err := gq.putHelp(HelpFiftyFifty, keep); err != nil {
		return nil, err
	}
	return keep, nil
}

// AddAudienceHelp 模拟 100 名观众投票，正确选项拿到更高的份额
func (gq *GameQuestion) AddAudienceHelp(r *rand.Rand) (map[string]int, error) {
	correct := gq.CorrectAnswerKey()
	votes := make(map[string]int, len(AnswerKeys))
	remaining := 100

	votes[correct] = 35 + r.Intn(40)
	remaining -= votes[correct]

	wrong := wrongKeys(correct)
	for i, k := range wrong {
		if i == len(wrong)-1 {
			votes[k] = remaining
			break
		}
		v := r.Intn(remaining + 1)
		votes[k] = v
		remaining -= v
	}

	if err := gq.putHelp(HelpAudience, votes); err != nil {
		return nil, err
	}
	return votes, nil
}

var friendNames = []string{"Alex", "Maria", "Victor", "Sophia", "Boris", "Elena"}

// AddFriendCall 朋友以 80% 的概率说出正确选项
func (gq *GameQuestion) AddFriendCall(r *rand.Rand) (string, error) {
	key := gq.CorrectAnswerKey()
	if r.Intn(100) >= 80 {
		wrong := wrongKeys(key)
		key = wrong[r.Intn(len(wrong))]
	}

	name := friendNames[r.Intn(len(friendNames))]
	msg := fmt.Sprintf("%s believes the answer is option %s", name, strings.ToUpper(key))
	if err := gq.putHelp(HelpFriendCall, msg); err != nil {
		return "", err
	}
	return msg, nil
}

func wrongKeys(correct string) []string {
	keys := make([]string, 0, len(AnswerKeys)-1)
	for _, k := range AnswerKeys {
		if k != correct {
			keys = append(keys, k)
		}
	}
	return keys
}
