package model

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 固定排列 a=2 b=1 c=4 d=3，正确字母为 b
func newTestGameQuestion() *GameQuestion {
	return &GameQuestion{
		Question: Question{
			Level:   7,
			Text:    "地球上最高的山峰是？",
			Answer1: "珠穆朗玛峰",
			Answer2: "乔戈里峰",
			Answer3: "干城章嘉峰",
			Answer4: "洛子峰",
		},
		A: 2,
		B: 1,
		C: 4,
		D: 3,
	}
}

func TestGameQuestionDelegates(t *testing.T) {
	gq := newTestGameQuestion()

	assert.Equal(t, "地球上最高的山峰是？", gq.Text())
	assert.Equal(t, 7, gq.Level())
}

func TestGameQuestionVariants(t *testing.T) {
	gq := newTestGameQuestion()

	v := gq.Variants()
	assert.Len(t, v, 4)
	assert.Equal(t, "乔戈里峰", v["a"])
	assert.Equal(t, "珠穆朗玛峰", v["b"])
	assert.Equal(t, "洛子峰", v["c"])
	assert.Equal(t, "干城章嘉峰", v["d"])
}

func TestGameQuestionCorrectAnswerKey(t *testing.T) {
	gq := newTestGameQuestion()

	assert.Equal(t, "b", gq.CorrectAnswerKey())
}

func TestGameQuestionAnswerCorrect(t *testing.T) {
	gq := newTestGameQuestion()

	tests := []struct {
		name string
		key  string
		want bool
	}{
		{"正确字母", "b", true},
		{"大写也算对", "B", true},
		{"带空白", " b ", true},
		{"错误字母", "a", false},
		{"未知输入算错", "wrong answer", false},
		{"空串算错", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, gq.AnswerCorrect(tt.key))
		})
	}
}

func TestGameQuestionHelpMapEmpty(t *testing.T) {
	gq := newTestGameQuestion()

	assert.Empty(t, gq.HelpMap())
	assert.False(t, gq.HelpUsed(HelpFiftyFifty))
}

func TestAddFiftyFifty(t *testing.T) {
	gq := newTestGameQuestion()
	r := rand.New(rand.NewSource(1))

	keep, err := gq.AddFiftyFifty(r)
	require.NoError(t, err)

	// 留下两个字母，必含正确字母
	assert.Len(t, keep, 2)
	assert.Contains(t, keep, "b")
	assert.True(t, gq.HelpUsed(HelpFiftyFifty))

	// 同一题不能使用第二次
	_, err = gq.AddFiftyFifty(r)
	assert.ErrorIs(t, err, ErrHelpAlreadyUsed)
}

func TestAddAudienceHelp(t *testing.T) {
	gq := newTestGameQuestion()
	r := rand.New(rand.NewSource(1))

	votes, err := gq.AddAudienceHelp(r)
	require.NoError(t, err)

	// 四个字母都有票数，总票数恰好 100
	assert.Len(t, votes, 4)
	total := 0
	for _, k := range AnswerKeys {
		v, ok := votes[k]
		assert.True(t, ok)
		assert.GreaterOrEqual(t, v, 0)
		total += v
	}
	assert.Equal(t, 100, total)

	// 正确选项至少拿到 35 票
	assert.GreaterOrEqual(t, votes["b"], 35)

	_, err = gq.AddAudienceHelp(r)
	assert.ErrorIs(t, err, ErrHelpAlreadyUsed)
}

func TestAddFriendCall(t *testing.T) {
	gq := newTestGameQuestion()
	r := rand.New(rand.NewSource(1))

	msg, err := gq.AddFriendCall(r)
	require.NoError(t, err)

	assert.Contains(t, msg, "believes the answer is option")
	// 朋友说出的必须是四个字母之一
	upper := strings.ToUpper(strings.Join(AnswerKeys, ""))
	assert.Contains(t, upper, msg[len(msg)-1:])
	assert.True(t, gq.HelpUsed(HelpFriendCall))

	_, err = gq.AddFriendCall(r)
	assert.ErrorIs(t, err, ErrHelpAlreadyUsed)
}

func TestHelpsAreIndependent(t *testing.T) {
	gq := newTestGameQuestion()
	r := rand.New(rand.NewSource(1))

	_, err := gq.AddFiftyFifty(r)
	require.NoError(t, err)
	_, err = gq.AddAudienceHelp(r)
	require.NoError(t, err)
	_, err = gq.AddFriendCall(r)
	require.NoError(t, err)

	m := gq.HelpMap()
	assert.Len(t, m, 3)
	assert.Contains(t, m, HelpFiftyFifty)
	assert.Contains(t, m, HelpAudience)
	assert.Contains(t, m, HelpFriendCall)
}
