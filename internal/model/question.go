package model

// 题库中的题目。Answer1 固定为正确答案，展示顺序由 GameQuestion 的字母映射决定。
// swagger:model Question
type Question struct {
	BaseModel

	Level   int    `gorm:"index;not null" json:"level"` // 难度 0..14
	Text    string `gorm:"type:text;not null" json:"text"`
	Answer1 string `gorm:"size:255;not null" json:"answer1"`
	Answer2 string `gorm:"size:255;not null" json:"answer2"`
	Answer3 string `gorm:"size:255;not null" json:"answer3"`
	Answer4 string `gorm:"size:255;not null" json:"answer4"`
}

func (Question) TableName() string {
	return "questions"
}

// Answer 按存储槽位（1..4）取答案文本
func (q *Question) Answer(slot int) string {
	switch slot {
	case 1:
		return q.Answer1
	case 2:
		return q.Answer2
	case 3:
		return q.Answer3
	case 4:
		return q.Answer4
	}
	return ""
}
