package model

// 奖金阶梯，下标即难度等级
var Prizes = []int{
	100, 200, 300, 500, 1000,
	2000, 4000, 8000, 16000, 32000,
	64000, 125000, 250000, 500000, 1000000,
}

// 不可燃等级：答错后该等级对应的奖金仍然保底
var FireproofLevels = []int{4, 9, 14}

// PrizeForLevel 返回答对该等级时的全额奖金，等级越界返回 0
func PrizeForLevel(level int) int {
	if level < 0 || level >= len(Prizes) {
		return 0
	}
	return Prizes[level]
}

// IsFireproof 判断该等级是否为保底检查点
func IsFireproof(level int) bool {
	for _, l := range FireproofLevels {
		if l == level {
			return true
		}
	}
	return false
}

// FireproofPrize 返回已答到 answeredLevel 时的保底奖金：
// 取不超过该等级的最高保底检查点的奖金，没有则为 0
func FireproofPrize(answeredLevel int) int {
	prize := 0
	for _, l := range FireproofLevels {
		if l <= answeredLevel {
			prize = Prizes[l]
		}
	}
	return prize
}
