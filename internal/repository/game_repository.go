package repository

import (
	"millionaire_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GameRepository struct {
	DB *gorm.DB
}

func NewGameRepository(db *gorm.DB) *GameRepository {
	return &GameRepository{DB: db}
}

// FindByID 加载整局游戏。GameQuestion 在创建时按难度 0..14 顺序写入，
// 因此按主键升序预加载即可保持等级顺序。
func (r *GameRepository) FindByID(id uint) (*model.Game, error) {
	var game model.Game
	err := r.DB.
		Preload("GameQuestions", func(db *gorm.DB) *gorm.DB {
			return db.Order("game_questions.id ASC")
		}).
		Preload("GameQuestions.Question").
		First(&game, id).Error
	return &game, err
}

func (r *GameRepository) ListByUser(userID uint, page, limit int) ([]model.Game, int64, error) {
	var games []model.Game
	var total int64

	query := r.DB.Model(&model.Game{}).Where("user_id = ?", userID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&games).Error
	return games, total, err
}

// FindActiveByUser 查找玩家未结束的一局，没有则返回 gorm.ErrRecordNotFound
func (r *GameRepository) FindActiveByUser(userID uint) (*model.Game, error) {
	var game model.Game
	err := r.DB.Where("user_id = ? AND finished_at IS NULL", userID).First(&game).Error
	return &game, err
}

func (r *GameRepository) Save(game *model.Game) error {
	return r.SaveTx(r.DB, game)
}

// SaveTx 只保存游戏本身的字段，预加载的关联不回写
func (r *GameRepository) SaveTx(tx *gorm.DB, game *model.Game) error {
	return tx.Omit(clause.Associations).Save(game).Error
}

func (r *GameRepository) SaveGameQuestion(gq *model.GameQuestion) error {
	return r.DB.Omit(clause.Associations).Save(gq).Error
}
