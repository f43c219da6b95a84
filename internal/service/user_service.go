package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"millionaire_backend/internal/model"
	"millionaire_backend/internal/repository"

	"github.com/go-redis/redis/v8"
)

// LeaderboardEntry 排行榜条目
// swagger:model LeaderboardEntry
type LeaderboardEntry struct {
	Name    string `json:"name"`
	Balance int    `json:"balance"`
	Avatar  string `json:"avatar,omitempty"`
}

// UserService 处理玩家资料和排行榜
type UserService struct {
	UserRepo *repository.UserRepository
	Redis    *redis.Client
}

func NewUserService(userRepo *repository.UserRepository, rdb *redis.Client) *UserService {
	return &UserService{
		UserRepo: userRepo,
		Redis:    rdb,
	}
}

func (s *UserService) GetUserByID(id uint) (*model.User, error) {
	return s.UserRepo.FindByID(id)
}

func (s *UserService) UpdateProfile(userID uint, name, avatar string) (*model.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	if name != "" {
		user.Name = name
	}
	if avatar != "" {
		user.Avatar = avatar
	}

	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

const leaderboardCacheTTL = time.Minute

// Leaderboard 按累计奖金排序的玩家榜，结果短暂缓存在 Redis
func (s *UserService) Leaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	cacheKey := fmt.Sprintf("leaderboard:top:%d", limit)

	if s.Redis != nil {
		if raw, err := s.Redis.Get(ctx, cacheKey).Result(); err == nil {
			var entries []LeaderboardEntry
			if json.Unmarshal([]byte(raw), &entries) == nil {
				return entries, nil
			}
		}
	}

	users, err := s.UserRepo.FindTopByBalance(limit)
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(users))
	for _, u := range users {
		entries = append(entries, LeaderboardEntry{
			Name:    u.Name,
			Balance: u.Balance,
			Avatar:  u.Avatar,
		})
	}

	if s.Redis != nil {
		if raw, err := json.Marshal(entries); err == nil {
			s.Redis.Set(ctx, cacheKey, raw, leaderboardCacheTTL)
		}
	}

	return entries, nil
}
