package util

import "errors"

var (
	ErrUserNotFound     = errors.New("用户不存在")
	ErrEmailRegistered  = errors.New("该邮箱已被注册")
	ErrPermissionDenied = errors.New("permission denied")
	ErrGameNotFound     = errors.New("game not found")
	ErrQuestionNotFound = errors.New("question not found")
	ErrQuestionShortage = errors.New("not enough questions to build a game")
	ErrUnknownHelpKind  = errors.New("unknown help kind")
	ErrActiveGameExists = errors.New("user already has a game in progress")
)
