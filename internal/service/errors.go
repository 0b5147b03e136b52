package service

import "errors"

var (
	ErrProfileNotFound     = errors.New("profile not found")
	ErrWordNotFound        = errors.New("word not found")
	ErrEmptyPool           = errors.New("no words or sentences match the filter")
	ErrSessionActive       = errors.New("another game session is active")
	ErrNoActiveSession     = errors.New("no active game session")
	ErrRoundPending        = errors.New("next round is not shown yet")
	ErrInvalidLanguage     = errors.New("unsupported language")
	ErrInvalidLanguagePair = errors.New("native and target languages must differ")
	ErrInvalidLevel        = errors.New("invalid level")
	ErrInvalidRoundCount   = errors.New("invalid sentence round count")
	ErrInvalidSection      = errors.New("invalid word list section")
)
