package game

import (
	"time"

	"xiangqi/internal/xiangqi"
)

type GameState struct {
	ID        string
	Session   *xiangqi.Session
	CreatedAt time.Time
	UpdatedAt time.Time
}
