package domain

import "time"

type User struct {
	ID           ID
	Name         string
	Email        string
	PasswordHash string
	IsBlocked    bool
	CreatedAt    time.Time
}

func NewUser(name, email, passwordHash string) *User {
	return &User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
}

type UserBlockToggledEvent struct {
	UserID    ID        `json:"user_id"`
	Blocked   bool      `json:"blocked"`
	ToggledAt time.Time `json:"toggled_at"`
}

func (e *UserBlockToggledEvent) GetName() string {
	return "user.block_toggled"
}

func (e *UserBlockToggledEvent) GetEntityName() string {
	return "user"
}

func NewUserBlockToggledEvent(userID ID, blocked bool, toggledAt time.Time) *UserBlockToggledEvent {
	return &UserBlockToggledEvent{UserID: userID, Blocked: blocked, ToggledAt: toggledAt}
}
