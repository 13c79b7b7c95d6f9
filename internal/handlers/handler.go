package handlers

import (
	"log/slog"

	"gonotes/internal/config"
	"gonotes/internal/repository"

	"gorm.io/gorm"
)

type Handler struct {
	cfg    config.Config
	logger *slog.Logger
	db     *gorm.DB
	users  *repository.UserRepository
	notes  *repository.NoteRepository
}

func NewHandler(
	cfg config.Config,
	logger *slog.Logger,
	db *gorm.DB,
	users *repository.UserRepository,
	notes *repository.NoteRepository,
) *Handler {
	return &Handler{
		cfg:    cfg,
		logger: logger,
		db:     db,
		users:  users,
		notes:  notes,
	}
}
