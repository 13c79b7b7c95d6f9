package repository

import (
	"errors"

	"gonotes/internal/models"

	"gorm.io/gorm"
)

type NoteRepository struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

func (r *NoteRepository) Create(owner, title, content string) (*models.Note, error) {
	note := models.Note{
		Title:   title,
		Content: content,
		Owner:   owner,
	}
	if err := r.db.Create(&note).Error; err != nil {
		return nil, err
	}
	return &note, nil
}

func (r *NoteRepository) GetByID(id uint) (*models.Note, error) {
	var note models.Note
	if err := r.db.First(&note, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &note, nil
}

func (r *NoteRepository) Update(id uint, title, content string) (*models.Note, error) {
	note, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}

	note.Title = title
	note.Content = content
	if err := r.db.Save(note).Error; err != nil {
		return nil, err
	}
	return note, nil
}

func (r *NoteRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Note{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *NoteRepository) ListByOwner(owner string) ([]models.Note, error) {
	var notes []models.Note
	if err := r.db.Where("owner = ?", owner).Order("created_at desc").Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}
