package service

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"writeit-server/internal/domain"
	"writeit-server/internal/repository"

	"github.com/google/uuid"
)

type NoteService struct {
	noteRepo repository.NoteRepository
	userRepo repository.UserRepository
}

func NewNoteService(noteRepo repository.NoteRepository, userRepo repository.UserRepository) *NoteService {
	return &NoteService{
		noteRepo: noteRepo,
		userRepo: userRepo,
	}
}

func (s *NoteService) Add(userID string, req *domain.AddNoteRequest) (*domain.Note, error) {
	if err := s.resolveUser(userID); err != nil {
		return nil, err
	}

	note := &domain.Note{
		ID:        uuid.New().String(),
		OwnerID:   userID,
		Title:     req.Title,
		Content:   req.Content,
		CreatedAt: time.Now(),
	}

	if err := s.noteRepo.Create(note); err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	return note, nil
}

func (s *NoteService) Delete(userID, noteID string) error {
	if err := s.resolveUser(userID); err != nil {
		return err
	}

	note, err := s.noteRepo.FindByID(noteID)
	if err != nil {
		if errors.Is(err, repository.ErrNoteNotFound) {
			return ErrNoteNotFound
		}
		return fmt.Errorf("failed to look up note: %w", err)
	}

	if note.OwnerID != userID {
		return ErrNotNoteOwner
	}

	if err := s.noteRepo.Delete(noteID); err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}

	return nil
}

// List returns the user's notes oldest first, matching insertion order.
func (s *NoteService) List(userID string) ([]*domain.Note, error) {
	if err := s.resolveUser(userID); err != nil {
		return nil, err
	}

	notes, err := s.noteRepo.ListByOwner(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}

	sort.Slice(notes, func(i, j int) bool {
		if notes[i].CreatedAt.Equal(notes[j].CreatedAt) {
			return notes[i].ID < notes[j].ID
		}
		return notes[i].CreatedAt.Before(notes[j].CreatedAt)
	})

	if notes == nil {
		notes = []*domain.Note{}
	}

	return notes, nil
}

func (s *NoteService) resolveUser(userID string) error {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to look up user: %w", err)
	}
	return nil
}
