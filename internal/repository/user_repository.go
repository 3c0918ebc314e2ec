package repository

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"writeit-server/internal/domain"

	"github.com/go-kivik/kivik/v4"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("user already exists")
)

type UserRepository interface {
	Create(user *domain.User) error
	FindByID(id string) (*domain.User, error)
	FindByEmail(email string) (*domain.User, error)
	EmailExists(email string) (bool, error)
}

type CouchDBUserRepository struct {
	db *kivik.DB
}

type userDoc struct {
	ID           string `json:"_id"`
	Rev          string `json:"_rev,omitempty"`
	DocType      string `json:"doc_type"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
	CreatedAt    string `json:"createdAt"`
}

func NewUserRepository(client *kivik.Client, dbName string) *CouchDBUserRepository {
	return &CouchDBUserRepository{
		db: client.DB(dbName),
	}
}

func (r *CouchDBUserRepository) Create(user *domain.User) error {
	doc := userDoc{
		ID:           docID("user", user.ID),
		DocType:      "user",
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt.Format(time.RFC3339Nano),
	}

	_, err := r.db.Put(context.Background(), doc.ID, doc)
	if err != nil {
		if kivik.HTTPStatus(err) == http.StatusConflict {
			return ErrUserExists
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (r *CouchDBUserRepository) FindByID(id string) (*domain.User, error) {
	row := r.db.Get(context.Background(), docID("user", id))

	var doc userDoc
	if err := row.ScanDoc(&doc); err != nil {
		if kivik.HTTPStatus(err) == http.StatusNotFound {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return docToUser(&doc)
}

func (r *CouchDBUserRepository) FindByEmail(email string) (*domain.User, error) {
	query := map[string]interface{}{
		"selector": map[string]interface{}{
			"doc_type": "user",
			"email":    email,
		},
		"limit": 1,
	}

	rows := r.db.Find(context.Background(), query)
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to query user by email: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, ErrUserNotFound
	}

	var doc userDoc
	if err := rows.ScanDoc(&doc); err != nil {
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}

	return docToUser(&doc)
}

func (r *CouchDBUserRepository) EmailExists(email string) (bool, error) {
	_, err := r.FindByEmail(email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func docToUser(doc *userDoc) (*domain.User, error) {
	createdAt, err := parseTime(doc.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse createdAt: %w", err)
	}

	return &domain.User{
		ID:           entityID(doc.ID),
		FirstName:    doc.FirstName,
		LastName:     doc.LastName,
		Email:        doc.Email,
		PasswordHash: doc.PasswordHash,
		CreatedAt:    createdAt,
	}, nil
}
