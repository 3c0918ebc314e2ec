package repository

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"writeit-server/internal/domain"

	"github.com/go-kivik/kivik/v4"
)

var ErrNoteNotFound = errors.New("note not found")

type NoteRepository interface {
	Create(note *domain.Note) error
	FindByID(id string) (*domain.Note, error)
	ListByOwner(ownerID string) ([]*domain.Note, error)
	Delete(id string) error
}

type CouchDBNoteRepository struct {
	db *kivik.DB
}

type noteDoc struct {
	ID        string `json:"_id"`
	Rev       string `json:"_rev,omitempty"`
	DocType   string `json:"doc_type"`
	OwnerID   string `json:"ownerId"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
}

func NewNoteRepository(client *kivik.Client, dbName string) *CouchDBNoteRepository {
	return &CouchDBNoteRepository{
		db: client.DB(dbName),
	}
}

func (r *CouchDBNoteRepository) Create(note *domain.Note) error {
	doc := noteDoc{
		ID:        docID("note", note.ID),
		DocType:   "note",
		OwnerID:   note.OwnerID,
		Title:     note.Title,
		Content:   note.Content,
		CreatedAt: note.CreatedAt.Format(time.RFC3339Nano),
	}

	_, err := r.db.Put(context.Background(), doc.ID, doc)
	if err != nil {
		return fmt.Errorf("failed to create note: %w", err)
	}

	return nil
}

func (r *CouchDBNoteRepository) FindByID(id string) (*domain.Note, error) {
	row := r.db.Get(context.Background(), docID("note", id))

	var doc noteDoc
	if err := row.ScanDoc(&doc); err != nil {
		if kivik.HTTPStatus(err) == http.StatusNotFound {
			return nil, ErrNoteNotFound
		}
		return nil, fmt.Errorf("failed to get note: %w", err)
	}

	return docToNote(&doc)
}

func (r *CouchDBNoteRepository) ListByOwner(ownerID string) ([]*domain.Note, error) {
	query := map[string]interface{}{
		"selector": map[string]interface{}{
			"doc_type": "note",
			"ownerId":  ownerID,
		},
	}

	rows := r.db.Find(context.Background(), query)
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to query notes: %w", err)
	}
	defer rows.Close()

	var notes []*domain.Note
	for rows.Next() {
		var doc noteDoc
		if err := rows.ScanDoc(&doc); err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}

		note, err := docToNote(&doc)
		if err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}

	return notes, nil
}

// Delete removes the note document entirely. Listing never sees a deleted
// note because membership is derived from ownerId, not tracked elsewhere.
func (r *CouchDBNoteRepository) Delete(id string) error {
	did := docID("note", id)

	row := r.db.Get(context.Background(), did)
	var doc noteDoc
	if err := row.ScanDoc(&doc); err != nil {
		if kivik.HTTPStatus(err) == http.StatusNotFound {
			return ErrNoteNotFound
		}
		return fmt.Errorf("failed to get note for delete: %w", err)
	}

	if _, err := r.db.Delete(context.Background(), did, doc.Rev); err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}

	return nil
}

func docToNote(doc *noteDoc) (*domain.Note, error) {
	createdAt, err := parseTime(doc.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse createdAt: %w", err)
	}

	return &domain.Note{
		ID:        entityID(doc.ID),
		OwnerID:   doc.OwnerID,
		Title:     doc.Title,
		Content:   doc.Content,
		CreatedAt: createdAt,
	}, nil
}

func docID(docType, id string) string {
	return docType + ":" + id
}

// entityID strips the doc type prefix from a CouchDB document id.
func entityID(docID string) string {
	if i := strings.IndexByte(docID, ':'); i >= 0 {
		return docID[i+1:]
	}
	return docID
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}
