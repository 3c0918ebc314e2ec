package handler

import (
	"encoding/json"
	"net/http"

	"writeit-server/internal/domain"
	"writeit-server/internal/middleware"
	"writeit-server/internal/service"
	"writeit-server/pkg/response"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

type NoteHandler struct {
	notes    *service.NoteService
	validate *validator.Validate
}

func NewNoteHandler(notes *service.NoteService) *NoteHandler {
	return &NoteHandler{
		notes:    notes,
		validate: validator.New(),
	}
}

type addNoteResponse struct {
	Success bool         `json:"success"`
	Note    *domain.Note `json:"note"`
	Message string       `json:"message"`
}

func (h *NoteHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req domain.AddNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	if req.UserID != middleware.GetUserID(r) {
		response.Forbidden(w, "Token does not match userId")
		return
	}

	note, err := h.notes.Add(req.UserID, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.OK(w, addNoteResponse{
		Success: true,
		Note:    note,
		Message: "Note successfully added!",
	})
}

type deleteNoteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["userId"]
	noteID := vars["noteId"]
	if userID == "" || noteID == "" {
		response.BadRequest(w, "userId and noteId are required")
		return
	}

	if userID != middleware.GetUserID(r) {
		response.Forbidden(w, "Token does not match userId")
		return
	}

	if err := h.notes.Delete(userID, noteID); err != nil {
		writeServiceError(w, err)
		return
	}

	response.OK(w, deleteNoteResponse{
		Success: true,
		Message: "Note successfully deleted!",
	})
}

// List writes the bare array of notes, matching the published contract of
// the getUserNotes endpoint.
func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["userId"]
	if userID == "" {
		response.BadRequest(w, "userId is required")
		return
	}

	if userID != middleware.GetUserID(r) {
		response.Forbidden(w, "Token does not match userId")
		return
	}

	notes, err := h.notes.List(userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.OK(w, notes)
}
