package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/rohits-web03/notedrop/internal/api/middleware"
	"github.com/rohits-web03/notedrop/internal/services"
	"github.com/rohits-web03/notedrop/internal/utils"
)

type NoteHandler struct {
	notes *services.NoteService
}

func NewNoteHandler(notes *services.NoteService) *NoteHandler {
	return &NoteHandler{notes: notes}
}

// Collection dispatches GET (list) and POST (create) on /api/notes.
func (h *NoteHandler) Collection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.create(w, r)
	default:
		utils.JSONResponse(w, http.StatusMethodNotAllowed, utils.Payload{
			Success: false,
			Message: "Method not allowed",
		})
	}
}

// list godoc
// @Summary List the authenticated user's notes
// @Description Non-deleted notes, most recently updated first
// @Tags Notes
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.Payload
// @Router /api/notes [get]
func (h *NoteHandler) list(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		utils.JSONResponse(w, http.StatusUnauthorized, utils.Payload{
			Success: false,
			Message: "Unauthorized",
		})
		return
	}

	notes, err := h.notes.List(r.Context(), userID)
	if err != nil {
		serviceError(w, err)
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Data:    notes,
		Count:   utils.Count(len(notes)),
	})
}

// create godoc
// @Summary Create a note
// @Tags Notes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 201 {object} utils.Payload
// @Failure 400 {object} utils.Payload
// @Router /api/notes [post]
func (h *NoteHandler) create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		utils.JSONResponse(w, http.StatusUnauthorized, utils.Payload{
			Success: false,
			Message: "Unauthorized",
		})
		return
	}

	var input struct {
		Title   string `json:"title" validate:"required,max=255"`
		Content string `json:"content"`
	}

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Invalid input",
		})
		return
	}
	if err := utils.ValidateStruct(input); err != nil {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	note, err := h.notes.Create(r.Context(), userID, services.NoteInput{
		Title:   input.Title,
		Content: input.Content,
	})
	if err != nil {
		serviceError(w, err)
		return
	}

	utils.JSONResponse(w, http.StatusCreated, utils.Payload{
		Success: true,
		Message: "Note created successfully",
		Data:    note,
	})
}

// Search godoc
// @Summary Search the authenticated user's notes
// @Description Case-insensitive substring match over title or content
// @Tags Notes
// @Produce json
// @Security BearerAuth
// @Param q query string true "Search text"
// @Success 200 {object} utils.Payload
// @Router /api/notes/search [get]
func (h *NoteHandler) Search(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.JSONResponse(w, http.StatusMethodNotAllowed, utils.Payload{
			Success: false,
			Message: "Method not allowed",
		})
		return
	}

	userID, ok := middleware.UserID(r.Context())
	if !ok {
		utils.JSONResponse(w, http.StatusUnauthorized, utils.Payload{
			Success: false,
			Message: "Unauthorized",
		})
		return
	}

	notes, err := h.notes.Search(r.Context(), userID, r.URL.Query().Get("q"))
	if err != nil {
		serviceError(w, err)
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Data:    notes,
		Count:   utils.Count(len(notes)),
	})
}

// ByID dispatches GET, PUT and DELETE on /api/notes/{id}.
func (h *NoteHandler) ByID(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		utils.JSONResponse(w, http.StatusUnauthorized, utils.Payload{
			Success: false,
			Message: "Unauthorized",
		})
		return
	}

	noteID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Invalid note ID",
		})
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.get(w, r, noteID, userID)
	case http.MethodPut:
		h.update(w, r, noteID, userID)
	case http.MethodDelete:
		h.delete(w, r, noteID, userID)
	default:
		utils.JSONResponse(w, http.StatusMethodNotAllowed, utils.Payload{
			Success: false,
			Message: "Method not allowed",
		})
	}
}

func (h *NoteHandler) get(w http.ResponseWriter, r *http.Request, noteID, userID uuid.UUID) {
	note, err := h.notes.GetByID(r.Context(), noteID, userID)
	if err != nil {
		serviceError(w, err)
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Data:    note,
	})
}

func (h *NoteHandler) update(w http.ResponseWriter, r *http.Request, noteID, userID uuid.UUID) {
	var input struct {
		Title   *string `json:"title" validate:"omitempty,min=1,max=255"`
		Content *string `json:"content"`
	}

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Invalid input",
		})
		return
	}
	if err := utils.ValidateStruct(input); err != nil {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	note, err := h.notes.Update(r.Context(), noteID, userID, services.NoteUpdate{
		Title:   input.Title,
		Content: input.Content,
	})
	if err != nil {
		serviceError(w, err)
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Note updated successfully",
		Data:    note,
	})
}

func (h *NoteHandler) delete(w http.ResponseWriter, r *http.Request, noteID, userID uuid.UUID) {
	if err := h.notes.Delete(r.Context(), noteID, userID); err != nil {
		serviceError(w, err)
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Note deleted successfully",
	})
}
