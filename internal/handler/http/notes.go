package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var note models.Note
	if err := json.NewDecoder(r.Body).Decode(&note); err != nil {
		log.Err(err).Str("func", "*Handler.createNote").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	note.UserID = userID

	createdNote, err := h.services.NoteService.CreateNote(ctx, note)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createNote").Msg("error creating note")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, createdNote, http.StatusCreated)
}

func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	noteID, err := noteIDFromRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}

	note, err := h.services.NoteService.GetNote(ctx, userID, noteID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getNote").Int64("note_id", noteID).Msg("error getting note")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	filter, err := noteFilterFromQuery(r)
	if err != nil {
		writeError(w, err)
		return
	}

	notes, err := h.services.NoteService.ListNotes(ctx, userID, filter)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listNotes").Msg("error listing notes")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.NoteListResponse{Notes: notes, Length: len(notes)}, http.StatusOK)
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	noteID, err := noteIDFromRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var note models.Note
	if err := json.NewDecoder(r.Body).Decode(&note); err != nil {
		log.Err(err).Str("func", "*Handler.updateNote").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	// Identity always comes from the URL and the token, never from the body.
	note.NoteID = noteID
	note.UserID = userID

	updatedNote, err := h.services.NoteService.UpdateNote(ctx, note)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateNote").Int64("note_id", noteID).Msg("error updating note")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, updatedNote, http.StatusOK)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	noteID, err := noteIDFromRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.services.NoteService.DeleteNote(ctx, userID, noteID); err != nil {
		log.Err(err).Str("func", "*Handler.deleteNote").Int64("note_id", noteID).Msg("error deleting note")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// noteIDFromRequest extracts and validates the {id} URL parameter.
func noteIDFromRequest(r *http.Request) (int64, error) {
	noteID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || noteID <= 0 {
		return 0, ErrInvalidNoteID
	}
	return noteID, nil
}

// noteFilterFromQuery builds a listing filter from the optional query
// parameters "search", "pinned", and "limit".
func noteFilterFromQuery(r *http.Request) (models.NoteFilter, error) {
	query := r.URL.Query()

	filter := models.NoteFilter{
		Search: query.Get("search"),
	}

	if pinned := query.Get("pinned"); pinned != "" {
		pinnedOnly, err := strconv.ParseBool(pinned)
		if err != nil {
			return models.NoteFilter{}, ErrInvalidQueryParam
		}
		filter.PinnedOnly = pinnedOnly
	}

	if limit := query.Get("limit"); limit != "" {
		parsedLimit, err := strconv.ParseUint(limit, 10, 64)
		if err != nil {
			return models.NoteFilter{}, ErrInvalidQueryParam
		}
		filter.Limit = parsedLimit
	}

	return filter, nil
}
