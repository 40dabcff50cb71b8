package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/snesterov/ciphervault/internal/app"
	"github.com/snesterov/ciphervault/internal/logger"
	"github.com/snesterov/ciphervault/internal/service"
	"github.com/snesterov/ciphervault/internal/store"
	"github.com/snesterov/ciphervault/internal/utils"
	"github.com/snesterov/ciphervault/models"
)

func (h *Handler) saveItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := utils.UserIDFromContext(ctx)
	if err != nil {
		log.Err(err).Msg("no user id in context")
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var item models.VaultItem
	if err = json.NewDecoder(r.Body).Decode(&item); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	saved, err := h.services.Vault.SaveItem(ctx, userID, item)
	if err != nil {
		h.writeVaultError(w, r, err, "error saving vault item")
		return
	}

	writeJSON(w, saved, http.StatusCreated)
}

func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := utils.UserIDFromContext(ctx)
	if err != nil {
		log.Err(err).Msg("no user id in context")
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	item, err := h.services.Vault.GetItem(ctx, userID, chi.URLParam(r, "clientSideID"))
	if err != nil {
		h.writeVaultError(w, r, err, "error fetching vault item")
		return
	}

	writeJSON(w, item, http.StatusOK)
}

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := utils.UserIDFromContext(ctx)
	if err != nil {
		log.Err(err).Msg("no user id in context")
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	filters := models.ListFilters{
		Type:       models.ItemType(r.URL.Query().Get("type")),
		NamePrefix: r.URL.Query().Get("name_prefix"),
	}

	items, err := h.services.Vault.ListItems(ctx, userID, filters)
	if err != nil {
		h.writeVaultError(w, r, err, "error listing vault items")
		return
	}
	if items == nil {
		items = []models.VaultItem{}
	}

	writeJSON(w, items, http.StatusOK)
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := utils.UserIDFromContext(ctx)
	if err != nil {
		log.Err(err).Msg("no user id in context")
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var item models.VaultItem
	if err = json.NewDecoder(r.Body).Decode(&item); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}
	// The path, not the body, names the item.
	item.ClientSideID = chi.URLParam(r, "clientSideID")

	updated, err := h.services.Vault.UpdateItem(ctx, userID, item)
	if err != nil {
		h.writeVaultError(w, r, err, "error updating vault item")
		return
	}

	writeJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := utils.UserIDFromContext(ctx)
	if err != nil {
		log.Err(err).Msg("no user id in context")
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	if err = h.services.Vault.DeleteItem(ctx, userID, chi.URLParam(r, "clientSideID")); err != nil {
		h.writeVaultError(w, r, err, "error deleting vault item")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) writeVaultError(w http.ResponseWriter, r *http.Request, err error, logMsg string) {
	log := logger.FromRequest(r)

	switch {
	case errors.Is(err, service.ErrInvalidDataProvided):
		log.Err(err).Msg("invalid data provided")
		writeError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
	case errors.Is(err, store.ErrItemNotFound):
		writeError(w, app.MsgItemNotFound, http.StatusNotFound)
	default:
		log.Err(err).Msg(logMsg)
		writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
