package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/flashdeck-backend/internal/domain"
	"github.com/heartmarshall/flashdeck-backend/internal/service/deck"
)

// folderService defines the minimal interface needed by FolderHandler.
type folderService interface {
	ListFolders(ctx context.Context) ([]domain.Folder, error)
	CreateFolder(ctx context.Context, input deck.CreateFolderInput) (*domain.Folder, error)
	RenameFolder(ctx context.Context, input deck.UpdateFolderInput) (*domain.Folder, error)
	DeleteFolder(ctx context.Context, input deck.DeleteFolderInput) error
}

// FolderHandler serves folder REST endpoints.
type FolderHandler struct {
	svc folderService
	log *slog.Logger
}

// NewFolderHandler creates a FolderHandler.
func NewFolderHandler(svc folderService, logger *slog.Logger) *FolderHandler {
	return &FolderHandler{svc: svc, log: logger.With("handler", "folder")}
}

type createFolderRequest struct {
	FolderName string `json:"folder_name"`
}

type updateFolderRequest struct {
	FolderID string `json:"folder_id"`
	NewName  string `json:"new_name"`
}

type deleteFolderRequest struct {
	FolderID string `json:"folder_id"`
}

type folderResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// List handles GET /folders.
func (h *FolderHandler) List(w http.ResponseWriter, r *http.Request) {
	folders, err := h.svc.ListFolders(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := make([]folderResponse, 0, len(folders))
	for _, f := range folders {
		resp = append(resp, toFolderResponse(&f))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Create handles POST /folders/create_folder.
func (h *FolderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createFolderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	folder, err := h.svc.CreateFolder(r.Context(), deck.CreateFolderInput{Name: req.FolderName})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "successfully added a new folder",
		"folder":  toFolderResponse(folder),
	})
}

// Update handles PUT /folders/update_folder.
func (h *FolderHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateFolderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	folderID, err := uuid.Parse(req.FolderID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid folder_id")
		return
	}

	folder, err := h.svc.RenameFolder(r.Context(), deck.UpdateFolderInput{
		FolderID: folderID,
		Name:     req.NewName,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "successfully edited the folder",
		"folder":  toFolderResponse(folder),
	})
}

// Delete handles DELETE /folders/delete_folder.
func (h *FolderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req deleteFolderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	folderID, err := uuid.Parse(req.FolderID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid folder_id")
		return
	}

	if err := h.svc.DeleteFolder(r.Context(), deck.DeleteFolderInput{FolderID: folderID}); err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "successfully deleted the folder"})
}

func (h *FolderHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	handleServiceError(w, r, h.log, err)
}

func toFolderResponse(f *domain.Folder) folderResponse {
	return folderResponse{
		ID:        f.ID.String(),
		Name:      f.Name,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}
