package projects

import (
	"encoding/json"
	"net/http"

	"github.com/D1yWeb/S2C/internal/domain"
	"github.com/D1yWeb/S2C/internal/dto"
	"github.com/D1yWeb/S2C/internal/service/projectservice"
	"github.com/D1yWeb/S2C/pkg/auth"
	"github.com/D1yWeb/S2C/pkg/utils"
)

// CreateFolder godoc
//
//	@Summary		Create a folder
//	@Tags			Folders
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.FolderRequestDTO	true	"Folder"
//	@Success		201		{object}	dto.FolderResponseDTO
//	@Failure		400		{object}	utils.Response	"Empty name"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Router			/api/folders [post]
func (h *ProjectsHandler) CreateFolder(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	var req dto.FolderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	folder, err := h.projectService.CreateFolder(r.Context(), userID, req.Name, req.Color)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toFolderDTO(folder))
}

// ListFolders godoc
//
//	@Summary		List folders
//	@Tags			Folders
//	@Security		BearerAuth
//	@Produce		json
//	@Param			deleted	query		bool	false	"Trash view"
//	@Success		200		{array}		dto.FolderResponseDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Router			/api/folders [get]
func (h *ProjectsHandler) ListFolders(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	deleted, err := queryBool(r.URL.Query().Get("deleted"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid deleted")
		return
	}
	folders, err := h.projectService.ListFolders(r.Context(), userID, deleted)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	response := make([]dto.FolderResponseDTO, len(folders))
	for i := range folders {
		response[i] = toFolderDTO(&folders[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// UpdateFolder godoc
//
//	@Summary		Rename or recolor a folder
//	@Tags			Folders
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Folder ID"
//	@Param			request	body		dto.FolderRequestDTO	true	"Folder"
//	@Success		200		{object}	dto.FolderResponseDTO
//	@Failure		400		{object}	utils.Response	"Empty name"
//	@Failure		403		{object}	utils.Response	"Access denied"
//	@Failure		404		{object}	utils.Response	"Folder not found"
//	@Router			/api/folders/{id} [patch]
func (h *ProjectsHandler) UpdateFolder(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())
	id, ok := pathID(w, r, projectservice.ErrFolderNotFound)
	if !ok {
		return
	}

	var req dto.FolderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	folder, err := h.projectService.UpdateFolder(r.Context(), userID, id, req.Name, req.Color)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toFolderDTO(folder))
}

// DeleteFolder godoc
//
//	@Summary		Move a folder to the trash
//	@Tags			Folders
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Folder ID"
//	@Success		204
//	@Failure		403	{object}	utils.Response	"Access denied"
//	@Failure		404	{object}	utils.Response	"Folder not found"
//	@Router			/api/folders/{id} [delete]
func (h *ProjectsHandler) DeleteFolder(w http.ResponseWriter, r *http.Request) {
	h.ownerAction(w, r, projectservice.ErrFolderNotFound, h.projectService.DeleteFolder)
}

// RestoreFolder godoc
//
//	@Summary		Restore a folder from the trash
//	@Tags			Folders
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Folder ID"
//	@Success		204
//	@Failure		403	{object}	utils.Response	"Access denied"
//	@Failure		404	{object}	utils.Response	"Folder not found"
//	@Router			/api/folders/{id}/restore [post]
func (h *ProjectsHandler) RestoreFolder(w http.ResponseWriter, r *http.Request) {
	h.ownerAction(w, r, projectservice.ErrFolderNotFound, h.projectService.RestoreFolder)
}

func toFolderDTO(f *domain.Folder) dto.FolderResponseDTO {
	return dto.FolderResponseDTO{
		ID:        f.ID,
		Name:      f.Name,
		Color:     f.Color,
		IsDeleted: f.IsDeleted,
		DeletedAt: f.DeletedAt,
		CreatedAt: f.CreatedAt,
	}
}
