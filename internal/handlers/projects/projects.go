package projects

//go:generate mockgen -source=projects.go -destination=mock_projects.go -package=projects

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/D1yWeb/S2C/internal/domain"
	"github.com/D1yWeb/S2C/internal/dto"
	"github.com/D1yWeb/S2C/internal/service/projectservice"
	"github.com/D1yWeb/S2C/pkg/auth"
	"github.com/D1yWeb/S2C/pkg/utils"
)

type Service interface {
	CreateProject(ctx context.Context, userID string, in projectservice.CreateInput) (*domain.Project, error)
	ListProjects(ctx context.Context, userID string, filter domain.ProjectFilter) ([]domain.ProjectListItem, error)
	GetProject(ctx context.Context, userID, id string) (*domain.Project, error)
	GetStyleGuide(ctx context.Context, userID, id string) (json.RawMessage, error)
	UpdateSketches(ctx context.Context, userID, id string, sketches, viewport json.RawMessage, thumbnail *string) error
	UpdateStyleGuide(ctx context.Context, userID, id string, styleGuide json.RawMessage) error
	RenameProject(ctx context.Context, userID, id, name string) (string, error)
	MoveProject(ctx context.Context, userID, id string, folderID *string) error
	DeleteProject(ctx context.Context, userID, id string) error
	RestoreProject(ctx context.Context, userID, id string) error
	PermanentlyDeleteProject(ctx context.Context, userID, id string) error

	CreateFolder(ctx context.Context, userID, name, color string) (*domain.Folder, error)
	ListFolders(ctx context.Context, userID string, deleted bool) ([]domain.Folder, error)
	UpdateFolder(ctx context.Context, userID, id, name, color string) (*domain.Folder, error)
	DeleteFolder(ctx context.Context, userID, id string) error
	RestoreFolder(ctx context.Context, userID, id string) error
}

type ProjectsHandler struct {
	projectService Service
}

func New(projectService Service) *ProjectsHandler {
	return &ProjectsHandler{
		projectService: projectService,
	}
}

// pathID answers 404 with notFound when the {id} segment cannot name a row.
func pathID(w http.ResponseWriter, r *http.Request, notFound error) (string, bool) {
	id := chi.URLParam(r, "id")
	if !utils.IsUUID(id) {
		utils.RespondWithError(w, http.StatusNotFound, notFound.Error())
		return "", false
	}
	return id, true
}

func validFolderID(folderID *string) bool {
	return folderID == nil || utils.IsUUID(*folderID)
}

func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, projectservice.ErrProjectNotFound), errors.Is(err, projectservice.ErrFolderNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, projectservice.ErrAccessDenied):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, projectservice.ErrEmptyName), errors.Is(err, projectservice.ErrInvalidStyleJSON):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// CreateProject godoc
//
//	@Summary		Create a project
//	@Description	Unnamed projects are called "Project N" after the owner's next project number.
//	@Tags			Projects
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateProjectRequestDTO	true	"Project"
//	@Success		201		{object}	dto.ProjectResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Folder not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/projects [post]
func (h *ProjectsHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	var req dto.CreateProjectRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !validFolderID(req.FolderID) {
		utils.RespondWithError(w, http.StatusNotFound, projectservice.ErrFolderNotFound.Error())
		return
	}

	project, err := h.projectService.CreateProject(r.Context(), userID, projectservice.CreateInput{
		Name:         req.Name,
		Description:  req.Description,
		FolderID:     req.FolderID,
		SketchesData: req.SketchesData,
		Thumbnail:    req.Thumbnail,
	})
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toProjectDTO(domain.ProjectListItem{Project: *project}))
}

// ListProjects godoc
//
//	@Summary		List projects
//	@Description	Owned projects and projects shared through an accepted invite, most recently modified first.
//	@Tags			Projects
//	@Security		BearerAuth
//	@Produce		json
//	@Param			folderId	query		string	false	"Only projects in this folder"
//	@Param			root		query		bool	false	"Only projects outside folders"
//	@Param			deleted		query		bool	false	"Trash view"
//	@Param			limit		query		int		false	"Max items (default 20)"
//	@Success		200			{array}		dto.ProjectResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid query"
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/projects [get]
func (h *ProjectsHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	query := r.URL.Query()
	var filter domain.ProjectFilter
	if folderID := query.Get("folderId"); folderID != "" {
		if !utils.IsUUID(folderID) {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid folderId")
			return
		}
		filter.FolderID = &folderID
	}
	var err error
	if filter.RootOnly, err = queryBool(query.Get("root")); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid root")
		return
	}
	if filter.Deleted, err = queryBool(query.Get("deleted")); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid deleted")
		return
	}
	if raw := query.Get("limit"); raw != "" {
		if filter.Limit, err = strconv.Atoi(raw); err != nil || filter.Limit < 0 {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
	}

	items, err := h.projectService.ListProjects(r.Context(), userID, filter)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	response := make([]dto.ProjectResponseDTO, len(items))
	for i, item := range items {
		response[i] = toProjectDTO(item)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetProject godoc
//
//	@Summary		Get a project
//	@Tags			Projects
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Project ID"
//	@Success		200	{object}	dto.ProjectResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Access denied"
//	@Failure		404	{object}	utils.Response	"Project not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/projects/{id} [get]
func (h *ProjectsHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())
	id, ok := pathID(w, r, projectservice.ErrProjectNotFound)
	if !ok {
		return
	}

	project, err := h.projectService.GetProject(r.Context(), userID, id)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toProjectDTO(domain.ProjectListItem{
		Project:  *project,
		IsShared: project.UserID != userID,
	}))
}

// GetStyleGuide godoc
//
//	@Summary		Get the project style guide
//	@Tags			Projects
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Project ID"
//	@Success		200	{object}	object
//	@Success		204	"No style guide yet"
//	@Failure		403	{object}	utils.Response	"Access denied"
//	@Failure		404	{object}	utils.Response	"Project not found"
//	@Router			/api/projects/{id}/style-guide [get]
func (h *ProjectsHandler) GetStyleGuide(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())
	id, ok := pathID(w, r, projectservice.ErrProjectNotFound)
	if !ok {
		return
	}

	guide, err := h.projectService.GetStyleGuide(r.Context(), userID, id)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	if guide == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, guide)
}

// UpdateSketches godoc
//
//	@Summary		Autosave sketches
//	@Description	Owner, editors and admins may save. Viewport and thumbnail are kept when omitted.
//	@Tags			Projects
//	@Security		BearerAuth
//	@Accept			json
//	@Param			id		path	string							true	"Project ID"
//	@Param			request	body	dto.UpdateSketchesRequestDTO	true	"Sketches"
//	@Success		204
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		403	{object}	utils.Response	"Access denied"
//	@Failure		404	{object}	utils.Response	"Project not found"
//	@Router			/api/projects/{id}/sketches [put]
func (h *ProjectsHandler) UpdateSketches(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())
	id, ok := pathID(w, r, projectservice.ErrProjectNotFound)
	if !ok {
		return
	}

	var req dto.UpdateSketchesRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.SketchesData) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	err := h.projectService.UpdateSketches(r.Context(), userID, id, req.SketchesData, req.ViewportData, req.Thumbnail)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UpdateStyleGuide godoc
//
//	@Summary		Replace the project style guide
//	@Tags			Projects
//	@Security		BearerAuth
//	@Accept			json
//	@Param			id		path	string	true	"Project ID"
//	@Param			request	body	object	true	"Style guide"
//	@Success		204
//	@Failure		400	{object}	utils.Response	"Invalid JSON"
//	@Failure		403	{object}	utils.Response	"Access denied"
//	@Failure		404	{object}	utils.Response	"Project not found"
//	@Router			/api/projects/{id}/style-guide [put]
func (h *ProjectsHandler) UpdateStyleGuide(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())
	id, ok := pathID(w, r, projectservice.ErrProjectNotFound)
	if !ok {
		return
	}

	var guide json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&guide); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, projectservice.ErrInvalidStyleJSON.Error())
		return
	}
	if err := h.projectService.UpdateStyleGuide(r.Context(), userID, id, guide); err != nil {
		respondWithServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RenameProject godoc
//
//	@Summary		Rename a project
//	@Tags			Projects
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"Project ID"
//	@Param			request	body		dto.RenameRequestDTO	true	"New name"
//	@Success		200		{object}	dto.RenameResponseDTO
//	@Failure		400		{object}	utils.Response	"Empty name"
//	@Failure		403		{object}	utils.Response	"Access denied"
//	@Failure		404		{object}	utils.Response	"Project not found"
//	@Router			/api/projects/{id}/name [patch]
func (h *ProjectsHandler) RenameProject(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())
	id, ok := pathID(w, r, projectservice.ErrProjectNotFound)
	if !ok {
		return
	}

	var req dto.RenameRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	name, err := h.projectService.RenameProject(r.Context(), userID, id, req.Name)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.RenameResponseDTO{Name: name})
}

// MoveProject godoc
//
//	@Summary		Move a project
//	@Description	A null folderId moves the project back to the root.
//	@Tags			Projects
//	@Security		BearerAuth
//	@Accept			json
//	@Param			id		path	string					true	"Project ID"
//	@Param			request	body	dto.MoveProjectRequestDTO	true	"Target folder"
//	@Success		204
//	@Failure		403	{object}	utils.Response	"Access denied"
//	@Failure		404	{object}	utils.Response	"Project or folder not found"
//	@Router			/api/projects/{id}/folder [patch]
func (h *ProjectsHandler) MoveProject(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())
	id, ok := pathID(w, r, projectservice.ErrProjectNotFound)
	if !ok {
		return
	}

	var req dto.MoveProjectRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !validFolderID(req.FolderID) {
		utils.RespondWithError(w, http.StatusNotFound, projectservice.ErrFolderNotFound.Error())
		return
	}
	if err := h.projectService.MoveProject(r.Context(), userID, id, req.FolderID); err != nil {
		respondWithServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteProject godoc
//
//	@Summary		Move a project to the trash
//	@Tags			Projects
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Project ID"
//	@Success		204
//	@Failure		403	{object}	utils.Response	"Access denied"
//	@Failure		404	{object}	utils.Response	"Project not found"
//	@Router			/api/projects/{id} [delete]
func (h *ProjectsHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	h.ownerAction(w, r, projectservice.ErrProjectNotFound, h.projectService.DeleteProject)
}

// RestoreProject godoc
//
//	@Summary		Restore a project from the trash
//	@Tags			Projects
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Project ID"
//	@Success		204
//	@Failure		403	{object}	utils.Response	"Access denied"
//	@Failure		404	{object}	utils.Response	"Project not found"
//	@Router			/api/projects/{id}/restore [post]
func (h *ProjectsHandler) RestoreProject(w http.ResponseWriter, r *http.Request) {
	h.ownerAction(w, r, projectservice.ErrProjectNotFound, h.projectService.RestoreProject)
}

// PermanentlyDeleteProject godoc
//
//	@Summary		Delete a project for good
//	@Tags			Projects
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Project ID"
//	@Success		204
//	@Failure		403	{object}	utils.Response	"Access denied"
//	@Failure		404	{object}	utils.Response	"Project not found"
//	@Router			/api/projects/{id}/permanent [delete]
func (h *ProjectsHandler) PermanentlyDeleteProject(w http.ResponseWriter, r *http.Request) {
	h.ownerAction(w, r, projectservice.ErrProjectNotFound, h.projectService.PermanentlyDeleteProject)
}

func (h *ProjectsHandler) ownerAction(w http.ResponseWriter, r *http.Request, notFound error, action func(ctx context.Context, userID, id string) error) {
	userID, _ := auth.UserID(r.Context())
	id, ok := pathID(w, r, notFound)
	if !ok {
		return
	}

	if err := action(r.Context(), userID, id); err != nil {
		respondWithServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toProjectDTO(item domain.ProjectListItem) dto.ProjectResponseDTO {
	p := item.Project
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return dto.ProjectResponseDTO{
		ID:                  p.ID,
		UserID:              p.UserID,
		Name:                p.Name,
		Description:         p.Description,
		FolderID:            p.FolderID,
		SketchesData:        p.SketchesData,
		ViewportData:        p.ViewportData,
		GeneratedDesignData: p.GeneratedDesignData,
		Thumbnail:           p.Thumbnail,
		IsPublic:            p.IsPublic,
		Tags:                tags,
		ProjectNumber:       p.ProjectNumber,
		IsDeleted:           p.IsDeleted,
		DeletedAt:           p.DeletedAt,
		LastModified:        p.LastModified,
		CreatedAt:           p.CreatedAt,
		IsShared:            item.IsShared,
		TeamMemberCount:     item.TeamMemberCount,
	}
}

func queryBool(raw string) (bool, error) {
	if raw == "" {
		return false, nil
	}
	return strconv.ParseBool(raw)
}
