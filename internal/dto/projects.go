package dto

import (
	"encoding/json"
	"time"
)

type CreateProjectRequestDTO struct {
	Name         string          `json:"name,omitempty" example:"Landing page"`
	Description  string          `json:"description,omitempty"`
	FolderID     *string         `json:"folderId,omitempty"`
	SketchesData json.RawMessage `json:"sketchesData,omitempty" swaggertype:"object"`
	Thumbnail    string          `json:"thumbnail,omitempty"`
}

type ProjectResponseDTO struct {
	ID                  string          `json:"id"`
	UserID              string          `json:"userId"`
	Name                string          `json:"name" example:"Project 1"`
	Description         string          `json:"description,omitempty"`
	FolderID            *string         `json:"folderId,omitempty"`
	SketchesData        json.RawMessage `json:"sketchesData,omitempty" swaggertype:"object"`
	ViewportData        json.RawMessage `json:"viewportData,omitempty" swaggertype:"object"`
	GeneratedDesignData json.RawMessage `json:"generatedDesignData,omitempty" swaggertype:"object"`
	Thumbnail           string          `json:"thumbnail,omitempty"`
	IsPublic            bool            `json:"isPublic"`
	Tags                []string        `json:"tags"`
	ProjectNumber       int             `json:"projectNumber" example:"1"`
	IsDeleted           bool            `json:"isDeleted"`
	DeletedAt           *time.Time      `json:"deletedAt,omitempty"`
	LastModified        time.Time       `json:"lastModified"`
	CreatedAt           time.Time       `json:"createdAt"`
	IsShared            bool            `json:"isShared"`
	TeamMemberCount     int             `json:"teamMemberCount"`
}

type UpdateSketchesRequestDTO struct {
	SketchesData json.RawMessage `json:"sketchesData" swaggertype:"object"`
	ViewportData json.RawMessage `json:"viewportData,omitempty" swaggertype:"object"`
	Thumbnail    *string         `json:"thumbnail,omitempty"`
}

type RenameRequestDTO struct {
	Name string `json:"name" example:"Checkout flow"`
}

type RenameResponseDTO struct {
	Name string `json:"name" example:"Checkout flow"`
}

type MoveProjectRequestDTO struct {
	FolderID *string `json:"folderId"`
}

type FolderRequestDTO struct {
	Name  string `json:"name" example:"Clients"`
	Color string `json:"color,omitempty" example:"#3b82f6"`
}

type FolderResponseDTO struct {
	ID        string     `json:"id"`
	Name      string     `json:"name" example:"Clients"`
	Color     string     `json:"color,omitempty" example:"#3b82f6"`
	IsDeleted bool       `json:"isDeleted"`
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}
