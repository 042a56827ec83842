package dto

import "time"

type UserResponseDTO struct {
	ID    string `json:"id"`
	Email string `json:"email" example:"bob@example.com"`
	Name  string `json:"name" example:"Bob"`
	Image string `json:"image,omitempty"`
}

type InviteRequestDTO struct {
	UserID string `json:"userId"`
	Role   string `json:"role,omitempty" example:"editor"`
}

type MemberResponseDTO struct {
	ID        string     `json:"id"`
	ProjectID string     `json:"projectId"`
	UserID    string     `json:"userId"`
	Role      string     `json:"role" example:"editor"`
	InvitedAt time.Time  `json:"invitedAt"`
	JoinedAt  *time.Time `json:"joinedAt,omitempty"`
	UserEmail string     `json:"userEmail,omitempty"`
	UserName  string     `json:"userName,omitempty"`
	UserImage string     `json:"userImage,omitempty"`
}

type InviteResponseDTO struct {
	ID               string    `json:"id"`
	ProjectID        string    `json:"projectId"`
	Role             string    `json:"role" example:"viewer"`
	InvitedAt        time.Time `json:"invitedAt"`
	ProjectName      string    `json:"projectName"`
	ProjectThumbnail string    `json:"projectThumbnail,omitempty"`
	OwnerName        string    `json:"ownerName"`
	OwnerEmail       string    `json:"ownerEmail"`
}

type AcceptInviteResponseDTO struct {
	ProjectID string `json:"projectId"`
}
