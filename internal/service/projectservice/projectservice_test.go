package projectservice

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/D1yWeb/S2C/internal/domain"
	"github.com/D1yWeb/S2C/internal/pg"
)

type mocks struct {
	tx       *pg.MockTXManager
	projects *MockProjectRepo
	folders  *MockFolderRepo
	members  *MockMemberRepo
}

var fixedNow = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		tx:       pg.NewMockTXManager(ctrl),
		projects: NewMockProjectRepo(ctrl),
		folders:  NewMockFolderRepo(ctrl),
		members:  NewMockMemberRepo(ctrl),
	}
	m.tx.EXPECT().Begin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
			return fn(ctx)
		}).AnyTimes()

	service := New(m.tx, m.projects, m.folders, m.members, 0)
	service.now = func() time.Time { return fixedNow }
	return service, m
}

func ptr[T any](v T) *T { return &v }

func TestCreateProject(t *testing.T) {
	tests := []struct {
		name         string
		input        CreateInput
		prepareMock  func(m *mocks)
		expectedName string
		expectedErr  error
	}{
		{
			name:  "Unnamed project gets numbered name",
			input: CreateInput{SketchesData: json.RawMessage(`{"ids":[]}`)},
			prepareMock: func(m *mocks) {
				m.projects.EXPECT().NextNumber(gomock.Any(), "u1").Return(3, nil)
				m.projects.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, p *domain.Project) error {
						assert.Equal(t, 3, p.ProjectNumber)
						assert.Equal(t, fixedNow, p.LastModified)
						assert.False(t, p.IsDeleted)
						return nil
					})
			},
			expectedName: "Project 3",
		},
		{
			name:  "Explicit name is trimmed",
			input: CreateInput{Name: "  Landing page  "},
			prepareMock: func(m *mocks) {
				m.projects.EXPECT().NextNumber(gomock.Any(), "u1").Return(1, nil)
				m.projects.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedName: "Landing page",
		},
		{
			name:  "Folder in trash is rejected",
			input: CreateInput{FolderID: ptr("f1")},
			prepareMock: func(m *mocks) {
				m.folders.EXPECT().GetByID(gomock.Any(), "f1").
					Return(&domain.Folder{ID: "f1", UserID: "u1", IsDeleted: true}, nil)
			},
			expectedErr: ErrFolderNotFound,
		},
		{
			name:  "Folder of another user is rejected",
			input: CreateInput{FolderID: ptr("f1")},
			prepareMock: func(m *mocks) {
				m.folders.EXPECT().GetByID(gomock.Any(), "f1").Return(&domain.Folder{ID: "f1", UserID: "u2"}, nil)
			},
			expectedErr: ErrAccessDenied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			project, err := service.CreateProject(context.Background(), "u1", tt.input)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedName, project.Name)
			assert.NotEmpty(t, project.ID)
		})
	}
}

func TestListProjects_DefaultLimit(t *testing.T) {
	service, m := NewMock(t)
	m.projects.EXPECT().List(gomock.Any(), "u1", domain.ProjectFilter{RootOnly: true, Limit: DefaultListLimit}).Return(nil, nil)

	projects, err := service.ListProjects(context.Background(), "u1", domain.ProjectFilter{RootOnly: true})
	require.NoError(t, err)
	assert.NotNil(t, projects)
	assert.Empty(t, projects)
}

func TestGetProject(t *testing.T) {
	joined := fixedNow.Add(-time.Hour)

	tests := []struct {
		name        string
		project     *domain.Project
		prepareMock func(m *mocks)
		expectedErr error
	}{
		{
			name:        "Owner",
			project:     &domain.Project{ID: "p1", UserID: "u1"},
			prepareMock: func(m *mocks) {},
		},
		{
			name:        "Public project",
			project:     &domain.Project{ID: "p1", UserID: "u2", IsPublic: true},
			prepareMock: func(m *mocks) {},
		},
		{
			name:    "Accepted member",
			project: &domain.Project{ID: "p1", UserID: "u2"},
			prepareMock: func(m *mocks) {
				m.members.EXPECT().GetMember(gomock.Any(), "p1", "u1").
					Return(&domain.TeamMember{Role: domain.RoleViewer, JoinedAt: &joined}, nil)
			},
		},
		{
			name:    "Pending invite is not access",
			project: &domain.Project{ID: "p1", UserID: "u2"},
			prepareMock: func(m *mocks) {
				m.members.EXPECT().GetMember(gomock.Any(), "p1", "u1").
					Return(&domain.TeamMember{Role: domain.RoleEditor}, nil)
			},
			expectedErr: ErrAccessDenied,
		},
		{
			name:    "Stranger",
			project: &domain.Project{ID: "p1", UserID: "u2"},
			prepareMock: func(m *mocks) {
				m.members.EXPECT().GetMember(gomock.Any(), "p1", "u1").Return(nil, nil)
			},
			expectedErr: ErrAccessDenied,
		},
		{
			name:        "Missing project",
			prepareMock: func(m *mocks) {},
			expectedErr: ErrProjectNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			m.projects.EXPECT().GetByID(gomock.Any(), "p1").Return(tt.project, nil)
			tt.prepareMock(m)

			project, err := service.GetProject(context.Background(), "u1", "p1")
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, project)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "p1", project.ID)
		})
	}
}

func TestGetStyleGuide(t *testing.T) {
	service, m := NewMock(t)
	m.projects.EXPECT().GetByID(gomock.Any(), "p1").
		Return(&domain.Project{ID: "p1", UserID: "u1", StyleGuide: `{"colors":["#fff"]}`}, nil)

	guide, err := service.GetStyleGuide(context.Background(), "u1", "p1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"colors":["#fff"]}`, string(guide))
}

func TestUpdateSketches(t *testing.T) {
	joined := fixedNow.Add(-time.Hour)
	sketches := json.RawMessage(`{"ids":["a"]}`)

	tests := []struct {
		name        string
		prepareMock func(m *mocks)
		expectedErr error
	}{
		{
			name: "Owner saves",
			prepareMock: func(m *mocks) {
				m.projects.EXPECT().GetByID(gomock.Any(), "p1").Return(&domain.Project{ID: "p1", UserID: "u1"}, nil)
				m.projects.EXPECT().UpdateSketches(gomock.Any(), "p1", sketches, nil, nil, fixedNow).Return(nil)
			},
		},
		{
			name: "Editor saves",
			prepareMock: func(m *mocks) {
				m.projects.EXPECT().GetByID(gomock.Any(), "p1").Return(&domain.Project{ID: "p1", UserID: "u2"}, nil)
				m.members.EXPECT().GetMember(gomock.Any(), "p1", "u1").
					Return(&domain.TeamMember{Role: domain.RoleEditor, JoinedAt: &joined}, nil)
				m.projects.EXPECT().UpdateSketches(gomock.Any(), "p1", sketches, nil, nil, fixedNow).Return(nil)
			},
		},
		{
			name: "Viewer cannot save",
			prepareMock: func(m *mocks) {
				m.projects.EXPECT().GetByID(gomock.Any(), "p1").Return(&domain.Project{ID: "p1", UserID: "u2"}, nil)
				m.members.EXPECT().GetMember(gomock.Any(), "p1", "u1").
					Return(&domain.TeamMember{Role: domain.RoleViewer, JoinedAt: &joined}, nil)
			},
			expectedErr: ErrAccessDenied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			err := service.UpdateSketches(context.Background(), "u1", "p1", sketches, nil, nil)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestUpdateStyleGuide_InvalidJSON(t *testing.T) {
	service, _ := NewMock(t)

	err := service.UpdateStyleGuide(context.Background(), "u1", "p1", json.RawMessage(`{broken`))
	assert.ErrorIs(t, err, ErrInvalidStyleJSON)
}

func TestRenameProject(t *testing.T) {
	tests := []struct {
		name        string
		newName     string
		prepareMock func(m *mocks)
		expected    string
		expectedErr error
	}{
		{
			name:    "Renamed",
			newName: "  Dashboard ",
			prepareMock: func(m *mocks) {
				m.projects.EXPECT().GetByID(gomock.Any(), "p1").Return(&domain.Project{ID: "p1", UserID: "u1"}, nil)
				m.projects.EXPECT().Rename(gomock.Any(), "p1", "Dashboard", fixedNow).Return(nil)
			},
			expected: "Dashboard",
		},
		{
			name:        "Blank name",
			newName:     "   ",
			prepareMock: func(m *mocks) {},
			expectedErr: ErrEmptyName,
		},
		{
			name:    "Not the owner",
			newName: "Dashboard",
			prepareMock: func(m *mocks) {
				m.projects.EXPECT().GetByID(gomock.Any(), "p1").Return(&domain.Project{ID: "p1", UserID: "u2"}, nil)
			},
			expectedErr: ErrAccessDenied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			name, err := service.RenameProject(context.Background(), "u1", "p1", tt.newName)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, name)
		})
	}
}

func TestMoveProject(t *testing.T) {
	t.Run("Into folder", func(t *testing.T) {
		service, m := NewMock(t)
		m.projects.EXPECT().GetByID(gomock.Any(), "p1").Return(&domain.Project{ID: "p1", UserID: "u1"}, nil)
		m.folders.EXPECT().GetByID(gomock.Any(), "f1").Return(&domain.Folder{ID: "f1", UserID: "u1"}, nil)
		m.projects.EXPECT().SetFolder(gomock.Any(), "p1", ptr("f1"), fixedNow).Return(nil)

		assert.NoError(t, service.MoveProject(context.Background(), "u1", "p1", ptr("f1")))
	})

	t.Run("To root", func(t *testing.T) {
		service, m := NewMock(t)
		m.projects.EXPECT().GetByID(gomock.Any(), "p1").Return(&domain.Project{ID: "p1", UserID: "u1"}, nil)
		m.projects.EXPECT().SetFolder(gomock.Any(), "p1", nil, fixedNow).Return(nil)

		assert.NoError(t, service.MoveProject(context.Background(), "u1", "p1", nil))
	})

	t.Run("Unknown folder", func(t *testing.T) {
		service, m := NewMock(t)
		m.projects.EXPECT().GetByID(gomock.Any(), "p1").Return(&domain.Project{ID: "p1", UserID: "u1"}, nil)
		m.folders.EXPECT().GetByID(gomock.Any(), "f1").Return(nil, nil)

		assert.ErrorIs(t, service.MoveProject(context.Background(), "u1", "p1", ptr("f1")), ErrFolderNotFound)
	})
}

func TestTrashLifecycle(t *testing.T) {
	owned := &domain.Project{ID: "p1", UserID: "u1"}

	t.Run("Soft delete", func(t *testing.T) {
		service, m := NewMock(t)
		m.projects.EXPECT().GetByID(gomock.Any(), "p1").Return(owned, nil)
		m.projects.EXPECT().SoftDelete(gomock.Any(), "p1", fixedNow).Return(nil)
		assert.NoError(t, service.DeleteProject(context.Background(), "u1", "p1"))
	})

	t.Run("Restore", func(t *testing.T) {
		service, m := NewMock(t)
		m.projects.EXPECT().GetByID(gomock.Any(), "p1").Return(owned, nil)
		m.projects.EXPECT().Restore(gomock.Any(), "p1").Return(nil)
		assert.NoError(t, service.RestoreProject(context.Background(), "u1", "p1"))
	})

	t.Run("Permanent delete", func(t *testing.T) {
		service, m := NewMock(t)
		m.projects.EXPECT().GetByID(gomock.Any(), "p1").Return(owned, nil)
		m.projects.EXPECT().Delete(gomock.Any(), "p1").Return(nil)
		assert.NoError(t, service.PermanentlyDeleteProject(context.Background(), "u1", "p1"))
	})

	t.Run("Only owner deletes", func(t *testing.T) {
		service, m := NewMock(t)
		m.projects.EXPECT().GetByID(gomock.Any(), "p1").Return(owned, nil)
		assert.ErrorIs(t, service.PermanentlyDeleteProject(context.Background(), "u2", "p1"), ErrAccessDenied)
	})
}

func TestFolders(t *testing.T) {
	t.Run("Create", func(t *testing.T) {
		service, m := NewMock(t)
		m.folders.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		folder, err := service.CreateFolder(context.Background(), "u1", " Clients ", "#ff0000")
		require.NoError(t, err)
		assert.Equal(t, "Clients", folder.Name)
		assert.Equal(t, fixedNow, folder.CreatedAt)
	})

	t.Run("Create without name", func(t *testing.T) {
		service, _ := NewMock(t)
		_, err := service.CreateFolder(context.Background(), "u1", "", "")
		assert.ErrorIs(t, err, ErrEmptyName)
	})

	t.Run("Update keeps color when omitted", func(t *testing.T) {
		service, m := NewMock(t)
		m.folders.EXPECT().GetByID(gomock.Any(), "f1").Return(&domain.Folder{ID: "f1", UserID: "u1", Name: "Old", Color: "#000"}, nil)
		m.folders.EXPECT().Update(gomock.Any(), "f1", "New", "#000").Return(nil)

		folder, err := service.UpdateFolder(context.Background(), "u1", "f1", "New", "")
		require.NoError(t, err)
		assert.Equal(t, "New", folder.Name)
	})

	t.Run("Restore from trash", func(t *testing.T) {
		service, m := NewMock(t)
		m.folders.EXPECT().GetByID(gomock.Any(), "f1").Return(&domain.Folder{ID: "f1", UserID: "u1", IsDeleted: true}, nil)
		m.folders.EXPECT().Restore(gomock.Any(), "f1").Return(nil)

		assert.NoError(t, service.RestoreFolder(context.Background(), "u1", "f1"))
	})

	t.Run("Delete folder already in trash", func(t *testing.T) {
		service, m := NewMock(t)
		m.folders.EXPECT().GetByID(gomock.Any(), "f1").Return(&domain.Folder{ID: "f1", UserID: "u1", IsDeleted: true}, nil)

		assert.ErrorIs(t, service.DeleteFolder(context.Background(), "u1", "f1"), ErrFolderNotFound)
	})

	t.Run("List trash", func(t *testing.T) {
		service, m := NewMock(t)
		m.folders.EXPECT().List(gomock.Any(), "u1", true).Return([]domain.Folder{{ID: "f1"}}, nil)

		folders, err := service.ListFolders(context.Background(), "u1", true)
		require.NoError(t, err)
		assert.Len(t, folders, 1)
	})
}

func TestPurgeDeleted(t *testing.T) {
	cutoff := fixedNow.Add(-DefaultRetention)

	tests := []struct {
		name        string
		prepareMock func(m *mocks)
		expected    domain.CleanupResult
		expectErr   bool
	}{
		{
			name: "Folders first then orphan projects",
			prepareMock: func(m *mocks) {
				gomock.InOrder(
					m.projects.EXPECT().PurgeInExpiredFolders(gomock.Any(), cutoff).Return(int64(4), nil),
					m.folders.EXPECT().PurgeExpired(gomock.Any(), cutoff).Return(int64(1), nil),
					m.projects.EXPECT().PurgeExpired(gomock.Any(), cutoff).Return(int64(2), nil),
				)
			},
			expected: domain.CleanupResult{FolderProjects: 4, Folders: 1, Projects: 2},
		},
		{
			name: "Failure aborts the sweep",
			prepareMock: func(m *mocks) {
				m.projects.EXPECT().PurgeInExpiredFolders(gomock.Any(), cutoff).Return(int64(4), nil)
				m.folders.EXPECT().PurgeExpired(gomock.Any(), cutoff).Return(int64(0), errors.New("db down"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			result, err := service.PurgeDeleted(context.Background(), fixedNow)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Zero(t, result.Total())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
			assert.Equal(t, int64(7), result.Total())
		})
	}
}

func TestPurgeDeleted_RetentionBoundary(t *testing.T) {
	purgedAt := fixedNow.AddDate(0, 0, -91)
	keptAt := fixedNow.AddDate(0, 0, -89)

	// Repositories delete rows with deleted_at < cutoff.
	expired := func(deletedAt time.Time) gomock.Matcher {
		return gomock.Cond(func(x any) bool {
			cutoff := x.(time.Time)
			return deletedAt.Before(cutoff)
		})
	}
	retained := func(deletedAt time.Time) gomock.Matcher {
		return gomock.Cond(func(x any) bool {
			cutoff := x.(time.Time)
			return !deletedAt.Before(cutoff)
		})
	}

	service, m := NewMock(t)
	m.projects.EXPECT().PurgeInExpiredFolders(gomock.Any(), gomock.All(expired(purgedAt), retained(keptAt))).Return(int64(1), nil)
	m.folders.EXPECT().PurgeExpired(gomock.Any(), gomock.All(expired(purgedAt), retained(keptAt))).Return(int64(1), nil)
	m.projects.EXPECT().PurgeExpired(gomock.Any(), gomock.All(expired(purgedAt), retained(keptAt))).Return(int64(1), nil)

	result, err := service.PurgeDeleted(context.Background(), fixedNow)
	require.NoError(t, err)
	assert.Equal(t, int64(3), result.Total())
}
