package interfaces

//go:generate moq -out mocks/repository_mock.go -pkg mocks . Repository

import (
	"context"

	"github.com/secmon-lab/demote/pkg/domain/model"
	"github.com/secmon-lab/demote/pkg/domain/types"
)

// Repository defines the interface for operator session storage
type Repository interface {
	SaveSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context, id types.SessionID) (*model.Session, error)
	DeleteSession(ctx context.Context, id types.SessionID) error
	DeleteExpiredSessions(ctx context.Context) (int, error)

	// Close closes the repository connection
	Close() error
}
