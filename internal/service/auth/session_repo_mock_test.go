package auth

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashdeck-backend/internal/domain"
)

var _ sessionRepo = &sessionRepoMock{}

type sessionRepoMock struct {
	CreateFunc          func(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) (*domain.Session, error)
	GetByTokenHashFunc  func(ctx context.Context, tokenHash string) (*domain.Session, error)
	RevokeByHashFunc    func(ctx context.Context, tokenHash string) error
	RevokeAllByUserFunc func(ctx context.Context, userID uuid.UUID) error
	DeleteExpiredFunc   func(ctx context.Context, cutoff time.Time) (int64, error)

	calls struct {
		Create []struct {
			Ctx       context.Context
			UserID    uuid.UUID
			TokenHash string
			ExpiresAt time.Time
		}
		GetByTokenHash []struct {
			Ctx       context.Context
			TokenHash string
		}
		RevokeByHash []struct {
			Ctx       context.Context
			TokenHash string
		}
		RevokeAllByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		DeleteExpired []struct {
			Ctx    context.Context
			Cutoff time.Time
		}
	}
	lockCreate          sync.RWMutex
	lockGetByTokenHash  sync.RWMutex
	lockRevokeByHash    sync.RWMutex
	lockRevokeAllByUser sync.RWMutex
	lockDeleteExpired   sync.RWMutex
}

func (mock *sessionRepoMock) Create(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) (*domain.Session, error) {
	if mock.CreateFunc == nil {
		panic("sessionRepoMock.CreateFunc: method is nil but sessionRepo.Create was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		UserID    uuid.UUID
		TokenHash string
		ExpiresAt time.Time
	}{Ctx: ctx, UserID: userID, TokenHash: tokenHash, ExpiresAt: expiresAt}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, userID, tokenHash, expiresAt)
}

func (mock *sessionRepoMock) CreateCalls() []struct {
	Ctx       context.Context
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *sessionRepoMock) GetByTokenHash(ctx context.Context, tokenHash string) (*domain.Session, error) {
	if mock.GetByTokenHashFunc == nil {
		panic("sessionRepoMock.GetByTokenHashFunc: method is nil but sessionRepo.GetByTokenHash was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		TokenHash string
	}{Ctx: ctx, TokenHash: tokenHash}
	mock.lockGetByTokenHash.Lock()
	mock.calls.GetByTokenHash = append(mock.calls.GetByTokenHash, callInfo)
	mock.lockGetByTokenHash.Unlock()
	return mock.GetByTokenHashFunc(ctx, tokenHash)
}

func (mock *sessionRepoMock) GetByTokenHashCalls() []struct {
	Ctx       context.Context
	TokenHash string
} {
	mock.lockGetByTokenHash.RLock()
	calls := mock.calls.GetByTokenHash
	mock.lockGetByTokenHash.RUnlock()
	return calls
}

func (mock *sessionRepoMock) RevokeByHash(ctx context.Context, tokenHash string) error {
	if mock.RevokeByHashFunc == nil {
		panic("sessionRepoMock.RevokeByHashFunc: method is nil but sessionRepo.RevokeByHash was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		TokenHash string
	}{Ctx: ctx, TokenHash: tokenHash}
	mock.lockRevokeByHash.Lock()
	mock.calls.RevokeByHash = append(mock.calls.RevokeByHash, callInfo)
	mock.lockRevokeByHash.Unlock()
	return mock.RevokeByHashFunc(ctx, tokenHash)
}

func (mock *sessionRepoMock) RevokeByHashCalls() []struct {
	Ctx       context.Context
	TokenHash string
} {
	mock.lockRevokeByHash.RLock()
	calls := mock.calls.RevokeByHash
	mock.lockRevokeByHash.RUnlock()
	return calls
}

func (mock *sessionRepoMock) RevokeAllByUser(ctx context.Context, userID uuid.UUID) error {
	if mock.RevokeAllByUserFunc == nil {
		panic("sessionRepoMock.RevokeAllByUserFunc: method is nil but sessionRepo.RevokeAllByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockRevokeAllByUser.Lock()
	mock.calls.RevokeAllByUser = append(mock.calls.RevokeAllByUser, callInfo)
	mock.lockRevokeAllByUser.Unlock()
	return mock.RevokeAllByUserFunc(ctx, userID)
}

func (mock *sessionRepoMock) RevokeAllByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockRevokeAllByUser.RLock()
	calls := mock.calls.RevokeAllByUser
	mock.lockRevokeAllByUser.RUnlock()
	return calls
}

func (mock *sessionRepoMock) DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	if mock.DeleteExpiredFunc == nil {
		panic("sessionRepoMock.DeleteExpiredFunc: method is nil but sessionRepo.DeleteExpired was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Cutoff time.Time
	}{Ctx: ctx, Cutoff: cutoff}
	mock.lockDeleteExpired.Lock()
	mock.calls.DeleteExpired = append(mock.calls.DeleteExpired, callInfo)
	mock.lockDeleteExpired.Unlock()
	return mock.DeleteExpiredFunc(ctx, cutoff)
}

func (mock *sessionRepoMock) DeleteExpiredCalls() []struct {
	Ctx    context.Context
	Cutoff time.Time
} {
	mock.lockDeleteExpired.RLock()
	calls := mock.calls.DeleteExpired
	mock.lockDeleteExpired.RUnlock()
	return calls
}
