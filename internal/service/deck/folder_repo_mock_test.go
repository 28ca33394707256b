package deck

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashdeck-backend/internal/domain"
)

var _ folderRepo = &folderRepoMock{}

type folderRepoMock struct {
	CreateFunc      func(ctx context.Context, ownerID uuid.UUID, name string) (*domain.Folder, error)
	GetByIDFunc     func(ctx context.Context, ownerID, folderID uuid.UUID) (*domain.Folder, error)
	GetByNameFunc   func(ctx context.Context, ownerID uuid.UUID, name string) (*domain.Folder, error)
	ListByOwnerFunc func(ctx context.Context, ownerID uuid.UUID) ([]domain.Folder, error)
	RenameFunc      func(ctx context.Context, ownerID, folderID uuid.UUID, name string) (*domain.Folder, error)
	DeleteFunc      func(ctx context.Context, ownerID, folderID uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			Name    string
		}
		GetByID []struct {
			Ctx      context.Context
			OwnerID  uuid.UUID
			FolderID uuid.UUID
		}
		GetByName []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			Name    string
		}
		ListByOwner []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
		}
		Rename []struct {
			Ctx      context.Context
			OwnerID  uuid.UUID
			FolderID uuid.UUID
			Name     string
		}
		Delete []struct {
			Ctx      context.Context
			OwnerID  uuid.UUID
			FolderID uuid.UUID
		}
	}
	lockCreate      sync.RWMutex
	lockGetByID     sync.RWMutex
	lockGetByName   sync.RWMutex
	lockListByOwner sync.RWMutex
	lockRename      sync.RWMutex
	lockDelete      sync.RWMutex
}

func (mock *folderRepoMock) Create(ctx context.Context, ownerID uuid.UUID, name string) (*domain.Folder, error) {
	if mock.CreateFunc == nil {
		panic("folderRepoMock.CreateFunc: method is nil but folderRepo.Create was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		Name    string
	}{Ctx: ctx, OwnerID: ownerID, Name: name}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, ownerID, name)
}

func (mock *folderRepoMock) CreateCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	Name    string
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *folderRepoMock) GetByID(ctx context.Context, ownerID, folderID uuid.UUID) (*domain.Folder, error) {
	if mock.GetByIDFunc == nil {
		panic("folderRepoMock.GetByIDFunc: method is nil but folderRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		OwnerID  uuid.UUID
		FolderID uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID, FolderID: folderID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, ownerID, folderID)
}

func (mock *folderRepoMock) GetByIDCalls() []struct {
	Ctx      context.Context
	OwnerID  uuid.UUID
	FolderID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *folderRepoMock) GetByName(ctx context.Context, ownerID uuid.UUID, name string) (*domain.Folder, error) {
	if mock.GetByNameFunc == nil {
		panic("folderRepoMock.GetByNameFunc: method is nil but folderRepo.GetByName was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		Name    string
	}{Ctx: ctx, OwnerID: ownerID, Name: name}
	mock.lockGetByName.Lock()
	mock.calls.GetByName = append(mock.calls.GetByName, callInfo)
	mock.lockGetByName.Unlock()
	return mock.GetByNameFunc(ctx, ownerID, name)
}

func (mock *folderRepoMock) GetByNameCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	Name    string
} {
	mock.lockGetByName.RLock()
	calls := mock.calls.GetByName
	mock.lockGetByName.RUnlock()
	return calls
}

func (mock *folderRepoMock) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Folder, error) {
	if mock.ListByOwnerFunc == nil {
		panic("folderRepoMock.ListByOwnerFunc: method is nil but folderRepo.ListByOwner was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID}
	mock.lockListByOwner.Lock()
	mock.calls.ListByOwner = append(mock.calls.ListByOwner, callInfo)
	mock.lockListByOwner.Unlock()
	return mock.ListByOwnerFunc(ctx, ownerID)
}

func (mock *folderRepoMock) ListByOwnerCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
} {
	mock.lockListByOwner.RLock()
	calls := mock.calls.ListByOwner
	mock.lockListByOwner.RUnlock()
	return calls
}

func (mock *folderRepoMock) Rename(ctx context.Context, ownerID, folderID uuid.UUID, name string) (*domain.Folder, error) {
	if mock.RenameFunc == nil {
		panic("folderRepoMock.RenameFunc: method is nil but folderRepo.Rename was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		OwnerID  uuid.UUID
		FolderID uuid.UUID
		Name     string
	}{Ctx: ctx, OwnerID: ownerID, FolderID: folderID, Name: name}
	mock.lockRename.Lock()
	mock.calls.Rename = append(mock.calls.Rename, callInfo)
	mock.lockRename.Unlock()
	return mock.RenameFunc(ctx, ownerID, folderID, name)
}

func (mock *folderRepoMock) RenameCalls() []struct {
	Ctx      context.Context
	OwnerID  uuid.UUID
	FolderID uuid.UUID
	Name     string
} {
	mock.lockRename.RLock()
	calls := mock.calls.Rename
	mock.lockRename.RUnlock()
	return calls
}

func (mock *folderRepoMock) Delete(ctx context.Context, ownerID, folderID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("folderRepoMock.DeleteFunc: method is nil but folderRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		OwnerID  uuid.UUID
		FolderID uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID, FolderID: folderID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, ownerID, folderID)
}

func (mock *folderRepoMock) DeleteCalls() []struct {
	Ctx      context.Context
	OwnerID  uuid.UUID
	FolderID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
