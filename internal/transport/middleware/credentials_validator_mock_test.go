package middleware

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var _ credentialsValidator = &credentialsValidatorMock{}

type credentialsValidatorMock struct {
	ValidateTokenFunc   func(ctx context.Context, token string) (uuid.UUID, error)
	ValidateSessionFunc func(ctx context.Context, rawToken string) (uuid.UUID, string, error)

	calls struct {
		ValidateToken []struct {
			Ctx   context.Context
			Token string
		}
		ValidateSession []struct {
			Ctx      context.Context
			RawToken string
		}
	}
	lockValidateToken   sync.RWMutex
	lockValidateSession sync.RWMutex
}

func (mock *credentialsValidatorMock) ValidateToken(ctx context.Context, token string) (uuid.UUID, error) {
	if mock.ValidateTokenFunc == nil {
		panic("credentialsValidatorMock.ValidateTokenFunc: method is nil but credentialsValidator.ValidateToken was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Token string
	}{Ctx: ctx, Token: token}
	mock.lockValidateToken.Lock()
	mock.calls.ValidateToken = append(mock.calls.ValidateToken, callInfo)
	mock.lockValidateToken.Unlock()
	return mock.ValidateTokenFunc(ctx, token)
}

func (mock *credentialsValidatorMock) ValidateTokenCalls() []struct {
	Ctx   context.Context
	Token string
} {
	mock.lockValidateToken.RLock()
	calls := mock.calls.ValidateToken
	mock.lockValidateToken.RUnlock()
	return calls
}

func (mock *credentialsValidatorMock) ValidateSession(ctx context.Context, rawToken string) (uuid.UUID, string, error) {
	if mock.ValidateSessionFunc == nil {
		panic("credentialsValidatorMock.ValidateSessionFunc: method is nil but credentialsValidator.ValidateSession was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		RawToken string
	}{Ctx: ctx, RawToken: rawToken}
	mock.lockValidateSession.Lock()
	mock.calls.ValidateSession = append(mock.calls.ValidateSession, callInfo)
	mock.lockValidateSession.Unlock()
	return mock.ValidateSessionFunc(ctx, rawToken)
}

func (mock *credentialsValidatorMock) ValidateSessionCalls() []struct {
	Ctx      context.Context
	RawToken string
} {
	mock.lockValidateSession.RLock()
	calls := mock.calls.ValidateSession
	mock.lockValidateSession.RUnlock()
	return calls
}
