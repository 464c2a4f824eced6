package tree

import (
	"sync"
)

var _ idGenerator = &idGeneratorMock{}

type idGeneratorMock struct {
	NewIDFunc func() string

	calls struct {
		NewID []struct{}
	}
	lockNewID sync.RWMutex
}

func (mock *idGeneratorMock) NewID() string {
	if mock.NewIDFunc == nil {
		panic("idGeneratorMock.NewIDFunc: method is nil but idGenerator.NewID was just called")
	}
	callInfo := struct{}{}
	mock.lockNewID.Lock()
	mock.calls.NewID = append(mock.calls.NewID, callInfo)
	mock.lockNewID.Unlock()
	return mock.NewIDFunc()
}

func (mock *idGeneratorMock) NewIDCalls() []struct{} {
	mock.lockNewID.RLock()
	calls := mock.calls.NewID
	mock.lockNewID.RUnlock()
	return calls
}
