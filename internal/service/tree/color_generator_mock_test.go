package tree

import (
	"sync"
)

var _ colorGenerator = &colorGeneratorMock{}

type colorGeneratorMock struct {
	RandomColorFunc func() string

	calls struct {
		RandomColor []struct{}
	}
	lockRandomColor sync.RWMutex
}

func (mock *colorGeneratorMock) RandomColor() string {
	if mock.RandomColorFunc == nil {
		panic("colorGeneratorMock.RandomColorFunc: method is nil but colorGenerator.RandomColor was just called")
	}
	callInfo := struct{}{}
	mock.lockRandomColor.Lock()
	mock.calls.RandomColor = append(mock.calls.RandomColor, callInfo)
	mock.lockRandomColor.Unlock()
	return mock.RandomColorFunc()
}

func (mock *colorGeneratorMock) RandomColorCalls() []struct{} {
	mock.lockRandomColor.RLock()
	calls := mock.calls.RandomColor
	mock.lockRandomColor.RUnlock()
	return calls
}
