package fibonacci

import (
	"context"
	"math/big"
	"reflect"

	"github.com/golang/mock/gomock"
)

// mockCore is a gomock double for coreCalculator. The generated mocks package
// cannot be imported from here without a cycle, so the in-package tests keep
// their own copy.
type mockCore struct {
	ctrl     *gomock.Controller
	recorder *mockCoreRecorder
}

type mockCoreRecorder struct {
	mock *mockCore
}

func newMockCore(ctrl *gomock.Controller) *mockCore {
	m := &mockCore{ctrl: ctrl}
	m.recorder = &mockCoreRecorder{m}
	return m
}

func (m *mockCore) EXPECT() *mockCoreRecorder { return m.recorder }

func (m *mockCore) CalculateCore(ctx context.Context, reporter ProgressReporter, n uint64, opts Options) (*big.Int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CalculateCore", ctx, reporter, n, opts)
	ret0, _ := ret[0].(*big.Int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *mockCoreRecorder) CalculateCore(ctx, reporter, n, opts interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CalculateCore", reflect.TypeOf((*mockCore)(nil).CalculateCore), ctx, reporter, n, opts)
}

func (m *mockCore) Name() string {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Name")
	ret0, _ := ret[0].(string)
	return ret0
}

func (mr *mockCoreRecorder) Name() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Name", reflect.TypeOf((*mockCore)(nil).Name))
}
