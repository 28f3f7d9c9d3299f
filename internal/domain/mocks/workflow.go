// Package mocks provides testify mocks of the domain interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/mouse-blink/casereach/internal/domain"
)

// MockWorkflow is a testify mock of domain.Workflow.
type MockWorkflow struct {
	mock.Mock
}

// MockWorkflow_Expecter records typed expectations on a MockWorkflow.
type MockWorkflow_Expecter struct {
	mock *mock.Mock
}

// EXPECT returns the expecter of _m.
func (_m *MockWorkflow) EXPECT() *MockWorkflow_Expecter {
	return &MockWorkflow_Expecter{mock: &_m.Mock}
}

// Estimate provides a mock function with the given fields.
func (_m *MockWorkflow) Estimate(args domain.EstimateArgs) error {
	ret := _m.Called(args)

	return ret.Error(0)
}

// MockWorkflow_Estimate_Call is a typed expectation for Estimate.
type MockWorkflow_Estimate_Call struct {
	*mock.Call
}

// Estimate is a helper method to define mock.On call.
func (_e *MockWorkflow_Expecter) Estimate(args interface{}) *MockWorkflow_Estimate_Call {
	return &MockWorkflow_Estimate_Call{Call: _e.mock.On("Estimate", args)}
}

func (_c *MockWorkflow_Estimate_Call) Run(run func(args domain.EstimateArgs)) *MockWorkflow_Estimate_Call {
	_c.Call.Run(func(args mock.Arguments) {
		_r0, _ := args[0].(domain.EstimateArgs)
		run(_r0)
	})

	return _c
}

func (_c *MockWorkflow_Estimate_Call) Return(_a0 error) *MockWorkflow_Estimate_Call {
	_c.Call.Return(_a0)

	return _c
}

// Run provides a mock function with the given fields.
func (_m *MockWorkflow) Run(ctx context.Context, args domain.RunArgs) (domain.BatchResult, error) {
	ret := _m.Called(ctx, args)

	r0, _ := ret.Get(0).(domain.BatchResult)

	return r0, ret.Error(1)
}

// MockWorkflow_Run_Call is a typed expectation for Run.
type MockWorkflow_Run_Call struct {
	*mock.Call
}

// Run is a helper method to define mock.On call.
func (_e *MockWorkflow_Expecter) Run(ctx interface{}, args interface{}) *MockWorkflow_Run_Call {
	return &MockWorkflow_Run_Call{Call: _e.mock.On("Run", ctx, args)}
}

func (_c *MockWorkflow_Run_Call) Run(run func(ctx context.Context, args domain.RunArgs)) *MockWorkflow_Run_Call {
	_c.Call.Run(func(args mock.Arguments) {
		_r0, _ := args[0].(context.Context)
		_r1, _ := args[1].(domain.RunArgs)
		run(_r0, _r1)
	})

	return _c
}

func (_c *MockWorkflow_Run_Call) Return(_a0 domain.BatchResult, _a1 error) *MockWorkflow_Run_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

// View provides a mock function with the given fields.
func (_m *MockWorkflow) View(args domain.ViewArgs) error {
	ret := _m.Called(args)

	return ret.Error(0)
}

// MockWorkflow_View_Call is a typed expectation for View.
type MockWorkflow_View_Call struct {
	*mock.Call
}

// View is a helper method to define mock.On call.
func (_e *MockWorkflow_Expecter) View(args interface{}) *MockWorkflow_View_Call {
	return &MockWorkflow_View_Call{Call: _e.mock.On("View", args)}
}

func (_c *MockWorkflow_View_Call) Run(run func(args domain.ViewArgs)) *MockWorkflow_View_Call {
	_c.Call.Run(func(args mock.Arguments) {
		_r0, _ := args[0].(domain.ViewArgs)
		run(_r0)
	})

	return _c
}

func (_c *MockWorkflow_View_Call) Return(_a0 error) *MockWorkflow_View_Call {
	_c.Call.Return(_a0)

	return _c
}

// NewMockWorkflow creates a MockWorkflow that asserts its expectations when the test ends.
func NewMockWorkflow(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockWorkflow {
	mock := &MockWorkflow{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
