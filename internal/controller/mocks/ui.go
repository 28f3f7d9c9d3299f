// Package mocks provides testify mocks of the controller interfaces.
package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/mouse-blink/casereach/internal/controller"
	m "github.com/mouse-blink/casereach/internal/model"
)

// MockUI is a testify mock of controller.UI.
type MockUI struct {
	mock.Mock
}

// MockUI_Expecter records typed expectations on a MockUI.
type MockUI_Expecter struct {
	mock *mock.Mock
}

// EXPECT returns the expecter of _m.
func (_m *MockUI) EXPECT() *MockUI_Expecter {
	return &MockUI_Expecter{mock: &_m.Mock}
}

// Start provides a mock function with the given fields.
func (_m *MockUI) Start(options ...controller.StartOption) error {
	_ca := make([]interface{}, 0, len(options))
	for _, _o := range options {
		_ca = append(_ca, _o)
	}

	ret := _m.Called(_ca...)

	return ret.Error(0)
}

// MockUI_Start_Call is a typed expectation for Start.
type MockUI_Start_Call struct {
	*mock.Call
}

// Start is a helper method to define mock.On call.
func (_e *MockUI_Expecter) Start(options ...interface{}) *MockUI_Start_Call {
	return &MockUI_Start_Call{Call: _e.mock.On("Start", options...)}
}

func (_c *MockUI_Start_Call) Return(_a0 error) *MockUI_Start_Call {
	_c.Call.Return(_a0)

	return _c
}

// Close provides a mock function with the given fields.
func (_m *MockUI) Close() {
	_m.Called()
}

// MockUI_Close_Call is a typed expectation for Close.
type MockUI_Close_Call struct {
	*mock.Call
}

// Close is a helper method to define mock.On call.
func (_e *MockUI_Expecter) Close() *MockUI_Close_Call {
	return &MockUI_Close_Call{Call: _e.mock.On("Close")}
}

func (_c *MockUI_Close_Call) Run(run func()) *MockUI_Close_Call {
	_c.Call.Run(func(_ mock.Arguments) {
		run()
	})

	return _c
}

func (_c *MockUI_Close_Call) Return() *MockUI_Close_Call {
	_c.Call.Return()

	return _c
}

// Wait provides a mock function with the given fields.
func (_m *MockUI) Wait() {
	_m.Called()
}

// MockUI_Wait_Call is a typed expectation for Wait.
type MockUI_Wait_Call struct {
	*mock.Call
}

// Wait is a helper method to define mock.On call.
func (_e *MockUI_Expecter) Wait() *MockUI_Wait_Call {
	return &MockUI_Wait_Call{Call: _e.mock.On("Wait")}
}

func (_c *MockUI_Wait_Call) Run(run func()) *MockUI_Wait_Call {
	_c.Call.Run(func(_ mock.Arguments) {
		run()
	})

	return _c
}

func (_c *MockUI_Wait_Call) Return() *MockUI_Wait_Call {
	_c.Call.Return()

	return _c
}

// DisplayEstimation provides a mock function with the given fields.
func (_m *MockUI) DisplayEstimation(estimates []m.Estimate, err error) error {
	ret := _m.Called(estimates, err)

	return ret.Error(0)
}

// MockUI_DisplayEstimation_Call is a typed expectation for DisplayEstimation.
type MockUI_DisplayEstimation_Call struct {
	*mock.Call
}

// DisplayEstimation is a helper method to define mock.On call.
func (_e *MockUI_Expecter) DisplayEstimation(estimates interface{}, err interface{}) *MockUI_DisplayEstimation_Call {
	return &MockUI_DisplayEstimation_Call{Call: _e.mock.On("DisplayEstimation", estimates, err)}
}

func (_c *MockUI_DisplayEstimation_Call) Run(run func(estimates []m.Estimate, err error)) *MockUI_DisplayEstimation_Call {
	_c.Call.Run(func(args mock.Arguments) {
		_r0, _ := args[0].([]m.Estimate)
		_r1, _ := args[1].(error)
		run(_r0, _r1)
	})

	return _c
}

func (_c *MockUI_DisplayEstimation_Call) Return(_a0 error) *MockUI_DisplayEstimation_Call {
	_c.Call.Return(_a0)

	return _c
}

// DisplayConcurrencyInfo provides a mock function with the given fields.
func (_m *MockUI) DisplayConcurrencyInfo(threads int, shardIndex int, shardCount int) {
	_m.Called(threads, shardIndex, shardCount)
}

// MockUI_DisplayConcurrencyInfo_Call is a typed expectation for DisplayConcurrencyInfo.
type MockUI_DisplayConcurrencyInfo_Call struct {
	*mock.Call
}

// DisplayConcurrencyInfo is a helper method to define mock.On call.
func (_e *MockUI_Expecter) DisplayConcurrencyInfo(threads interface{}, shardIndex interface{}, shardCount interface{}) *MockUI_DisplayConcurrencyInfo_Call {
	return &MockUI_DisplayConcurrencyInfo_Call{Call: _e.mock.On("DisplayConcurrencyInfo", threads, shardIndex, shardCount)}
}

func (_c *MockUI_DisplayConcurrencyInfo_Call) Run(run func(threads int, shardIndex int, shardCount int)) *MockUI_DisplayConcurrencyInfo_Call {
	_c.Call.Run(func(args mock.Arguments) {
		_r0, _ := args[0].(int)
		_r1, _ := args[1].(int)
		_r2, _ := args[2].(int)
		run(_r0, _r1, _r2)
	})

	return _c
}

func (_c *MockUI_DisplayConcurrencyInfo_Call) Return() *MockUI_DisplayConcurrencyInfo_Call {
	_c.Call.Return()

	return _c
}

// DisplayUpcomingInfo provides a mock function with the given fields.
func (_m *MockUI) DisplayUpcomingInfo(statements int) {
	_m.Called(statements)
}

// MockUI_DisplayUpcomingInfo_Call is a typed expectation for DisplayUpcomingInfo.
type MockUI_DisplayUpcomingInfo_Call struct {
	*mock.Call
}

// DisplayUpcomingInfo is a helper method to define mock.On call.
func (_e *MockUI_Expecter) DisplayUpcomingInfo(statements interface{}) *MockUI_DisplayUpcomingInfo_Call {
	return &MockUI_DisplayUpcomingInfo_Call{Call: _e.mock.On("DisplayUpcomingInfo", statements)}
}

func (_c *MockUI_DisplayUpcomingInfo_Call) Run(run func(statements int)) *MockUI_DisplayUpcomingInfo_Call {
	_c.Call.Run(func(args mock.Arguments) {
		_r0, _ := args[0].(int)
		run(_r0)
	})

	return _c
}

func (_c *MockUI_DisplayUpcomingInfo_Call) Return() *MockUI_DisplayUpcomingInfo_Call {
	_c.Call.Return()

	return _c
}

// DisplayStartingAnalysis provides a mock function with the given fields.
func (_m *MockUI) DisplayStartingAnalysis(source m.Path, statement string, threadID int) {
	_m.Called(source, statement, threadID)
}

// MockUI_DisplayStartingAnalysis_Call is a typed expectation for DisplayStartingAnalysis.
type MockUI_DisplayStartingAnalysis_Call struct {
	*mock.Call
}

// DisplayStartingAnalysis is a helper method to define mock.On call.
func (_e *MockUI_Expecter) DisplayStartingAnalysis(source interface{}, statement interface{}, threadID interface{}) *MockUI_DisplayStartingAnalysis_Call {
	return &MockUI_DisplayStartingAnalysis_Call{Call: _e.mock.On("DisplayStartingAnalysis", source, statement, threadID)}
}

func (_c *MockUI_DisplayStartingAnalysis_Call) Run(run func(source m.Path, statement string, threadID int)) *MockUI_DisplayStartingAnalysis_Call {
	_c.Call.Run(func(args mock.Arguments) {
		_r0, _ := args[0].(m.Path)
		_r1, _ := args[1].(string)
		_r2, _ := args[2].(int)
		run(_r0, _r1, _r2)
	})

	return _c
}

func (_c *MockUI_DisplayStartingAnalysis_Call) Return() *MockUI_DisplayStartingAnalysis_Call {
	_c.Call.Return()

	return _c
}

// DisplayCompletedAnalysis provides a mock function with the given fields.
func (_m *MockUI) DisplayCompletedAnalysis(source m.Path, statement string, findings []m.Finding) {
	_m.Called(source, statement, findings)
}

// MockUI_DisplayCompletedAnalysis_Call is a typed expectation for DisplayCompletedAnalysis.
type MockUI_DisplayCompletedAnalysis_Call struct {
	*mock.Call
}

// DisplayCompletedAnalysis is a helper method to define mock.On call.
func (_e *MockUI_Expecter) DisplayCompletedAnalysis(source interface{}, statement interface{}, findings interface{}) *MockUI_DisplayCompletedAnalysis_Call {
	return &MockUI_DisplayCompletedAnalysis_Call{Call: _e.mock.On("DisplayCompletedAnalysis", source, statement, findings)}
}

func (_c *MockUI_DisplayCompletedAnalysis_Call) Run(run func(source m.Path, statement string, findings []m.Finding)) *MockUI_DisplayCompletedAnalysis_Call {
	_c.Call.Run(func(args mock.Arguments) {
		_r0, _ := args[0].(m.Path)
		_r1, _ := args[1].(string)
		_r2, _ := args[2].([]m.Finding)
		run(_r0, _r1, _r2)
	})

	return _c
}

func (_c *MockUI_DisplayCompletedAnalysis_Call) Return() *MockUI_DisplayCompletedAnalysis_Call {
	_c.Call.Return()

	return _c
}

// DisplayReports provides a mock function with the given fields.
func (_m *MockUI) DisplayReports(reports []m.Report) error {
	ret := _m.Called(reports)

	return ret.Error(0)
}

// MockUI_DisplayReports_Call is a typed expectation for DisplayReports.
type MockUI_DisplayReports_Call struct {
	*mock.Call
}

// DisplayReports is a helper method to define mock.On call.
func (_e *MockUI_Expecter) DisplayReports(reports interface{}) *MockUI_DisplayReports_Call {
	return &MockUI_DisplayReports_Call{Call: _e.mock.On("DisplayReports", reports)}
}

func (_c *MockUI_DisplayReports_Call) Run(run func(reports []m.Report)) *MockUI_DisplayReports_Call {
	_c.Call.Run(func(args mock.Arguments) {
		_r0, _ := args[0].([]m.Report)
		run(_r0)
	})

	return _c
}

func (_c *MockUI_DisplayReports_Call) Return(_a0 error) *MockUI_DisplayReports_Call {
	_c.Call.Return(_a0)

	return _c
}

// NewMockUI creates a MockUI that asserts its expectations when the test ends.
func NewMockUI(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUI {
	mock := &MockUI{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
