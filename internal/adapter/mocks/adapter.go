// Package mocks provides testify mocks of the adapter interfaces.
package mocks

import (
	"os"

	"github.com/stretchr/testify/mock"

	"github.com/mouse-blink/casereach/internal/adapter"
	m "github.com/mouse-blink/casereach/internal/model"
)

// MockSourceFSAdapter is a testify mock of adapter.SourceFSAdapter.
type MockSourceFSAdapter struct {
	mock.Mock
}

// MockSourceFSAdapter_Expecter records typed expectations on a MockSourceFSAdapter.
type MockSourceFSAdapter_Expecter struct {
	mock *mock.Mock
}

// EXPECT returns the expecter of _m.
func (_m *MockSourceFSAdapter) EXPECT() *MockSourceFSAdapter_Expecter {
	return &MockSourceFSAdapter_Expecter{mock: &_m.Mock}
}

// Get provides a mock function with the given fields.
func (_m *MockSourceFSAdapter) Get(roots []m.Path) ([]m.Source, error) {
	ret := _m.Called(roots)

	r0, _ := ret.Get(0).([]m.Source)

	return r0, ret.Error(1)
}

// MockSourceFSAdapter_Get_Call is a typed expectation for Get.
type MockSourceFSAdapter_Get_Call struct {
	*mock.Call
}

// Get is a helper method to define mock.On call.
func (_e *MockSourceFSAdapter_Expecter) Get(roots interface{}) *MockSourceFSAdapter_Get_Call {
	return &MockSourceFSAdapter_Get_Call{Call: _e.mock.On("Get", roots)}
}

func (_c *MockSourceFSAdapter_Get_Call) Run(run func(roots []m.Path)) *MockSourceFSAdapter_Get_Call {
	_c.Call.Run(func(args mock.Arguments) {
		_r0, _ := args[0].([]m.Path)
		run(_r0)
	})

	return _c
}

func (_c *MockSourceFSAdapter_Get_Call) Return(_a0 []m.Source, _a1 error) *MockSourceFSAdapter_Get_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

// Walk provides a mock function with the given fields.
func (_m *MockSourceFSAdapter) Walk(root m.Path, recursive bool, fn adapter.FilepathWalkFunc) error {
	ret := _m.Called(root, recursive, fn)

	return ret.Error(0)
}

// MockSourceFSAdapter_Walk_Call is a typed expectation for Walk.
type MockSourceFSAdapter_Walk_Call struct {
	*mock.Call
}

// Walk is a helper method to define mock.On call.
func (_e *MockSourceFSAdapter_Expecter) Walk(root interface{}, recursive interface{}, fn interface{}) *MockSourceFSAdapter_Walk_Call {
	return &MockSourceFSAdapter_Walk_Call{Call: _e.mock.On("Walk", root, recursive, fn)}
}

func (_c *MockSourceFSAdapter_Walk_Call) Run(run func(root m.Path, recursive bool, fn adapter.FilepathWalkFunc)) *MockSourceFSAdapter_Walk_Call {
	_c.Call.Run(func(args mock.Arguments) {
		_r0, _ := args[0].(m.Path)
		_r1, _ := args[1].(bool)
		_r2, _ := args[2].(adapter.FilepathWalkFunc)
		run(_r0, _r1, _r2)
	})

	return _c
}

func (_c *MockSourceFSAdapter_Walk_Call) Return(_a0 error) *MockSourceFSAdapter_Walk_Call {
	_c.Call.Return(_a0)

	return _c
}

// ReadFile provides a mock function with the given fields.
func (_m *MockSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	ret := _m.Called(path)

	r0, _ := ret.Get(0).([]byte)

	return r0, ret.Error(1)
}

// MockSourceFSAdapter_ReadFile_Call is a typed expectation for ReadFile.
type MockSourceFSAdapter_ReadFile_Call struct {
	*mock.Call
}

// ReadFile is a helper method to define mock.On call.
func (_e *MockSourceFSAdapter_Expecter) ReadFile(path interface{}) *MockSourceFSAdapter_ReadFile_Call {
	return &MockSourceFSAdapter_ReadFile_Call{Call: _e.mock.On("ReadFile", path)}
}

func (_c *MockSourceFSAdapter_ReadFile_Call) Run(run func(path m.Path)) *MockSourceFSAdapter_ReadFile_Call {
	_c.Call.Run(func(args mock.Arguments) {
		_r0, _ := args[0].(m.Path)
		run(_r0)
	})

	return _c
}

func (_c *MockSourceFSAdapter_ReadFile_Call) Return(_a0 []byte, _a1 error) *MockSourceFSAdapter_ReadFile_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

// HashFile provides a mock function with the given fields.
func (_m *MockSourceFSAdapter) HashFile(path m.Path) (string, error) {
	ret := _m.Called(path)

	r0, _ := ret.Get(0).(string)

	return r0, ret.Error(1)
}

// MockSourceFSAdapter_HashFile_Call is a typed expectation for HashFile.
type MockSourceFSAdapter_HashFile_Call struct {
	*mock.Call
}

// HashFile is a helper method to define mock.On call.
func (_e *MockSourceFSAdapter_Expecter) HashFile(path interface{}) *MockSourceFSAdapter_HashFile_Call {
	return &MockSourceFSAdapter_HashFile_Call{Call: _e.mock.On("HashFile", path)}
}

func (_c *MockSourceFSAdapter_HashFile_Call) Run(run func(path m.Path)) *MockSourceFSAdapter_HashFile_Call {
	_c.Call.Run(func(args mock.Arguments) {
		_r0, _ := args[0].(m.Path)
		run(_r0)
	})

	return _c
}

func (_c *MockSourceFSAdapter_HashFile_Call) Return(_a0 string, _a1 error) *MockSourceFSAdapter_HashFile_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

// FileInfo provides a mock function with the given fields.
func (_m *MockSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	ret := _m.Called(path)

	r0, _ := ret.Get(0).(os.FileInfo)

	return r0, ret.Error(1)
}

// MockSourceFSAdapter_FileInfo_Call is a typed expectation for FileInfo.
type MockSourceFSAdapter_FileInfo_Call struct {
	*mock.Call
}

// FileInfo is a helper method to define mock.On call.
func (_e *MockSourceFSAdapter_Expecter) FileInfo(path interface{}) *MockSourceFSAdapter_FileInfo_Call {
	return &MockSourceFSAdapter_FileInfo_Call{Call: _e.mock.On("FileInfo", path)}
}

func (_c *MockSourceFSAdapter_FileInfo_Call) Run(run func(path m.Path)) *MockSourceFSAdapter_FileInfo_Call {
	_c.Call.Run(func(args mock.Arguments) {
		_r0, _ := args[0].(m.Path)
		run(_r0)
	})

	return _c
}

func (_c *MockSourceFSAdapter_FileInfo_Call) Return(_a0 os.FileInfo, _a1 error) *MockSourceFSAdapter_FileInfo_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

// NewMockSourceFSAdapter creates a MockSourceFSAdapter that asserts its expectations when the test ends.
func NewMockSourceFSAdapter(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSourceFSAdapter {
	mock := &MockSourceFSAdapter{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

// MockModuleAdapter is a testify mock of adapter.ModuleAdapter.
type MockModuleAdapter struct {
	mock.Mock
}

// MockModuleAdapter_Expecter records typed expectations on a MockModuleAdapter.
type MockModuleAdapter_Expecter struct {
	mock *mock.Mock
}

// EXPECT returns the expecter of _m.
func (_m *MockModuleAdapter) EXPECT() *MockModuleAdapter_Expecter {
	return &MockModuleAdapter_Expecter{mock: &_m.Mock}
}

// Parse provides a mock function with the given fields.
func (_m *MockModuleAdapter) Parse(filename string, src []byte) (*m.Module, error) {
	ret := _m.Called(filename, src)

	r0, _ := ret.Get(0).(*m.Module)

	return r0, ret.Error(1)
}

// MockModuleAdapter_Parse_Call is a typed expectation for Parse.
type MockModuleAdapter_Parse_Call struct {
	*mock.Call
}

// Parse is a helper method to define mock.On call.
func (_e *MockModuleAdapter_Expecter) Parse(filename interface{}, src interface{}) *MockModuleAdapter_Parse_Call {
	return &MockModuleAdapter_Parse_Call{Call: _e.mock.On("Parse", filename, src)}
}

func (_c *MockModuleAdapter_Parse_Call) Run(run func(filename string, src []byte)) *MockModuleAdapter_Parse_Call {
	_c.Call.Run(func(args mock.Arguments) {
		_r0, _ := args[0].(string)
		_r1, _ := args[1].([]byte)
		run(_r0, _r1)
	})

	return _c
}

func (_c *MockModuleAdapter_Parse_Call) Return(_a0 *m.Module, _a1 error) *MockModuleAdapter_Parse_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

// NewMockModuleAdapter creates a MockModuleAdapter that asserts its expectations when the test ends.
func NewMockModuleAdapter(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockModuleAdapter {
	mock := &MockModuleAdapter{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

// MockReportStore is a testify mock of adapter.ReportStore.
type MockReportStore struct {
	mock.Mock
}

// MockReportStore_Expecter records typed expectations on a MockReportStore.
type MockReportStore_Expecter struct {
	mock *mock.Mock
}

// EXPECT returns the expecter of _m.
func (_m *MockReportStore) EXPECT() *MockReportStore_Expecter {
	return &MockReportStore_Expecter{mock: &_m.Mock}
}

// SaveReports provides a mock function with the given fields.
func (_m *MockReportStore) SaveReports(path m.Path, reports []m.Report) error {
	ret := _m.Called(path, reports)

	return ret.Error(0)
}

// MockReportStore_SaveReports_Call is a typed expectation for SaveReports.
type MockReportStore_SaveReports_Call struct {
	*mock.Call
}

// SaveReports is a helper method to define mock.On call.
func (_e *MockReportStore_Expecter) SaveReports(path interface{}, reports interface{}) *MockReportStore_SaveReports_Call {
	return &MockReportStore_SaveReports_Call{Call: _e.mock.On("SaveReports", path, reports)}
}

func (_c *MockReportStore_SaveReports_Call) Run(run func(path m.Path, reports []m.Report)) *MockReportStore_SaveReports_Call {
	_c.Call.Run(func(args mock.Arguments) {
		_r0, _ := args[0].(m.Path)
		_r1, _ := args[1].([]m.Report)
		run(_r0, _r1)
	})

	return _c
}

func (_c *MockReportStore_SaveReports_Call) Return(_a0 error) *MockReportStore_SaveReports_Call {
	_c.Call.Return(_a0)

	return _c
}

// LoadReports provides a mock function with the given fields.
func (_m *MockReportStore) LoadReports(path m.Path) ([]m.Report, error) {
	ret := _m.Called(path)

	r0, _ := ret.Get(0).([]m.Report)

	return r0, ret.Error(1)
}

// MockReportStore_LoadReports_Call is a typed expectation for LoadReports.
type MockReportStore_LoadReports_Call struct {
	*mock.Call
}

// LoadReports is a helper method to define mock.On call.
func (_e *MockReportStore_Expecter) LoadReports(path interface{}) *MockReportStore_LoadReports_Call {
	return &MockReportStore_LoadReports_Call{Call: _e.mock.On("LoadReports", path)}
}

func (_c *MockReportStore_LoadReports_Call) Run(run func(path m.Path)) *MockReportStore_LoadReports_Call {
	_c.Call.Run(func(args mock.Arguments) {
		_r0, _ := args[0].(m.Path)
		run(_r0)
	})

	return _c
}

func (_c *MockReportStore_LoadReports_Call) Return(_a0 []m.Report, _a1 error) *MockReportStore_LoadReports_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

// NewMockReportStore creates a MockReportStore that asserts its expectations when the test ends.
func NewMockReportStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockReportStore {
	mock := &MockReportStore{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
