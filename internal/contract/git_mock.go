package contract

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockGitClient is a testify mock for the GitClient type.
type MockGitClient struct {
	mock.Mock
}

var _ GitClient = &MockGitClient{} // Compile-time check

// Run implements the GitClient interface.
func (m *MockGitClient) Run(ctx context.Context, repoPath string, args ...string) ([]byte, error) {
	mockArgs := []interface{}{ctx, repoPath}
	for _, arg := range args {
		mockArgs = append(mockArgs, arg)
	}
	ret := m.Called(mockArgs...)
	out, _ := ret.Get(0).([]byte)
	return out, ret.Error(1)
}

// CurrentBranch implements the GitClient interface.
func (m *MockGitClient) CurrentBranch(ctx context.Context, repoPath string) (string, error) {
	ret := m.Called(ctx, repoPath)
	branch, _ := ret.Get(0).(string)
	return branch, ret.Error(1)
}

// LastCommitEpoch implements the GitClient interface.
func (m *MockGitClient) LastCommitEpoch(ctx context.Context, repoPath string) (int64, error) {
	ret := m.Called(ctx, repoPath)
	epoch, _ := ret.Get(0).(int64)
	return epoch, ret.Error(1)
}

// StatusLines implements the GitClient interface.
func (m *MockGitClient) StatusLines(ctx context.Context, repoPath string) ([]string, error) {
	ret := m.Called(ctx, repoPath)
	lines, _ := ret.Get(0).([]string)
	return lines, ret.Error(1)
}

// AheadBehind implements the GitClient interface.
func (m *MockGitClient) AheadBehind(ctx context.Context, repoPath string) (int, int, error) {
	ret := m.Called(ctx, repoPath)
	ahead, _ := ret.Get(0).(int)
	behind, _ := ret.Get(1).(int)
	return ahead, behind, ret.Error(2)
}
