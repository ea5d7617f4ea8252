package commands

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okra-platform/skelgen/internal/config"
)

// Test plan:
// 1. Test successful config creation flow
// 2. Test refusing to overwrite an existing skelgen.json
// 3. Test working directory and write errors
// 4. Test path validation
// 5. Test form input with tea.WithInput

type mockFileSystem struct {
	statCalls    []string
	writeFileErr error
	cwd          string
	cwdErr       error
	files        map[string]bool
	written      map[string][]byte
}

func (m *mockFileSystem) Stat(name string) (os.FileInfo, error) {
	m.statCalls = append(m.statCalls, name)
	if m.files != nil && m.files[name] {
		return nil, nil
	}
	return nil, os.ErrNotExist
}

func (m *mockFileSystem) WriteFile(name string, data []byte, perm os.FileMode) error {
	if m.writeFileErr != nil {
		return m.writeFileErr
	}
	if m.written == nil {
		m.written = map[string][]byte{}
	}
	m.written[name] = data
	return nil
}

func (m *mockFileSystem) Getwd() (string, error) {
	if m.cwdErr != nil {
		return "", m.cwdErr
	}
	if m.cwd == "" {
		return "/work", nil
	}
	return m.cwd, nil
}

func TestInitCommand_Run_FullFlow(t *testing.T) {
	// Test: complete successful flow with test options
	mockFS := &mockFileSystem{cwd: "/test/project"}

	cmd := &InitCommand{
		filesystem: mockFS,
		testOptions: &InitOptions{
			Input:   "car.txt",
			Output:  "gen/car.txt",
			Mode:    "english",
			Targets: []string{"python", "java"},
		},
	}

	err := cmd.Run(context.Background())
	require.NoError(t, err)

	data, ok := mockFS.written["/test/project/"+config.FileName]
	require.True(t, ok, "config written to the working directory")

	var got config.Config
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "car.txt", got.Input)
	assert.Equal(t, "gen/car.txt", got.Output)
	assert.Equal(t, "english", got.Mode)
	assert.Equal(t, []string{"python", "java"}, got.Targets)
	assert.True(t, strings.HasSuffix(string(data), "}\n"))
}

func TestInitCommand_Run_ExistingConfig(t *testing.T) {
	// Test: an existing skelgen.json is never overwritten
	mockFS := &mockFileSystem{
		cwd:   "/test/project",
		files: map[string]bool{"/test/project/" + config.FileName: true},
	}

	cmd := &InitCommand{
		filesystem:  mockFS,
		testOptions: &InitOptions{Input: "in.txt", Output: "out.txt", Mode: "auto"},
	}

	err := cmd.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
	assert.Empty(t, mockFS.written)
}

func TestInitCommand_Run_Errors(t *testing.T) {
	tests := []struct {
		name        string
		fs          *mockFileSystem
		errContains string
	}{
		{
			name:        "working directory unavailable",
			fs:          &mockFileSystem{cwdErr: errors.New("gone")},
			errContains: "failed to get current directory",
		},
		{
			name:        "write fails",
			fs:          &mockFileSystem{writeFileErr: os.ErrPermission},
			errContains: "failed to write " + config.FileName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &InitCommand{
				filesystem:  tt.fs,
				testOptions: &InitOptions{Input: "in.txt", Output: "out.txt", Mode: "auto"},
			}

			err := cmd.Run(context.Background())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestValidatePath(t *testing.T) {
	assert.NoError(t, validatePath("input.txt"))
	assert.Error(t, validatePath(""))
	assert.Error(t, validatePath("   "))
}

func TestInitCommand_createInitForm(t *testing.T) {
	// Test: the form builds with every registered target
	cmd := &InitCommand{filesystem: &mockFileSystem{}}
	form := cmd.createInitForm(&InitOptions{})
	assert.NotNil(t, form)
}

// Integration test for the form - skip in CI but useful for local development
func TestInitCommand_promptInitOptions_Interactive(t *testing.T) {
	// Always skip this test in automated runs to prevent deadlocks
	if os.Getenv("INTERACTIVE_TEST") != "true" {
		t.Skip("Skipping interactive test. Set INTERACTIVE_TEST=true to run")
	}

	// Test: form accepts input via tea.WithInput
	cmd := &InitCommand{filesystem: &mockFileSystem{}}

	// Accept both path defaults, arrow down to declaration, submit without targets
	input := strings.NewReader("\n\n\x1b[B\n\n")

	options, err := cmd.promptInitOptions(
		tea.WithInput(input),
		tea.WithoutRenderer(),
	)
	require.NoError(t, err)
	assert.Equal(t, "input.txt", options.Input)
	assert.Equal(t, "output.txt", options.Output)
	assert.Equal(t, "declaration", options.Mode)
}
