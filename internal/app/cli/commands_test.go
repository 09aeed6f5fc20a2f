package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Parse(t *testing.T) {
	tests := []struct {
		name             string
		args             []string
		expectedType     CommandType
		expectedPath     string
		expectedInstance string
		expectedNoUI     bool
		expectedFollow   bool
		expectedError    bool
	}{
		{
			name:         "no args - help",
			args:         []string{},
			expectedType: CommandHelp,
		},
		{
			name:         "view command with file",
			args:         []string{"view", "logs/latest.log"},
			expectedType: CommandView,
			expectedPath: "logs/latest.log",
		},
		{
			name:           "view command with follow flag",
			args:           []string{"view", "logs/latest.log", "--follow"},
			expectedType:   CommandView,
			expectedPath:   "logs/latest.log",
			expectedFollow: true,
		},
		{
			name:           "view command with short follow flag",
			args:           []string{"view", "logs/latest.log", "-f"},
			expectedType:   CommandView,
			expectedPath:   "logs/latest.log",
			expectedFollow: true,
		},
		{
			name:         "view alias v",
			args:         []string{"v", "crash.txt"},
			expectedType: CommandView,
			expectedPath: "crash.txt",
		},
		{
			name:          "view command without file",
			args:          []string{"view"},
			expectedError: true,
		},
		{
			name:             "attach command with instance",
			args:             []string{"attach", "fabric-1.21"},
			expectedType:     CommandAttach,
			expectedInstance: "fabric-1.21",
		},
		{
			name:         "attach command without instance",
			args:         []string{"attach"},
			expectedType: CommandAttach,
		},
		{
			name:             "attach alias a",
			args:             []string{"a", "vanilla"},
			expectedType:     CommandAttach,
			expectedInstance: "vanilla",
		},
		{
			name:         "list command",
			args:         []string{"list"},
			expectedType: CommandList,
		},
		{
			name:         "list alias ls",
			args:         []string{"ls"},
			expectedType: CommandList,
		},
		{
			name:         "version command",
			args:         []string{"version"},
			expectedType: CommandVersion,
		},
		{
			name:         "--no-ui flag before view command",
			args:         []string{"--no-ui", "view", "latest.log"},
			expectedType: CommandView,
			expectedPath: "latest.log",
			expectedNoUI: true,
		},
		{
			name:             "--no-ui flag after attach command",
			args:             []string{"attach", "vanilla", "--no-ui"},
			expectedType:     CommandAttach,
			expectedInstance: "vanilla",
			expectedNoUI:     true,
		},
		{
			name:         "help flag",
			args:         []string{"--help"},
			expectedType: CommandHelp,
		},
		{
			name:          "unknown command",
			args:          []string{"unknown"},
			expectedError: true,
		},
		{
			name:          "list with extra args",
			args:          []string{"list", "extra"},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := Parse(tt.args)

			if tt.expectedError {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedType, opts.Type)
			assert.Equal(t, tt.expectedPath, opts.Path)
			assert.Equal(t, tt.expectedInstance, opts.Instance)
			assert.Equal(t, tt.expectedNoUI, opts.NoUI)
			assert.Equal(t, tt.expectedFollow, opts.Follow)
		})
	}
}
