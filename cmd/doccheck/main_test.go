package main

import (
	"os"
	"os/exec"
	"testing"
)

func TestMain(t *testing.T) {
	// Run main in a subprocess so os.Exit does not take down the test
	// runner.
	if os.Getenv("BE_DOCCHECK_MAIN") == "1" {
		main()
		return
	}

	tests := []struct {
		name     string
		args     []string
		wantExit int
	}{
		{
			name:     "help command",
			args:     []string{"--help"},
			wantExit: 0,
		},
		{
			name:     "invalid flag",
			args:     []string{"--invalid-flag"},
			wantExit: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(os.Args[0], "-test.run=TestMain")
			cmd.Env = append(os.Environ(), "BE_DOCCHECK_MAIN=1")
			cmd.Args = append([]string{os.Args[0]}, tt.args...)

			err := cmd.Run()

			if tt.wantExit == 0 && err != nil {
				t.Errorf("expected success but got error: %v", err)
			}
			if tt.wantExit == 1 && err == nil {
				t.Error("expected error but command succeeded")
			}
		})
	}
}
