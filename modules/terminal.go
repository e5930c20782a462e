package modules

import "context"

// CommandResult is the outcome of a shell command.
type CommandResult struct {
	Output   string `json:"output"`
	Stderr   string `json:"stderr,omitempty"`
	ExitCode int    `json:"exitCode"`
}

// Terminal runs shell commands on the host.
type Terminal struct{ module }

// ExecuteCommand runs command and waits for it to finish. A non-zero exit
// code is reported in the result, not as an error.
func (t *Terminal) ExecuteCommand(ctx context.Context, command string, returnEmptyStringOnSuccess bool) (*CommandResult, error) {
	var resp CommandResult
	data := map[string]any{
		"command":                    command,
		"returnEmptyStringOnSuccess": returnEmptyStringOnSuccess,
	}
	if err := t.call(ctx, "executeCommand", data, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
