package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/codeboltai/codebolt-go/tools/schemas"
)

// Command patterns refused before anything is sent to the host.
var dangerousPatterns = []string{
	"rm -rf /", "rm -rf ~", "rm -rf *",
	"mkfs", "fdisk ", "dd if=", "dd of=",
	"> /dev/sd", "of=/dev/sd", "of=/dev/hd",
	"chmod 777 /", "chmod 000",
	":(){ :|:& };:",
}

func isDangerousCommand(command string) bool {
	cmdLower := strings.ToLower(command)
	for _, pattern := range dangerousPatterns {
		if strings.Contains(cmdLower, pattern) {
			return true
		}
	}

	// curl/wget piped into a shell, even with args in between
	if (strings.Contains(cmdLower, "curl") || strings.Contains(cmdLower, "wget")) &&
		(strings.Contains(cmdLower, "| sh") || strings.Contains(cmdLower, "| bash") ||
			strings.Contains(cmdLower, "|sh") || strings.Contains(cmdLower, "|bash")) {
		return true
	}
	return false
}

// TerminalTools builds the terminal tool.
func TerminalTools(sh Shell) []Tool {
	return []Tool{
		newTool("execute_command",
			"Run a shell command in the project terminal and return its output.",
			func(p *schemas.ExecuteCommandParams) error {
				if err := required("command", p.Command); err != nil {
					return err
				}
				if isDangerousCommand(p.Command) {
					return fmt.Errorf("command blocked: %q could damage the system", p.Command)
				}
				return nil
			},
			func(ctx context.Context, p *schemas.ExecuteCommandParams) (Result, error) {
				res, err := sh.ExecuteCommand(ctx, p.Command, p.ReturnEmptyStringOnSuccess)
				if err != nil {
					return Result{}, err
				}
				content := res.Output
				if res.Stderr != "" {
					content += "\n[stderr]\n" + res.Stderr
				}
				if res.ExitCode != 0 {
					content += fmt.Sprintf("\n[exit code %d]", res.ExitCode)
				}
				return Result{
					LLMContent:    content,
					ReturnDisplay: fmt.Sprintf("Ran %q (exit %d)", p.Command, res.ExitCode),
				}, nil
			}),
	}
}
