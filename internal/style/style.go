// Package style runs the advisory pycodestyle pass over a tool project's
// source tree. Style findings never gate readiness; they only feed the
// quality report's recommendations.
package style

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

// defaultTimeout bounds one style subprocess.
const defaultTimeout = 30 * time.Second

// CommandRunner executes the style tool and reports its exit code. A
// non-zero exit is a finding, not an error; failing to launch is an
// error. Tests replace it to avoid spawning real processes.
type CommandRunner func(ctx context.Context, name string, args ...string) (stdout string, exitCode int, err error)

// Checker runs the style tool. The zero value uses pycodestyle with the
// default timeout.
type Checker struct {
	Runner  CommandRunner
	Timeout time.Duration
}

// Advisory is the result of one style pass. The zero value means the
// project had no src tree to check.
type Advisory struct {
	Checkable bool   `json:"style_checkable"`
	Issues    bool   `json:"style_issues"`
	Output    string `json:"style_output,omitempty"`
	Skipped   bool   `json:"style_check_skipped,omitempty"`
}

// Check runs the style tool over projectDir's src tree. A missing src
// dir is not checkable; a missing or timed-out tool marks the advisory
// skipped. Neither is an error.
func (c *Checker) Check(ctx context.Context, projectDir string) Advisory {
	srcDir := filepath.Join(projectDir, "src")
	info, err := os.Stat(srcDir)
	if err != nil || !info.IsDir() {
		return Advisory{}
	}

	runner := c.Runner
	if runner == nil {
		runner = runStyleTool
	}
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	stdout, exitCode, err := runner(ctx, "pycodestyle", srcDir)
	if err != nil {
		return Advisory{Skipped: true}
	}

	adv := Advisory{Checkable: true, Issues: exitCode != 0}
	if exitCode != 0 {
		adv.Output = stdout
	}
	return adv
}

// runStyleTool is the default CommandRunner.
func runStyleTool(ctx context.Context, name string, args ...string) (string, int, error) {
	bin, err := exec.LookPath(name)
	if err != nil {
		return "", 0, fmt.Errorf("locating %s: %w", name, err)
	}

	var stdout bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Stdout = &stdout

	err = cmd.Run()
	if ctx.Err() != nil {
		return "", 0, fmt.Errorf("running %s: %w", name, ctx.Err())
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return stdout.String(), exitErr.ExitCode(), nil
		}
		return "", 0, fmt.Errorf("running %s: %w", name, err)
	}
	return stdout.String(), 0, nil
}
