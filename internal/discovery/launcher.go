package discovery

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/unreal-qt/uqgen/internal/log"
)

// qtCreatorBinary is looked up on PATH when no IDE path is configured on
// platforms without a blocking "open with default app" command.
const qtCreatorBinary = "qtcreator"

// Launcher opens a project file in Qt Creator and blocks until the IDE
// exits.
type Launcher interface {
	Launch(ctx context.Context, projectFile string) error
}

// ExecLauncher starts Qt Creator as a child process.
type ExecLauncher struct {
	// IDEPath, when set, is executed directly with the project file as its
	// only argument. Otherwise the platform file association is used.
	IDEPath string

	goos     string
	lookPath func(string) (string, error)
	run      func(cmd *exec.Cmd) error
}

// NewExecLauncher returns a launcher for the current platform.
func NewExecLauncher(idePath string) *ExecLauncher {
	return &ExecLauncher{
		IDEPath:  idePath,
		goos:     runtime.GOOS,
		lookPath: exec.LookPath,
		run:      (*exec.Cmd).Run,
	}
}

// Command returns the program and arguments used to open projectFile.
func (l *ExecLauncher) Command(projectFile string) (string, []string, error) {
	if l.IDEPath != "" {
		return l.IDEPath, []string{projectFile}, nil
	}
	switch l.goos {
	case "windows":
		// The empty argument is the window title consumed by "start".
		return "cmd", []string{"/C", "start", "", "/WAIT", projectFile}, nil
	case "darwin":
		return "open", []string{"-W", projectFile}, nil
	default:
		path, err := l.lookPath(qtCreatorBinary)
		if err != nil {
			return "", nil, fmt.Errorf("%w: %s is not on PATH", ErrIDENotFound, qtCreatorBinary)
		}
		return path, []string{projectFile}, nil
	}
}

// Launch runs the IDE and waits for it to exit. A non-zero exit status is
// logged and otherwise ignored.
func (l *ExecLauncher) Launch(ctx context.Context, projectFile string) error {
	name, args, err := l.Command(projectFile)
	if err != nil {
		return err
	}
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	err = l.run(cmd)
	if ctx.Err() != nil {
		return fmt.Errorf("%w: %w", ErrCancelled, ctx.Err())
	}
	if err == nil {
		return nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		logger := log.FromContext(ctx)
		logger.Debug().
			Str("ide", name).
			Int("exit_code", exitErr.ExitCode()).
			Msg("qt creator exited with non-zero status")
		return nil
	}
	return err
}
