package midi

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strconv"
	"strings"
	"sync"
	"time"
)

// waitDelay is how long a finished or killed command may keep its output open.
const waitDelay = 500 * time.Millisecond

// Tool runs the external MIDI commands. Arguments may contain the placeholders {file},
// {port}, {in}, {out} and {dir}.
type Tool struct {
	ListCommand    []string
	SendCommand    []string
	RequestCommand []string

	// WorkDir is the working directory of every command.
	WorkDir string

	// Timeout bounds each command; zero means no limit beyond the caller's context.
	Timeout time.Duration

	// Logger receives each command line and its output. Nil uses slog.Default.
	Logger *slog.Logger
}

// CommandError reports a command that could not start or exited unsuccessfully.
type CommandError struct {
	Args []string
	Tail string // last line written to stderr, if any
	Err  error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("%s: %v", strings.Join(e.Args, " "), e.Err)
	if e.Tail != "" {
		msg += ": " + e.Tail
	}
	return msg
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// Expand substitutes vars into template. Placeholders are written as {name}.
func Expand(template []string, vars map[string]string) []string {
	pairs := make([]string, 0, len(vars)*2)
	for k, v := range vars {
		pairs = append(pairs, "{"+k+"}", v)
	}
	r := strings.NewReplacer(pairs...)

	args := make([]string, len(template))
	for i, a := range template {
		args[i] = r.Replace(a)
	}
	return args
}

// Devices runs the list command and parses its output.
func (t *Tool) Devices(ctx context.Context) ([]Device, error) {
	if len(t.ListCommand) == 0 {
		return nil, ErrNoDevice
	}

	ctx, cancel := t.withTimeout(ctx)
	defer cancel()

	cmd := t.command(ctx, t.ListCommand)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		return nil, &CommandError{Args: t.ListCommand, Tail: lastLine(stderr.String()), Err: err}
	}
	return ParseDeviceList(bytes.NewReader(out))
}

// Send transmits the patch file to port.
func (t *Tool) Send(ctx context.Context, file string, port int) error {
	args := Expand(t.SendCommand, map[string]string{
		"file": file,
		"port": strconv.Itoa(port),
	})
	return t.run(ctx, "send", args)
}

// Request asks the synthesizer on port for its current patch and stores it in dir.
func (t *Tool) Request(ctx context.Context, port int, dir string) error {
	p := strconv.Itoa(port)
	args := Expand(t.RequestCommand, map[string]string{
		"in":   p,
		"out":  p,
		"port": p,
		"dir":  strings.TrimSuffix(dir, "/"),
	})
	return t.run(ctx, "request", args)
}

func (t *Tool) run(ctx context.Context, name string, args []string) error {
	if len(args) == 0 {
		return &CommandError{Args: args, Err: errors.New("no command configured")}
	}

	ctx, cancel := t.withTimeout(ctx)
	defer cancel()

	logger := t.logger().With("command", name)
	logger.Debug("executing", "args", args, "dir", t.WorkDir)

	// only stderr feeds the error tail
	stdout := &lineWriter{logger: logger, level: slog.LevelInfo}
	stderr := &lineWriter{logger: logger, level: slog.LevelWarn}

	cmd := t.command(ctx, args)
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	err := cmd.Run()
	stdout.flush()
	stderr.flush()

	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = errors.Join(ctxErr, err)
		}
		return &CommandError{Args: args, Tail: stderr.last(), Err: err}
	}

	logger.Info("completed")
	return nil
}

// command builds a cmd that is killed with its whole process group when ctx ends.
// Output still held open by an orphaned child is abandoned after waitDelay.
func (t *Tool) command(ctx context.Context, args []string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Dir = t.WorkDir
	cmd.WaitDelay = waitDelay
	killGroup(cmd)
	return cmd
}

func (t *Tool) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if t.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, t.Timeout)
}

func (t *Tool) logger() *slog.Logger {
	if t.Logger != nil {
		return t.Logger
	}
	return slog.Default()
}

// lineWriter logs each complete line written to it.
type lineWriter struct {
	logger *slog.Logger
	level  slog.Level

	mu   sync.Mutex
	buf  []byte
	tail string
}

func (w *lineWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf = append(w.buf, p...)
	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.emit(string(w.buf[:i]))
		w.buf = w.buf[i+1:]
	}
	return len(p), nil
}

func (w *lineWriter) flush() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(w.buf) > 0 {
		w.emit(string(w.buf))
		w.buf = nil
	}
}

func (w *lineWriter) emit(line string) {
	line = strings.TrimRight(line, "\r")
	if strings.TrimSpace(line) == "" {
		return
	}
	w.tail = line
	w.logger.Log(context.Background(), w.level, line)
}

func (w *lineWriter) last() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.tail
}

func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	return strings.TrimSpace(lines[len(lines)-1])
}
