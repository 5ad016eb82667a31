package discovery

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"

	"github.com/unreal-qt/uqgen/pkg/models"
)

// fakeLauncher simulates Qt Creator by running fn against the project file.
type fakeLauncher struct {
	fn    func(projectFile string) error
	calls int
}

func (f *fakeLauncher) Launch(_ context.Context, projectFile string) error {
	f.calls++
	if f.fn == nil {
		return nil
	}
	return f.fn(projectFile)
}

// writesSettings returns a launcher callback that leaves text behind as
// the user settings file.
func writesSettings(text string) func(string) error {
	return func(projectFile string) error {
		return os.WriteFile(projectFile+".user", []byte(text), 0o644)
	}
}

type memStore struct {
	saved []models.WizardConfig
	err   error
}

func (s *memStore) SaveWizard(wc models.WizardConfig) error {
	if s.err != nil {
		return s.err
	}
	s.saved = append(s.saved, wc)
	return nil
}

type staticConfirmer struct {
	ok  bool
	err error
}

func (c staticConfirmer) Confirm(context.Context) (bool, error) { return c.ok, c.err }

type countingWaiter struct{ started, stopped int }

type countingSpinner struct{ w *countingWaiter }

func (s countingSpinner) Stop() { s.w.stopped++ }

func (w *countingWaiter) Spinner(string) Spinner {
	w.started++
	return countingSpinner{w}
}

func newTestWizard(t *testing.T, launcher Launcher, store Store, opts ...func(*Options)) (*Wizard, string, *bytes.Buffer) {
	t.Helper()
	dir := t.TempDir()
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	o := Options{
		ScratchDir: dir,
		Launcher:   launcher,
		Store:      store,
		Logger:     &logger,
	}
	for _, opt := range opts {
		opt(&o)
	}
	w, err := New(o)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	w.scratch.retry.MaxRetries = 1
	w.scratch.retry.BaseDelay = time.Millisecond
	w.scratch.retry.MaxDelay = time.Millisecond
	return w, dir, &buf
}

func assertScratchRemoved(t *testing.T, dir string) {
	t.Helper()
	for _, name := range []string{"temp.pro", "temp.pro.user"} {
		if _, err := os.Stat(filepath.Join(dir, name)); !os.IsNotExist(err) {
			t.Errorf("%s left behind (stat error = %v)", name, err)
		}
	}
}

func TestNewValidatesOptions(t *testing.T) {
	launcher := &fakeLauncher{}
	store := &memStore{}

	tests := []struct {
		name string
		opts Options
	}{
		{"missing scratch dir", Options{Launcher: launcher, Store: store}},
		{"missing launcher", Options{ScratchDir: "x", Store: store}},
		{"missing store", Options{ScratchDir: "x", Launcher: launcher}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.opts); err == nil {
				t.Error("New() expected error")
			}
		})
	}
}

func TestWizardRunEndToEnd(t *testing.T) {
	text := "<variable>EnvironmentId</variable>\n<value type=\"QByteArray\">{01234567-89ab-cdef-0123-456789abcdef}</value>\n" +
		`key="ProjectExplorer.ProjectConfiguration.Id">{fedcba98-7654-3210-fedc-ba9876543210}`
	launcher := &fakeLauncher{fn: writesSettings(text)}
	store := &memStore{}
	waiter := &countingWaiter{}
	w, dir, _ := newTestWizard(t, launcher, store, func(o *Options) {
		o.Confirmer = staticConfirmer{ok: true}
		o.Waiter = waiter
	})

	got, err := w.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := models.WizardConfig{
		EnvironmentID:            "{01234567-89ab-cdef-0123-456789abcdef}",
		ToolchainConfigurationID: "{fedcba98-7654-3210-fedc-ba9876543210}",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Run() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]models.WizardConfig{want}, store.saved); diff != "" {
		t.Errorf("saved configs mismatch (-want +got):\n%s", diff)
	}
	if launcher.calls != 1 {
		t.Errorf("launcher calls = %d, want 1", launcher.calls)
	}
	if waiter.started != 1 || waiter.stopped != 1 {
		t.Errorf("spinner started/stopped = %d/%d, want 1/1", waiter.started, waiter.stopped)
	}
	assertScratchRemoved(t, dir)
}

func TestWizardRunLaunchesScratchProject(t *testing.T) {
	var launched string
	launcher := &fakeLauncher{fn: func(projectFile string) error {
		launched = projectFile
		info, err := os.Stat(projectFile)
		if err != nil {
			return err
		}
		if info.Size() != 0 {
			t.Errorf("scratch project size = %d, want 0", info.Size())
		}
		return writesSettings(settingsFixture(testEnvID, testConfID))(projectFile)
	}}
	w, dir, _ := newTestWizard(t, launcher, &memStore{})

	if _, err := w.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if want := filepath.Join(dir, "temp.pro"); launched != want {
		t.Errorf("launched %q, want %q", launched, want)
	}
	if w.ProjectFile() != launched {
		t.Errorf("ProjectFile() = %q, want %q", w.ProjectFile(), launched)
	}
}

func TestWizardRunIsIdempotent(t *testing.T) {
	text := settingsFixture(testEnvID, testConfID)
	store := &memStore{}
	w, _, _ := newTestWizard(t, &fakeLauncher{fn: writesSettings(text)}, store)

	first, err := w.Run(context.Background())
	if err != nil {
		t.Fatalf("first Run() error = %v", err)
	}
	second, err := w.Run(context.Background())
	if err != nil {
		t.Fatalf("second Run() error = %v", err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("runs differ (-first +second):\n%s", diff)
	}
	if len(store.saved) != 2 {
		t.Errorf("saved %d times, want 2", len(store.saved))
	}
}

func TestWizardRunFailures(t *testing.T) {
	launchErr := errors.New("exec: permission denied")
	writeErr := errors.New("disk full")

	tests := []struct {
		name     string
		launch   func(string) error
		storeErr error
		wantKind error
		wantExit int
	}{
		{
			name:     "launch fails",
			launch:   func(string) error { return launchErr },
			wantKind: ErrLaunch,
			wantExit: ExitLaunch,
		},
		{
			name:     "settings file missing",
			launch:   func(string) error { return nil },
			wantKind: ErrMissingExpectedFile,
			wantExit: ExitMissingExpectedFile,
		},
		{
			name: "settings file unreadable",
			launch: func(projectFile string) error {
				return os.Mkdir(projectFile+".user", 0o755)
			},
			wantKind: ErrFileRead,
			wantExit: ExitFileRead,
		},
		{
			name:     "environment id missing",
			launch:   writesSettings(settingsFixture("", testConfID)),
			wantKind: ErrPatternNotFound,
			wantExit: ExitEnvironmentIDNotFound,
		},
		{
			name:     "configuration id missing",
			launch:   writesSettings(settingsFixture(testEnvID, "")),
			wantKind: ErrPatternNotFound,
			wantExit: ExitConfigurationIDNotFound,
		},
		{
			name:     "environment id malformed",
			launch:   writesSettings(settingsFixture("{0123-4567}", testConfID)),
			wantKind: ErrInvalidIdentifierShape,
			wantExit: ExitEnvironmentIDInvalid,
		},
		{
			name:     "configuration id malformed",
			launch:   writesSettings(settingsFixture(testEnvID, "{fedcba98-7654-3210-fedc-ba987654321}")),
			wantKind: ErrInvalidIdentifierShape,
			wantExit: ExitConfigurationIDInvalid,
		},
		{
			name:     "store fails",
			launch:   writesSettings(settingsFixture(testEnvID, testConfID)),
			storeErr: writeErr,
			wantKind: ErrConfigWrite,
			wantExit: ExitConfigWrite,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &memStore{err: tt.storeErr}
			w, dir, _ := newTestWizard(t, &fakeLauncher{fn: tt.launch}, store)

			got, err := w.Run(context.Background())
			if err == nil {
				t.Fatal("Run() expected error, got nil")
			}
			if !errors.Is(err, tt.wantKind) {
				t.Errorf("Run() error = %v, want %v", err, tt.wantKind)
			}
			if code := ExitCode(err); code != tt.wantExit {
				t.Errorf("ExitCode() = %d, want %d", code, tt.wantExit)
			}
			if !got.IsZero() {
				t.Errorf("Run() returned %+v on failure", got)
			}
			if tt.storeErr == nil && len(store.saved) != 0 {
				t.Errorf("store written on failure: %+v", store.saved)
			}
			if tt.wantKind != ErrFileRead {
				assertScratchRemoved(t, dir)
			}
		})
	}
}

func TestWizardRunWrapsCauses(t *testing.T) {
	launchErr := errors.New("exec: permission denied")
	w, _, _ := newTestWizard(t, &fakeLauncher{fn: func(string) error { return launchErr }}, &memStore{})

	_, err := w.Run(context.Background())
	if !errors.Is(err, launchErr) {
		t.Errorf("Run() error = %v, want cause %v in chain", err, launchErr)
	}
	var stepErr *StepError
	if !errors.As(err, &stepErr) {
		t.Fatalf("Run() error type = %T, want *StepError", err)
	}
	if stepErr.Hint() == "" {
		t.Error("Hint() is empty for launch failure")
	}
}

func TestWizardRunExtractionErrorCarriesPath(t *testing.T) {
	w, dir, _ := newTestWizard(t, &fakeLauncher{fn: writesSettings("no identifiers here")}, &memStore{})

	_, err := w.Run(context.Background())
	var stepErr *StepError
	if !errors.As(err, &stepErr) {
		t.Fatalf("Run() error type = %T, want *StepError", err)
	}
	if want := filepath.Join(dir, "temp.pro.user"); stepErr.Path != want {
		t.Errorf("Path = %q, want %q", stepErr.Path, want)
	}
	if stepErr.Field != FieldEnvironmentID {
		t.Errorf("Field = %q, want %q", stepErr.Field, FieldEnvironmentID)
	}
}

func TestWizardRunScratchCreateFails(t *testing.T) {
	parent := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(parent, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	launcher := &fakeLauncher{}
	w, err := New(Options{
		ScratchDir: filepath.Join(parent, "scratch"),
		Launcher:   launcher,
		Store:      &memStore{},
	})
	if err != nil {
		t.Fatal(err)
	}

	_, err = w.Run(context.Background())
	if !errors.Is(err, ErrScratchCreate) {
		t.Fatalf("Run() error = %v, want ErrScratchCreate", err)
	}
	if code := ExitCode(err); code != ExitScratchCreate {
		t.Errorf("ExitCode() = %d, want %d", code, ExitScratchCreate)
	}
	if launcher.calls != 0 {
		t.Errorf("launcher called %d times after scratch failure", launcher.calls)
	}
}

func TestWizardRunConfirmation(t *testing.T) {
	promptErr := errors.New("tty closed")

	tests := []struct {
		name      string
		confirmer staticConfirmer
		wantErr   error
	}{
		{"declined", staticConfirmer{ok: false}, ErrCancelled},
		{"prompt error", staticConfirmer{err: promptErr}, promptErr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			launcher := &fakeLauncher{}
			w, dir, _ := newTestWizard(t, launcher, &memStore{}, func(o *Options) {
				o.Confirmer = tt.confirmer
			})

			_, err := w.Run(context.Background())
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Run() error = %v, want %v", err, tt.wantErr)
			}
			if launcher.calls != 0 {
				t.Errorf("launcher called %d times", launcher.calls)
			}
			if _, err := os.Stat(filepath.Join(dir, "temp.pro")); !os.IsNotExist(err) {
				t.Error("scratch project created before confirmation")
			}
		})
	}
}

func TestWizardRunCancelledWhileWaiting(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	launcher := &fakeLauncher{fn: func(projectFile string) error {
		cancel()
		return writesSettings(settingsFixture(testEnvID, testConfID))(projectFile)
	}}
	store := &memStore{}
	w, dir, _ := newTestWizard(t, launcher, store)

	_, err := w.Run(ctx)
	if !errors.Is(err, ErrCancelled) {
		t.Fatalf("Run() error = %v, want ErrCancelled", err)
	}
	if code := ExitCode(err); code != ExitCancelled {
		t.Errorf("ExitCode() = %d, want %d", code, ExitCancelled)
	}
	if len(store.saved) != 0 {
		t.Errorf("store written after cancellation: %+v", store.saved)
	}
	assertScratchRemoved(t, dir)
}

func TestWizardRunCleanupFailureKeepsOutcome(t *testing.T) {
	// Replace the scratch project with a non-empty directory so that
	// removing it fails.
	launcher := &fakeLauncher{fn: func(projectFile string) error {
		if err := os.Remove(projectFile); err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Join(projectFile, "keep"), 0o755); err != nil {
			return err
		}
		return writesSettings(settingsFixture(testEnvID, testConfID))(projectFile)
	}}
	w, dir, logs := newTestWizard(t, launcher, &memStore{})

	got, err := w.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got.EnvironmentID != testEnvID {
		t.Errorf("EnvironmentID = %q, want %q", got.EnvironmentID, testEnvID)
	}
	if _, err := os.Stat(filepath.Join(dir, "temp.pro.user")); !os.IsNotExist(err) {
		t.Error("settings file left behind")
	}
	if !strings.Contains(logs.String(), "failed to remove scratch file") {
		t.Errorf("cleanup failure not logged, logs:\n%s", logs.String())
	}
}
