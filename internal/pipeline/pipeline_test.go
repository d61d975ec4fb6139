package pipeline

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bbq191/geant4-installer/internal/build"
	"github.com/bbq191/geant4-installer/internal/fetcher"
	"github.com/bbq191/geant4-installer/internal/installer"
	"github.com/bbq191/geant4-installer/internal/interactive"
	"github.com/bbq191/geant4-installer/internal/platform"
	"github.com/bbq191/geant4-installer/internal/release"
	"github.com/bbq191/geant4-installer/internal/runner"
	"github.com/bbq191/geant4-installer/internal/shellrc"
	"github.com/bbq191/geant4-installer/internal/template"
	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tagsPage = `
<a href="/geant4/geant4/-/tags/v11.2.2">v11.2.2</a>
<a href="/geant4/geant4/-/tags/v11.2.1">v11.2.1</a>
<a href="/geant4/geant4/-/tags/v11.2.0">v11.2.0</a>
<a href="/geant4/geant4/-/tags/v11.2">v11.2</a>
<a href="/geant4/geant4/-/tags/v11.1.3">v11.1.3</a>
<a href="/geant4/geant4/-/tags/v10.7.4">v10.7.4</a>
<a href="/geant4/geant4/-/tags/v11.2.2">v11.2.2</a>
`

type staticDetector struct {
	env *platform.Environment
}

func (d staticDetector) Detect() *platform.Environment { return d.env }

func sourceTarball(t *testing.T, version string) []byte {
	t.Helper()
	var buf bytes.Buffer
	gzw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gzw)

	dir := "geant4-v" + version + "/"
	require.NoError(t, tw.WriteHeader(&tar.Header{Name: dir, Typeflag: tar.TypeDir, Mode: 0755}))
	body := []byte("cmake_minimum_required(VERSION 3.16)\n")
	require.NoError(t, tw.WriteHeader(&tar.Header{Name: dir + "CMakeLists.txt", Typeflag: tar.TypeReg, Mode: 0644, Size: int64(len(body))}))
	_, err := tw.Write(body)
	require.NoError(t, err)

	require.NoError(t, tw.Close())
	require.NoError(t, gzw.Close())
	return buf.Bytes()
}

type harness struct {
	root     string
	profile  string
	out      *bytes.Buffer
	recorder *runner.Recorder
	prompter *interactive.ScriptedPrompter
	pipeline *Pipeline

	mu       sync.Mutex
	requests []string
}

func (h *harness) paths() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.requests...)
}

func newHarness(t *testing.T, env *platform.Environment, opts Options, answers ...string) *harness {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	h := &harness{
		root:     filepath.Join(t.TempDir(), "Geant4"),
		profile:  filepath.Join(t.TempDir(), ".bashrc"),
		out:      &bytes.Buffer{},
		recorder: &runner.Recorder{},
		prompter: interactive.NewScriptedPrompter(answers...),
	}

	archive := sourceTarball(t, "11.2.2")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.mu.Lock()
		h.requests = append(h.requests, r.URL.Path)
		h.mu.Unlock()
		switch r.URL.Path {
		case "/tags":
			_, _ = io.WriteString(w, tagsPage)
		case "/archive/v11.2.2/geant4-v11.2.2.tar.gz":
			_, _ = w.Write(archive)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)

	engine, err := template.NewEngine(logger)
	require.NoError(t, err)

	patcher, err := shellrc.NewPatcher(h.profile, engine, logger)
	require.NoError(t, err)

	asker := interactive.NewAsker(h.prompter, h.out)
	deps := installer.NewInstaller(h.recorder, "sudo", logger)

	opts.Root = h.root
	if opts.AliasName == "" {
		opts.AliasName = "geant4make"
	}

	h.pipeline = &Pipeline{
		Detector: staticDetector{env: env},
		Versions: release.NewResolver(srv.URL+"/tags", 5*time.Second, logger),
		Fetcher: fetcher.NewFetcher(fetcher.Options{
			ArchiveBase: srv.URL + "/archive",
			Timeout:     5 * time.Second,
			Output:      io.Discard,
		}, logger),
		Builder: build.NewDirector(h.recorder, deps, engine, asker, h.out, build.Options{
			TempDir: t.TempDir(),
		}, logger),
		Profile: patcher,
		Asker:   asker,
		Out:     h.out,
		Logger:  logger,
		Options: opts,
	}
	return h
}

var ubuntu = &platform.Environment{
	OS:            platform.OSLinux,
	GOOS:          "linux",
	KernelRelease: "5.15.0-105-generic",
	Distro:        "Ubuntu 22.04.4 LTS",
}

func TestRun_EndToEnd(t *testing.T) {
	// 版本 1，两次回车，8 核
	h := newHarness(t, ubuntu, Options{}, "1", "", "", "8")

	require.NoError(t, h.pipeline.Run(context.Background()))

	assert.Equal(t, []string{"/tags", "/archive/v11.2.2/geant4-v11.2.2.tar.gz"}, h.paths())
	assert.FileExists(t, filepath.Join(h.root, "geant4-v11.2.2.tar.gz"))
	assert.FileExists(t, filepath.Join(h.root, "geant4-v11.2.2", "CMakeLists.txt"))
	assert.DirExists(t, filepath.Join(h.root, "geant4-v11.2.2-build"))

	names := h.recorder.Names()
	require.Len(t, names, 6)
	assert.Equal(t, "sudo apt update", names[0])
	assert.True(t, strings.HasPrefix(names[1], "sudo apt install -y cmake cmake-curses-gui"))
	assert.True(t, strings.HasPrefix(names[2], "xdg-open "))
	if diff := cmp.Diff([]string{"ccmake ../geant4-v11.2.2", "make -j8", "make install"}, names[3:]); diff != "" {
		t.Errorf("构建命令不符 (-want +got):\n%s", diff)
	}

	installDir := filepath.Join(h.root, "geant4-v11.2.2-install")
	data, err := os.ReadFile(h.profile)
	require.NoError(t, err)
	assert.Equal(t,
		"\nalias geant4make=\"source "+installDir+"/share/Geant4/geant4make/geant4make.sh\"\n",
		string(data))

	out := h.out.String()
	assert.Contains(t, out, "Distro Info: Ubuntu 22.04.4 LTS")
	assert.Contains(t, out, "[1] v11.2.2")
	assert.Contains(t, out, "[5] v11.1.3")
	assert.NotContains(t, out, "v10.7.4")
	assert.Contains(t, out, "[INFO] Install path: "+installDir)
	assert.Contains(t, out, "[SUCCESS] Geant4 v11.2.2 installed successfully!")
	assert.Contains(t, out, "Run 'source ~/.bashrc'")

	assert.Equal(t, "Choose a version to install (1-5):", h.prompter.Messages[0])
	assert.Zero(t, h.prompter.Remaining())
}

// renderingPrompter 模拟会自行绘制选项的终端交互
type renderingPrompter struct {
	*interactive.ScriptedPrompter
}

func (renderingPrompter) RendersOptions() bool { return true }

func TestRun_MenuNotDuplicatedWhenPrompterRenders(t *testing.T) {
	h := newHarness(t, ubuntu, Options{}, "1", "", "", "2")
	h.pipeline.Asker = interactive.NewAsker(renderingPrompter{h.prompter}, h.out)

	require.NoError(t, h.pipeline.Run(context.Background()))

	out := h.out.String()
	assert.Contains(t, out, "Available Geant4 versions:")
	assert.NotContains(t, out, "[1] v11.2.2")
	assert.Equal(t, "Choose a version to install (1-5):", h.prompter.Messages[0])
}

func TestRun_WindowsExitsEarly(t *testing.T) {
	windows := &platform.Environment{OS: platform.OSWindows, GOOS: "windows", Distro: platform.DistroNotApplicable}
	h := newHarness(t, windows, Options{})

	err := h.pipeline.Run(context.Background())
	require.ErrorIs(t, err, ErrUnsupportedOS)
	assert.Empty(t, h.paths())
	assert.Empty(t, h.recorder.Commands)
	assert.NoDirExists(t, h.root)
	assert.Contains(t, h.out.String(), "Script only supports Linux or WSL")
}

func TestRun_ReleaseFlagSkipsMenu(t *testing.T) {
	h := newHarness(t, ubuntu, Options{Release: "v11.2.2"}, "", "", "2")

	require.NoError(t, h.pipeline.Run(context.Background()))
	assert.NotContains(t, h.out.String(), "Available Geant4 versions:")
	assert.Contains(t, h.recorder.Names(), "make -j2")
}

func TestRun_UnknownRelease(t *testing.T) {
	h := newHarness(t, ubuntu, Options{Release: "9.9.9"})

	err := h.pipeline.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "9.9.9")
	assert.Equal(t, []string{"/tags"}, h.paths())
}

func TestRun_AbortOnExistingTarball(t *testing.T) {
	h := newHarness(t, ubuntu, Options{}, "1", "A")
	require.NoError(t, os.MkdirAll(h.root, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(h.root, "geant4-v11.2.2.tar.gz"), []byte("old"), 0644))

	err := h.pipeline.Run(context.Background())
	require.ErrorIs(t, err, ErrAborted)
	assert.Equal(t, []string{"/tags"}, h.paths())
	assert.Empty(t, h.recorder.Commands)
	assert.NoFileExists(t, h.profile)
	assert.Contains(t, h.out.String(), "[INFO] Aborting.")
}

func TestRun_UnknownDistroStillBuilds(t *testing.T) {
	alpine := &platform.Environment{OS: platform.OSLinux, GOOS: "linux", Distro: "Alpine Linux v3.20"}
	h := newHarness(t, alpine, Options{}, "1", "", "", "4")

	require.NoError(t, h.pipeline.Run(context.Background()))
	assert.True(t, strings.HasPrefix(h.recorder.Names()[0], "xdg-open "))
}

func TestRun_BuildFailureIsFatal(t *testing.T) {
	h := newHarness(t, ubuntu, Options{}, "1", "", "", "4")
	h.recorder.Fail = func(c runner.Command) error {
		if c.String() == "make -j4" {
			return errors.New("compile error")
		}
		return nil
	}

	err := h.pipeline.Run(context.Background())
	var exitErr *runner.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, "make", exitErr.Command.Name)
	assert.NoFileExists(t, h.profile)
}

func TestRun_NoVersions(t *testing.T) {
	h := newHarness(t, ubuntu, Options{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "<html>no tags here</html>")
	}))
	defer srv.Close()
	h.pipeline.Versions = release.NewResolver(srv.URL, time.Second, h.pipeline.Logger)

	err := h.pipeline.Run(context.Background())
	require.ErrorIs(t, err, release.ErrNoVersions)
	assert.Contains(t, h.out.String(), "[ERROR] Could not detect Geant4 versions.")
}
