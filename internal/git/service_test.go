package git

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-git/go-git/v6"
	"github.com/go-git/go-git/v6/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type clonerFunc func(ctx context.Context, req CloneRequest) error

func (f clonerFunc) Clone(ctx context.Context, req CloneRequest) error {
	return f(ctx, req)
}

// fakeClone creates the repository marker the way a successful clone would.
func fakeClone(calls *atomic.Int32) clonerFunc {
	return func(_ context.Context, req CloneRequest) error {
		calls.Add(1)
		return os.Mkdir(filepath.Join(req.Directory, metadataDir), 0o755)
	}
}

func newStatusServer(t *testing.T, status int) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte("hello"))
	}))
	t.Cleanup(server.Close)

	return server
}

func newFixtureRepository(t *testing.T) string {
	t.Helper()

	repoPath := filepath.Join(t.TempDir(), "origin")
	require.NoError(t, os.MkdirAll(repoPath, 0o755))

	repo, err := git.PlainInit(repoPath, false)
	require.NoError(t, err)

	worktree, err := repo.Worktree()
	require.NoError(t, err)

	err = os.WriteFile(filepath.Join(repoPath, "main.go"), []byte("package main\n\nfunc main() {}\n"), 0o644)
	require.NoError(t, err)

	_, err = worktree.Add("main.go")
	require.NoError(t, err)

	_, err = worktree.Commit("initial commit", &git.CommitOptions{
		Author: &object.Signature{
			Name:  "Test Author",
			Email: "test@example.com",
			When:  time.Now(),
		},
	})
	require.NoError(t, err)

	return repoPath
}

func TestService_FetchSuccess(t *testing.T) {
	server := newStatusServer(t, http.StatusOK)
	dest := t.TempDir()

	var calls atomic.Int32
	service := NewService(Config{}, fakeClone(&calls), zaptest.NewLogger(t))

	err := service.Fetch(context.Background(), server.URL, dest)
	require.NoError(t, err)
	assert.Equal(t, int32(1), calls.Load())
	assert.DirExists(t, filepath.Join(dest, metadataDir))
}

func TestService_FetchNonSuccessStatusSkipsClone(t *testing.T) {
	for _, status := range []int{http.StatusNotFound, http.StatusInternalServerError, http.StatusUnauthorized} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			server := newStatusServer(t, status)

			var calls atomic.Int32
			service := NewService(Config{}, fakeClone(&calls), zaptest.NewLogger(t))

			err := service.Fetch(context.Background(), server.URL, t.TempDir())
			require.ErrorIs(t, err, ErrRequestFailed)
			assert.Zero(t, calls.Load())
		})
	}
}

func TestService_FetchUnreachableURL(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	var calls atomic.Int32
	service := NewService(Config{}, fakeClone(&calls), zaptest.NewLogger(t))

	err := service.Fetch(context.Background(), url, t.TempDir())
	require.ErrorIs(t, err, ErrURLInvalid)
	assert.Zero(t, calls.Load())
}

func TestService_FetchMalformedURL(t *testing.T) {
	var calls atomic.Int32
	service := NewService(Config{}, fakeClone(&calls), zaptest.NewLogger(t))

	err := service.Fetch(context.Background(), "::not a url", t.TempDir())
	require.ErrorIs(t, err, ErrURLInvalid)
	assert.Zero(t, calls.Load())
}

func TestService_FetchWithoutMetadataDir(t *testing.T) {
	server := newStatusServer(t, http.StatusOK)

	noop := clonerFunc(func(context.Context, CloneRequest) error { return nil })
	service := NewService(Config{}, noop, zaptest.NewLogger(t))

	err := service.Fetch(context.Background(), server.URL, t.TempDir())
	require.ErrorIs(t, err, ErrRepositoryNotFound)
}

func TestService_FetchWrapsClonerErrors(t *testing.T) {
	server := newStatusServer(t, http.StatusOK)

	broken := clonerFunc(func(context.Context, CloneRequest) error { return errors.New("boom") })
	service := NewService(Config{}, broken, zaptest.NewLogger(t))

	err := service.Fetch(context.Background(), server.URL, t.TempDir())
	require.ErrorIs(t, err, ErrCloneFailed)
	assert.ErrorContains(t, err, "boom")
}

func TestService_FetchNotAGitRemote(t *testing.T) {
	// A plain web page: the URL itself answers, git endpoints below it do not.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("<html>hello</html>"))
	}))
	t.Cleanup(server.Close)
	dest := t.TempDir()

	logger := zaptest.NewLogger(t)
	service := NewService(Config{Timeout: 30 * time.Second}, NewGoGitCloner(logger), logger)

	err := service.Fetch(context.Background(), server.URL, dest)
	require.ErrorIs(t, err, ErrCloneFailed)
}

func TestService_FetchLimitsConcurrentClones(t *testing.T) {
	server := newStatusServer(t, http.StatusOK)

	started := make(chan struct{})
	unblock := make(chan struct{})
	blocking := clonerFunc(func(_ context.Context, req CloneRequest) error {
		close(started)
		<-unblock
		return os.Mkdir(filepath.Join(req.Directory, metadataDir), 0o755)
	})

	service := NewService(Config{MaxConcurrentOperations: 1}, blocking, zaptest.NewLogger(t))

	firstErr := make(chan error, 1)
	go func() {
		firstErr <- service.Fetch(context.Background(), server.URL, t.TempDir())
	}()
	<-started

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	err := service.Fetch(ctx, server.URL, t.TempDir())
	require.ErrorIs(t, err, ErrCloneFailed)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	close(unblock)
	require.NoError(t, <-firstErr)
}

func TestService_HeadCommit(t *testing.T) {
	repoPath := newFixtureRepository(t)
	service := NewService(Config{}, nil, zaptest.NewLogger(t))

	hash, err := service.headCommit(repoPath)
	require.NoError(t, err)
	assert.Len(t, hash, 40)

	_, err = service.headCommit(t.TempDir())
	require.ErrorIs(t, err, ErrRepositoryNotFound)
}

func newEmptyRemote(t *testing.T) string {
	t.Helper()

	remote := filepath.Join(t.TempDir(), "empty.git")
	_, err := git.PlainInit(remote, true)
	require.NoError(t, err)

	return remote
}

func requireOriginRemote(t *testing.T, dest, url string) {
	t.Helper()

	repo, err := git.PlainOpen(dest)
	require.NoError(t, err)

	origin, err := repo.Remote("origin")
	require.NoError(t, err)
	assert.Equal(t, []string{url}, origin.Config().URLs)
}

func TestGoGitCloner_EmptyRemote(t *testing.T) {
	url := "file://" + newEmptyRemote(t)
	dest := t.TempDir()

	err := NewGoGitCloner(zaptest.NewLogger(t)).Clone(context.Background(), CloneRequest{URL: url, Directory: dest})
	require.NoError(t, err)

	assert.DirExists(t, filepath.Join(dest, metadataDir))
	requireOriginRemote(t, dest, url)
}

func TestCLICloner_EmptyRemote(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}

	url := "file://" + newEmptyRemote(t)
	dest := t.TempDir()

	err := NewCLICloner("git", zaptest.NewLogger(t)).Clone(context.Background(), CloneRequest{URL: url, Directory: dest})
	require.NoError(t, err)

	assert.DirExists(t, filepath.Join(dest, metadataDir))
	requireOriginRemote(t, dest, url)
}

func TestCLICloner_ShallowClone(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}

	repoPath := newFixtureRepository(t)
	dest := t.TempDir()

	cloner := NewCLICloner("git", zaptest.NewLogger(t))
	err := cloner.Clone(context.Background(), CloneRequest{URL: "file://" + repoPath, Directory: dest})
	require.NoError(t, err)

	assert.DirExists(t, filepath.Join(dest, metadataDir))
	assert.FileExists(t, filepath.Join(dest, "main.go"))
}

func TestCLICloner_MissingBinary(t *testing.T) {
	cloner := NewCLICloner(filepath.Join(t.TempDir(), "no-such-git"), zaptest.NewLogger(t))

	err := cloner.Clone(context.Background(), CloneRequest{URL: "https://example.invalid/repo.git", Directory: t.TempDir()})
	require.ErrorIs(t, err, ErrCloneFailed)
}

func TestNewCloner(t *testing.T) {
	logger := zaptest.NewLogger(t)

	cloner, err := NewCloner(Config{Driver: DriverGoGit}, logger)
	require.NoError(t, err)
	assert.IsType(t, &goGitCloner{}, cloner)

	cloner, err = NewCloner(Config{Driver: DriverCLI, Binary: "git"}, logger)
	require.NoError(t, err)
	assert.IsType(t, &cliCloner{}, cloner)

	_, err = NewCloner(Config{Driver: "svn"}, logger)
	require.ErrorIs(t, err, ErrUnsupportedDriver)
}

func TestService_FetchProbeBoundedByTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
			w.WriteHeader(http.StatusOK)
		}
	}))
	t.Cleanup(server.Close)

	var calls atomic.Int32
	service := NewService(Config{Timeout: 100 * time.Millisecond}, fakeClone(&calls), zaptest.NewLogger(t))

	started := time.Now()
	err := service.Fetch(context.Background(), server.URL, t.TempDir())
	require.ErrorIs(t, err, ErrURLInvalid)
	assert.Less(t, time.Since(started), 4*time.Second)
	assert.Zero(t, calls.Load())
}
