package e2e_test

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SK1028846/fantasy-football-pipeline/internal/api"
	"github.com/SK1028846/fantasy-football-pipeline/internal/factory"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath string
	serverURL  string
	tokenFile  string
}

func newCLIRunner(t *testing.T, serverURL string) *cliRunner {
	t.Helper()

	// Find project root (where go.mod is)
	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(projectRoot, "bin", "tradectl-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/tradectl")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	// Create temp token file
	tokenFile := filepath.Join(t.TempDir(), "token")

	return &cliRunner{
		binaryPath: binaryPath,
		serverURL:  serverURL,
		tokenFile:  tokenFile,
	}
}

func (r *cliRunner) run(args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--token-file", r.tokenFile,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

// testServer manages a real HTTP server for e2e tests
type testServer struct {
	server   *http.Server
	addr     string
	shutdown func()
}

func startTestServer(t *testing.T) *testServer {
	t.Helper()

	// Find a free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	// Create application
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	app, err := factory.New(factory.Config{Logger: logger})
	require.NoError(t, err)

	router := api.NewRouter(api.RouterConfig{
		Logger:       logger,
		AuthService:  app.AuthService,
		TradeService: app.TradeService,
	})

	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server
	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			t.Logf("server error: %v", err)
		}
	}()

	// Wait for server to be ready
	serverURL := "http://" + addr
	waitForServer(t, serverURL+"/health")

	return &testServer{
		server: server,
		addr:   serverURL,
		shutdown: func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Shutdown(ctx)
		},
	}
}

func waitForServer(t *testing.T, url string) {
	t.Helper()

	client := &http.Client{Timeout: 100 * time.Millisecond}
	deadline := time.Now().Add(5 * time.Second)

	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(50 * time.Millisecond)
	}

	t.Fatal("server did not become ready in time")
}

// Response types for JSON parsing
type authResponse struct {
	User struct {
		ID       string `json:"id"`
		Username string `json:"username"`
	} `json:"user"`
	SessionToken string `json:"sessionToken"`
}

type gradeResponse struct {
	Grade string `json:"grade"`
}

type historyResponse struct {
	Trades []struct {
		ID    string   `json:"id"`
		SideA []string `json:"sideA"`
		SideB []string `json:"sideB"`
		Grade string   `json:"grade"`
	} `json:"trades"`
	HasMore bool `json:"hasMore"`
}

type healthResponse struct {
	Status string `json:"status"`
}

// Tests

func TestCLI_HealthCheck(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("health")
	require.NoError(t, err, "output: %s", output)

	var resp healthResponse
	require.NoError(t, json.Unmarshal([]byte(output), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestCLI_AuthCommands(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	// Register
	output, err := cli.run("auth", "register", "--user", "alice", "--pass", "secret123")
	require.NoError(t, err, "output: %s", output)

	var authResp authResponse
	require.NoError(t, json.Unmarshal([]byte(output), &authResp))
	assert.Equal(t, "alice", authResp.User.Username)
	assert.NotEmpty(t, authResp.SessionToken)

	// Me (token should be saved in token file)
	output, err = cli.run("auth", "me")
	require.NoError(t, err, "output: %s", output)
	assert.Contains(t, output, "alice")

	// Logout clears the token
	output, err = cli.run("auth", "logout")
	require.NoError(t, err, "output: %s", output)

	_, err = cli.run("auth", "me")
	require.Error(t, err)
}

func TestCLI_TradeFlow(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("auth", "register", "--user", "alice", "--pass", "secret123")
	require.NoError(t, err, "output: %s", output)

	// Submit a trade
	output, err = cli.run("trade",
		"--give", "Justin Jefferson",
		"--get", "CeeDee Lamb",
		"--get", "Tony Pollard")
	require.NoError(t, err, "output: %s", output)

	var grade gradeResponse
	require.NoError(t, json.Unmarshal([]byte(output), &grade))
	assert.Equal(t, "A", grade.Grade)

	// Read it back from history
	output, err = cli.run("history")
	require.NoError(t, err, "output: %s", output)

	var history historyResponse
	require.NoError(t, json.Unmarshal([]byte(output), &history))
	require.Len(t, history.Trades, 1)
	assert.Equal(t, []string{"Justin Jefferson"}, history.Trades[0].SideA)
	assert.Equal(t, []string{"CeeDee Lamb", "Tony Pollard"}, history.Trades[0].SideB)
	assert.Equal(t, "A", history.Trades[0].Grade)
	assert.False(t, history.HasMore)
}

func TestCLI_HistoryPagination(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("auth", "register", "--user", "alice", "--pass", "secret123")
	require.NoError(t, err, "output: %s", output)

	for i := 0; i < 12; i++ {
		output, err = cli.run("trade",
			"--give", fmt.Sprintf("Out%d", i),
			"--get", fmt.Sprintf("In%d", i))
		require.NoError(t, err, "output: %s", output)
	}

	output, err = cli.run("history", "--page", "1", "--limit", "10")
	require.NoError(t, err, "output: %s", output)

	var page1 historyResponse
	require.NoError(t, json.Unmarshal([]byte(output), &page1))
	assert.Len(t, page1.Trades, 10)
	assert.True(t, page1.HasMore)

	output, err = cli.run("history", "--page", "2", "--limit", "10")
	require.NoError(t, err, "output: %s", output)

	var page2 historyResponse
	require.NoError(t, json.Unmarshal([]byte(output), &page2))
	assert.Len(t, page2.Trades, 2)
	assert.False(t, page2.HasMore)
}

func TestCLI_TradeRejectsBlankSides(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("auth", "register", "--user", "alice", "--pass", "secret123")
	require.NoError(t, err, "output: %s", output)

	// Blank names are filtered client-side, leaving the side empty
	output, err = cli.run("trade", "--give", "   ", "--get", "CeeDee Lamb")
	require.Error(t, err)
	assert.True(t, strings.Contains(output, "give") || strings.Contains(output, "blank"),
		"output: %s", output)
}

func TestCLI_RequiresAuthForTrades(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("history")
	require.Error(t, err)
	assert.Contains(t, output, "UNAUTHORIZED")
}
