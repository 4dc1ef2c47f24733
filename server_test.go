package termfolio

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"golang.org/x/crypto/ssh"

	"pkt.systems/termfolio/core"
	"pkt.systems/termfolio/internal/content"
	"pkt.systems/termfolio/schema"
	"pkt.systems/termfolio/sshserver"
)

func listen(t *testing.T) net.Listener {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	return ln
}

func TestNewRequiresAService(t *testing.T) {
	deps := ServerDeps{ServiceDeps: core.ServiceDeps{Repository: content.NewDefaultStore()}}
	if _, err := New(ServerConfig{}, deps); err == nil {
		t.Fatalf("expected error when nothing is enabled")
	}
	if _, err := New(ServerConfig{}, ServerDeps{}, WithHTTP()); err == nil {
		t.Fatalf("expected error without a repository")
	}
	cfg := ServerConfig{Service: schema.ServiceConfig{DefaultTheme: "sepia"}}
	if _, err := New(cfg, deps, WithHTTP()); err == nil {
		t.Fatalf("expected error for unknown theme")
	}
}

func TestStopBeforeStartIsNoop(t *testing.T) {
	srv, err := New(ServerConfig{}, ServerDeps{ServiceDeps: core.ServiceDeps{Repository: content.NewDefaultStore()}}, WithHTTP())
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := srv.Stop(context.Background()); err != nil {
		t.Fatalf("stop: %v", err)
	}
	if err := srv.Wait(); err == nil {
		t.Fatalf("expected wait to fail before start")
	}
}

type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func waitFor(t *testing.T, buf *lockedBuffer, want string) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if strings.Contains(buf.String(), want) {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %q", want)
}

func TestServerServesHTTPAndSSH(t *testing.T) {
	httpLn := listen(t)
	sshLn := listen(t)
	cfg := ServerConfig{
		Service: schema.ServiceConfig{DisableAuditLogging: true},
		SSH: sshserver.Config{
			HostKeyPath: filepath.Join(t.TempDir(), "host_key"),
		},
	}
	deps := ServerDeps{
		ServiceDeps:  core.ServiceDeps{Repository: content.NewDefaultStore()},
		HTTPListener: httpLn,
		SSHListener:  sshLn,
	}
	srv, err := New(cfg, deps, WithHTTP(), WithSSH())
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := srv.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Stop(ctx); err != nil {
			t.Errorf("stop: %v", err)
		}
	})
	if err := srv.Start(context.Background()); err == nil {
		t.Fatalf("expected second start to fail")
	}

	resp, err := http.Get("http://" + httpLn.Addr().String() + "/api/themes")
	if err != nil {
		t.Fatalf("get themes: %v", err)
	}
	defer resp.Body.Close()
	var themes schema.ThemesResponse
	if err := json.NewDecoder(resp.Body).Decode(&themes); err != nil {
		t.Fatalf("decode themes: %v", err)
	}
	if len(themes.Themes) != 3 {
		t.Fatalf("unexpected themes: %+v", themes)
	}

	client, err := ssh.Dial("tcp", sshLn.Addr().String(), &ssh.ClientConfig{
		User:            "visitor",
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         5 * time.Second,
	})
	if err != nil {
		t.Fatalf("ssh dial: %v", err)
	}
	defer client.Close()
	session, err := client.NewSession()
	if err != nil {
		t.Fatalf("ssh session: %v", err)
	}
	defer session.Close()
	if err := session.RequestPty("xterm-256color", 24, 100, ssh.TerminalModes{}); err != nil {
		t.Fatalf("request pty: %v", err)
	}
	stdin, err := session.StdinPipe()
	if err != nil {
		t.Fatalf("stdin: %v", err)
	}
	out := &lockedBuffer{}
	session.Stdout = out
	if err := session.Shell(); err != nil {
		t.Fatalf("shell: %v", err)
	}
	waitFor(t, out, "Welcome to Akhil B's Portfolio Terminal v1.0")
	if _, err := io.WriteString(stdin, "whoami\r"); err != nil {
		t.Fatalf("write: %v", err)
	}
	waitFor(t, out, "MERN Stack Developer")
	if _, err := io.WriteString(stdin, "\x04"); err != nil {
		t.Fatalf("write: %v", err)
	}
	done := make(chan error, 1)
	go func() { done <- session.Wait() }()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("session exit: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("ssh session did not exit")
	}
}
