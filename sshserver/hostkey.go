package sshserver

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/crypto/ssh"
)

const hostKeyComment = "termfolio"

// EnsureHostKey returns the host key stored at path. A missing key is
// generated as ed25519 and written with mode 0600; created reports that.
// ${VAR} references in path are expanded.
func EnsureHostKey(path string) (signer ssh.Signer, created bool, err error) {
	if strings.TrimSpace(path) == "" {
		return nil, false, errors.New("ssh host key path is required")
	}
	path = os.ExpandEnv(path)
	signer, err = loadHostKey(path)
	if err == nil {
		return signer, false, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, false, err
	}
	signer, err = createHostKey(path)
	if errors.Is(err, fs.ErrExist) {
		// Another process won the race; use its key.
		signer, err = loadHostKey(path)
		return signer, false, err
	}
	if err != nil {
		return nil, false, err
	}
	return signer, true, nil
}

// HostKeyFingerprint renders the SHA256 fingerprint clients show on first connect.
func HostKeyFingerprint(signer ssh.Signer) string {
	return ssh.FingerprintSHA256(signer.PublicKey())
}

func createHostKey(path string) (ssh.Signer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create host key dir: %w", err)
	}
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	block, err := ssh.MarshalPrivateKey(priv, hostKeyComment)
	if err != nil {
		return nil, fmt.Errorf("marshal host key: %w", err)
	}
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return nil, fmt.Errorf("write host key: %w", err)
	}
	if err := pem.Encode(file, block); err != nil {
		_ = file.Close()
		_ = os.Remove(path)
		return nil, fmt.Errorf("encode host key: %w", err)
	}
	if err := file.Close(); err != nil {
		return nil, fmt.Errorf("close host key: %w", err)
	}
	return ssh.NewSignerFromKey(priv)
}

func loadHostKey(path string) (ssh.Signer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read host key: %w", err)
	}
	signer, err := ssh.ParsePrivateKey(data)
	if err != nil {
		return nil, fmt.Errorf("parse host key %s: %w", path, err)
	}
	return signer, nil
}
