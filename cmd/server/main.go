// dungeoncrawl-server serves the dungeon over SSH. Every connection plays its
// own independent game. Build:
//
//	go build -o dungeoncrawl-server ./cmd/server
//
// Usage:
//
//	./dungeoncrawl-server [-config dungeon.toml] [-addr :2222] [-key host_key]
//
// Connect with:
//
//	ssh -t -p 2222 localhost
package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"flag"
	"fmt"
	mrand "math/rand"
	"os"
	"sync/atomic"
	"time"

	gossh "github.com/gliderlabs/ssh"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	xssh "golang.org/x/crypto/ssh"

	"dungeoncrawl/internal/config"
	"dungeoncrawl/internal/game"
	"dungeoncrawl/internal/logger"
	internalssh "dungeoncrawl/internal/ssh"
	"dungeoncrawl/internal/term"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("dungeoncrawl-server", flag.ContinueOnError)
	cfgPath := fs.String("config", "dungeon.toml", "path to the TOML config file (optional)")
	addr := fs.String("addr", "", "listen address, overrides the config")
	keyFile := fs.String("key", "", "PEM host key path (generated if absent), overrides the config")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	if *keyFile != "" {
		cfg.Server.HostKey = *keyFile
	}
	logger.Init(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	signer, err := loadOrCreateHostKey(cfg.Server.HostKey)
	if err != nil {
		return err
	}

	h := &handler{cfg: cfg}
	srv := &gossh.Server{
		Addr:        cfg.Server.Addr,
		Handler:     h.handleSession,
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		HostSigners: []gossh.Signer{signer},
	}

	logger.For("server").WithField("addr", cfg.Server.Addr).Info("listening")
	return srv.ListenAndServe()
}

// handler starts one game per SSH session.
type handler struct {
	cfg      config.Config
	sessions atomic.Int64
}

// seed picks the generation seed for the n-th session. A fixed config seed
// gives every session the same dungeon.
func (h *handler) seed(n int64) int64 {
	if h.cfg.Seed != 0 {
		return h.cfg.Seed
	}
	return time.Now().UnixNano() + n
}

// handleSession blocks for the lifetime of the connection.
func (h *handler) handleSession(s gossh.Session) {
	n := h.sessions.Add(1)
	l := logger.For("server").WithFields(logrus.Fields{
		"session": n,
		"user":    internalssh.SanitizeName(s.User()),
		"remote":  s.RemoteAddr().String(),
	})

	screen, err := internalssh.OpenScreen(s)
	if errors.Is(err, internalssh.ErrNoPty) {
		fmt.Fprintln(s, "This game requires a terminal. Connect with: ssh -t <host>")
		return
	}
	if err != nil {
		l.WithError(err).Error("terminal setup failed")
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		return
	}
	defer screen.Fini()

	seed := h.seed(n)
	g, err := game.New(h.cfg, mrand.New(mrand.NewSource(seed)))
	if err != nil {
		l.WithError(err).Error("game setup failed")
		return
	}
	l.WithField("seed", seed).Info("session started")
	if err := term.Run(screen, g); err != nil {
		l.WithError(err).Error("session ended with error")
		return
	}
	l.Info("session ended")
}

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string) (gossh.Signer, error) {
	l := logger.For("server").WithField("path", path)
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			l.Info("loaded host key")
			return signer, nil
		}
	}

	l.Info("generating new ed25519 host key")
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, errors.Wrap(err, "generate host key")
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, errors.Wrap(err, "create signer")
	}
	pemBlock, err := xssh.MarshalPrivateKey(key, "dungeoncrawl server")
	if err != nil {
		return nil, errors.Wrap(err, "marshal host key")
	}
	if err := os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0o600); err != nil {
		l.WithError(err).Warn("host key not persisted")
	}
	return signer, nil
}
