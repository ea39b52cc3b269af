package app

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/novalend/console/pkg/jwtx"
)

// InitSigner loads the Ed25519 session-token signing key, or generates one.
//
// When SigningKeyFile is set, the key is loaded from PEM if present and
// generated-then-persisted otherwise, so tokens survive restarts. With no
// file configured the key is ephemeral: every restart logs everyone out,
// which is fine for dev.
func InitSigner(cfg Config, logger *slog.Logger) (*jwtx.Signer, error) {
	if cfg.SigningKeyFile == "" {
		signer, err := jwtx.GenerateSigner()
		if err != nil {
			return nil, err
		}
		logger.Info("ephemeral signing key generated - tokens will not survive restarts",
			"kid", signer.KID(),
		)
		return signer, nil
	}

	path := filepath.Clean(cfg.SigningKeyFile)
	if pemBytes, err := os.ReadFile(path); err == nil {
		signer, err := jwtx.NewSigner(keyID(path), pemBytes)
		if err != nil {
			return nil, fmt.Errorf("load signing key %s: %w", path, err)
		}
		logger.Info("signing key loaded", "path", path, "kid", signer.KID())
		return signer, nil
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read signing key %s: %w", path, err)
	}

	signer, err := jwtx.GenerateSigner()
	if err != nil {
		return nil, err
	}

	pemBytes, err := signer.EncodePEM()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, fmt.Errorf("create key directory: %w", err)
	}
	if err := os.WriteFile(path, pemBytes, 0600); err != nil {
		return nil, fmt.Errorf("persist signing key %s: %w", path, err)
	}

	logger.Info("signing key generated and persisted", "path", path, "kid", signer.KID())
	return signer, nil
}

// keyID derives a stable kid from the key file name.
func keyID(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	return base[:len(base)-len(ext)]
}
