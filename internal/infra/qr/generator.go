package qr

import (
	"os"
	"path/filepath"

	"tastebite/internal/pkg/config"
	"tastebite/internal/pkg/errs"

	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"
)

// FileGenerator renders coupon redemption QR codes as PNG files under a
// configured directory. Generation is idempotent: an existing file is reused.
type FileGenerator struct {
	dir  string
	size int
}

func NewFileGenerator(cfg config.QRConfig) *FileGenerator {
	return &FileGenerator{
		dir:  cfg.Dir,
		size: cfg.Size,
	}
}

func (g *FileGenerator) Generate(couponID uuid.UUID) (string, error) {
	if err := os.MkdirAll(g.dir, 0o755); err != nil {
		return "", errs.Wrap(err, "failed to create qr code directory")
	}

	path := filepath.Join(g.dir, "coupon_"+couponID.String()+".png")
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	payload := "ORDER:" + couponID.String()
	if err := qrcode.WriteFile(payload, qrcode.Medium, g.size, path); err != nil {
		return "", errs.Wrap(err, "failed to write qr code file")
	}
	return path, nil
}
