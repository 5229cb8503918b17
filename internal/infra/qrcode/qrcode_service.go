package qrcode

import (
	"strings"

	"coshare/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

// invitePathSegment precedes the syndicate id in share links.
const invitePathSegment = "/syn/"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: recoveryLevel(errorCorrectionLevel),
	}
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(level) {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateInviteQR encodes the share link itself so any scanner can open it
func (s *qrcodeService) GenerateInviteQR(link string) ([]byte, error) {
	if strings.TrimSpace(link) == "" {
		return nil, errors.New("invite link is required")
	}

	qrCode, err := qrcode.New(link, s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseInviteQR returns the syndicate id of a scanned share link
func (s *qrcodeService) ParseInviteQR(qrData string) (string, error) {
	idx := strings.LastIndex(qrData, invitePathSegment)
	if idx < 0 {
		return "", errors.Errorf("invalid invite link: %q", qrData)
	}

	id := strings.TrimSpace(qrData[idx+len(invitePathSegment):])
	if id == "" || strings.Contains(id, "/") {
		return "", errors.Errorf("invalid syndicate id in link: %q", qrData)
	}

	return id, nil
}
