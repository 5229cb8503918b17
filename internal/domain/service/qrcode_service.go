package service

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateInviteQR renders a syndicate share link as a PNG QR code
	GenerateInviteQR(link string) ([]byte, error)

	// ParseInviteQR extracts the syndicate id from scanned QR content
	ParseInviteQR(qrData string) (string, error)
}
