package services

import (
	"github.com/skip2/go-qrcode"
)

const defaultQRSize = 256

type QRService struct{}

func NewQRService() *QRService {
	return &QRService{}
}

// GeneratePNG renders a QR code for the given content as PNG bytes.
func (q *QRService) GeneratePNG(content string, size int) ([]byte, error) {
	if size <= 0 {
		size = defaultQRSize
	}
	return qrcode.Encode(content, qrcode.Medium, size)
}
