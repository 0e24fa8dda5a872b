package client

import (
	"context"
	"encoding/xml"
	"fmt"
	"log/slog"
	"strings"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"

	"github.com/Aashish23092/id-verification/dto"
)

// QRClient reads the XML QR code printed on older Aadhaar letters and cards.
// The decoded attributes are rendered as card-face text so they go through the
// same extraction as OCR output.
type QRClient struct {
	logger *slog.Logger
}

func NewQRClient(logger *slog.Logger) *QRClient {
	return &QRClient{logger: logger}
}

var _ Partial = (*QRClient)(nil)

func (q *QRClient) Name() string { return "qr" }

// Partial reports true: most cards carry no legacy QR code at all
func (q *QRClient) Partial() bool { return true }

func (q *QRClient) DetectText(ctx context.Context, image []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	img, err := decodeImage(image)
	if err != nil {
		return "", err
	}

	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", fmt.Errorf("failed to create binary bitmap: %w", err)
	}

	hints := map[gozxing.DecodeHintType]interface{}{
		gozxing.DecodeHintType_TRY_HARDER: true,
	}
	result, err := qrcode.NewQRCodeReader().Decode(bmp, hints)
	if err != nil {
		// most images carry no QR code at all
		q.logger.DebugContext(ctx, "no qr code decoded", "error", err)
		return "", ErrNoText
	}

	payload := strings.TrimSpace(result.GetText())
	q.logger.DebugContext(ctx, "qr code decoded", "bytes", len(payload))
	return qrPayloadText(payload)
}

// qrPayloadText accepts only the legacy XML payload. Secure QR codes carry a
// signed numeric blob that would produce false digit-run matches.
func qrPayloadText(payload string) (string, error) {
	if !strings.Contains(payload, "PrintLetterBarcodeData") {
		return "", fmt.Errorf("%w: unsupported qr payload", ErrNoText)
	}

	var data dto.AadhaarQRData
	if err := xml.Unmarshal([]byte(payload), &data); err != nil {
		return "", fmt.Errorf("%w: failed to parse QR XML data: %v", ErrNoText, err)
	}

	lines := data.TextLines()
	if len(lines) == 0 {
		return "", ErrNoText
	}
	return strings.Join(lines, "\n"), nil
}
