package qrcode

import (
	"encoding/json"
	"log/slog"
	"strings"

	"waiter/config"
	domainerrors "waiter/internal/domain/errors"
	"waiter/internal/domain/service"
	"waiter/internal/errors"

	"github.com/skip2/go-qrcode"
	"go.uber.org/fx"
)

// AttendanceType marks a payload as an attendance check-in code.
const AttendanceType = "attendance"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// StationPayload is the JSON encoded in a station check-in code.
type StationPayload struct {
	Type      string `json:"type"`
	StationID string `json:"station_id"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch strings.ToUpper(errorCorrectionLevel) {
	case "L":
		level = qrcode.Low
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// Params defines the required parameters
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// New creates the QR code service from config.
func New(params Params) service.QRCodeService {
	cfg := params.Config.QRCode
	if cfg == nil {
		cfg = &config.QRCodeConfig{Size: 256, ErrorCorrectionLevel: "M"}
	}
	params.Logger.Debug("QR code service ready",
		slog.Int("size", cfg.Size),
		slog.String("level", cfg.ErrorCorrectionLevel),
	)

	return NewQRCodeService(cfg.Size, cfg.ErrorCorrectionLevel)
}

// GenerateStationQR renders the station's check-in code as PNG
func (s *qrcodeService) GenerateStationQR(stationID string) ([]byte, error) {
	stationID = strings.TrimSpace(stationID)
	if stationID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("station id is required")
	}

	jsonData, err := json.Marshal(StationPayload{Type: AttendanceType, StationID: stationID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseStationQR validates a scanned payload and returns its station ID
func (s *qrcodeService) ParseStationQR(qrData string) (string, error) {
	var data StationPayload
	if err := json.Unmarshal([]byte(strings.TrimSpace(qrData)), &data); err != nil {
		return "", domainerrors.ErrInvalidQRCode.WithDetailsf("payload is not JSON: %v", err)
	}

	if data.Type != AttendanceType {
		return "", domainerrors.ErrInvalidQRCode.WithDetailsf("invalid QR code type: %s", data.Type)
	}

	stationID := strings.TrimSpace(data.StationID)
	if stationID == "" {
		return "", domainerrors.ErrInvalidQRCode.WithDetails("station id is missing")
	}

	return stationID, nil
}
