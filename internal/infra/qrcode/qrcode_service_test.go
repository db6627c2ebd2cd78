package qrcode

import (
	"encoding/json"
	"testing"

	domainerrors "waiter/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 0x50, 0x4E, 0x47}

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		errorCorrectionLevel string
	}{
		{"Low error correction", "L"},
		{"Medium error correction", "M"},
		{"High error correction", "Q"},
		{"Highest error correction", "h"},
		{"Default error correction", "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(128, tt.errorCorrectionLevel)

			qrBytes, err := service.GenerateStationQR("front-desk")
			require.NoError(t, err)
			assert.Equal(t, pngMagic, qrBytes[:4])
		})
	}
}

func TestQRCodeService_GenerateStationQR_RequiresStation(t *testing.T) {
	service := NewQRCodeService(256, "M")

	_, err := service.GenerateStationQR("  ")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestQRCodeService_ParseStationQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	jsonData, err := json.Marshal(StationPayload{Type: AttendanceType, StationID: "kitchen-pass"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"attendance","station_id":"kitchen-pass"}`, string(jsonData))

	stationID, err := service.ParseStationQR(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, "kitchen-pass", stationID)
}

func TestQRCodeService_ParseStationQR_Invalid(t *testing.T) {
	service := NewQRCodeService(256, "M")

	tests := []struct {
		name    string
		payload string
		detail  string
	}{
		{"not json", "invalid json", "payload is not JSON"},
		{"wrong type", `{"type":"subscription","station_id":"x"}`, "invalid QR code type: subscription"},
		{"missing station", `{"type":"attendance"}`, "station id is missing"},
		{"blank station", `{"type":"attendance","station_id":"  "}`, "station id is missing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.ParseStationQR(tt.payload)
			require.ErrorIs(t, err, domainerrors.ErrInvalidQRCode)
			assert.Contains(t, err.Error(), tt.detail)
			assert.Equal(t, domainerrors.KindValidation, domainerrors.KindOf(err))
		})
	}
}
