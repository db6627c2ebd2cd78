package service

// QRCodeService defines the interface for attendance station codes
type QRCodeService interface {
	// GenerateStationQR renders the check-in code of a station as PNG
	GenerateStationQR(stationID string) ([]byte, error)

	// ParseStationQR validates a scanned payload and returns the station ID
	ParseStationQR(qrData string) (string, error)
}
