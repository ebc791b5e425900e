package service

// QRCodeService renders QR codes for printed shipping labels
type QRCodeService interface {
	// GenerateTrackingQR renders a PNG QR code pointing at the tracking page of a delivery
	GenerateTrackingQR(deliveryID, trackingURL string) ([]byte, error)
}
