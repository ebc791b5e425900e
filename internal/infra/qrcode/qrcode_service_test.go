package qrcode

import (
	"testing"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTrackingURL = "https://track.kuttyport.test/deliveries/DLV-1001/map/page"

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		errorCorrectionLevel string
	}{
		{"Low error correction", "L"},
		{"Medium error correction", "M"},
		{"High error correction", "Q"},
		{"Highest error correction", "H"},
		{"Default error correction", "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, NewQRCodeService(256, tt.errorCorrectionLevel))
		})
	}
}

func TestQRCodeService_GenerateTrackingQR(t *testing.T) {
	for _, size := range []int{128, 256, 512} {
		service := NewQRCodeService(size, "M")

		qrBytes, err := service.GenerateTrackingQR("DLV-1001", testTrackingURL)
		require.NoError(t, err)
		require.Greater(t, len(qrBytes), 4)

		// PNG magic number
		assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
	}
}

func TestQRCodeService_GenerateTrackingQR_RequiresInput(t *testing.T) {
	service := NewQRCodeService(256, "M")

	_, err := service.GenerateTrackingQR("", testTrackingURL)
	assert.Error(t, err)
	_, err = service.GenerateTrackingQR("DLV-1001", "")
	assert.Error(t, err)
}

func TestQRCodeService_GenerateTrackingQR_EncodesBareURL(t *testing.T) {
	service := NewQRCodeService(256, "Q")

	qrBytes, err := service.GenerateTrackingQR("DLV-1001", testTrackingURL)
	require.NoError(t, err)

	expected, err := qrcode.Encode(testTrackingURL, qrcode.High, 256)
	require.NoError(t, err)
	assert.Equal(t, expected, qrBytes)
}
