package qrcode

import (
	"encoding/json"
	"fmt"
	"strings"

	"refnet/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	baseURL              string
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	ReferralCode string `json:"referral_code"`
	InviteURL    string `json:"invite_url"`
	Type         string `json:"type"`
}

// NewReferralQRService creates a new referral QR code service instance
func NewReferralQRService(baseURL string, size int, errorCorrectionLevel string) service.ReferralQRService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		baseURL:              strings.TrimSuffix(baseURL, "/"),
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateInviteQR generates a QR code for a referral invite
func (s *qrcodeService) GenerateInviteQR(referralCode string) ([]byte, error) {
	if referralCode == "" {
		return nil, fmt.Errorf("referral code is required")
	}

	// Create QR code data
	data := QRCodeData{
		ReferralCode: referralCode,
		InviteURL:    fmt.Sprintf("%s/invite/%s", s.baseURL, referralCode),
		Type:         "invite",
	}

	// Convert to JSON
	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	// Generate QR code
	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	// Generate PNG image
	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseInviteQR parses QR code data and returns the referral code
func (s *qrcodeService) ParseInviteQR(qrData string) (string, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	// Validate type
	if data.Type != "invite" {
		return "", fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	if data.ReferralCode == "" {
		return "", fmt.Errorf("missing referral code in QR data")
	}

	return data.ReferralCode, nil
}
