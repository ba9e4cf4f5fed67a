package service

// ReferralQRService generates and parses QR codes for referral invite links.
type ReferralQRService interface {
	// GenerateInviteQR renders a PNG QR code encoding the invite payload for
	// the given referral code.
	GenerateInviteQR(referralCode string) ([]byte, error)

	// ParseInviteQR extracts the referral code from a scanned QR payload.
	ParseInviteQR(qrData string) (string, error)
}
