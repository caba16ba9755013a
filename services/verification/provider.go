package verification

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// DocumentCheck is the input handed to an identity verification provider.
type DocumentCheck struct {
	IDNumber    string // Government ID number (already format-validated)
	DocumentRef string // Data URI or storage URL of the scanned document
	LegalName   string // Legal name as provided by the user
}

// Result is the outcome of a provider check.
type Result struct {
	Verified         bool
	VerificationCode string // Cryptographic code identifying this verification
	Message          string
	Timestamp        int64
}

// Provider performs the external identity check. The default implementation
// simulates the OCR/document match; a real provider can be plugged in
// without touching the registration flows that depend on it.
type Provider interface {
	VerifyDocument(check DocumentCheck) (Result, error)
}

type simulatedProvider struct{}

// NewSimulatedProvider returns the simulated identity provider. It accepts
// any request whose document reference looks like an image data URI or an
// uploaded URL.
func NewSimulatedProvider() Provider {
	return &simulatedProvider{}
}

// generateVerificationCode produces a cryptographically secure random code in hex.
func generateVerificationCode() (string, error) {
	const codeLength = 16 // 16 bytes = 32 hex characters
	bytes := make([]byte, codeLength)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}

func (p *simulatedProvider) VerifyDocument(check DocumentCheck) (Result, error) {
	if check.IDNumber == "" || check.DocumentRef == "" {
		return Result{}, fmt.Errorf("missing required fields for identity verification")
	}
	if !strings.HasPrefix(check.DocumentRef, "data:image/") &&
		!strings.HasPrefix(check.DocumentRef, "http://") &&
		!strings.HasPrefix(check.DocumentRef, "https://") {
		return Result{}, fmt.Errorf("document must be an image data URI or an uploaded URL")
	}

	// A real provider would OCR the document, match it against the ID
	// number, and compare the legal name. The simulation accepts any
	// well-formed submission.

	code, err := generateVerificationCode()
	if err != nil {
		return Result{}, err
	}
	return Result{
		Verified:         true,
		VerificationCode: code,
		Message:          "identity verification successful",
		Timestamp:        time.Now().Unix(),
	}, nil
}
