package verification

import (
	"context"
	"fmt"
	"time"

	"tripnest/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// UploadAadhar runs the full identity flow for a user: format gate on the
// number, document storage, provider check, then a single patch marking
// the user verified. The raw number is never persisted; only the masked
// form is kept on the document.
func (s *DefaultVerificationService) UploadAadhar(userID, number, documentDataURI string) (*models.User, error) {
	logger := zap.L()

	if err := ValidateIDNumber(number); err != nil {
		return nil, err
	}

	user, err := s.Users.GetByID(userID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	docRef, err := s.Storage.UploadDocument(ctx, documentDataURI, "aadhar")
	if err != nil {
		return nil, fmt.Errorf("failed to store identity document: %w", err)
	}

	result, err := s.Provider.VerifyDocument(DocumentCheck{
		IDNumber:    number,
		DocumentRef: docRef,
		LegalName:   user.Name,
	})
	if err != nil {
		return nil, err
	}
	if !result.Verified {
		return nil, fmt.Errorf("identity verification rejected: %s", result.Message)
	}

	now := time.Now()
	updateDoc := bson.M{"$set": bson.M{
		"isVerified":          true,
		"aadhar.maskedNumber": MaskIDNumber(number),
		"aadhar.documentRef":  docRef,
		"aadhar.verifiedAt":   now,
		"updatedAt":           now,
	}}
	if err := s.Users.UpdateWithDocument(userID, updateDoc); err != nil {
		return nil, err
	}

	logger.Info("user identity verified",
		zap.String("userId", userID),
		zap.String("code", result.VerificationCode))

	return s.Users.GetByID(userID)
}
