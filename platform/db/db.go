// Package db provides document store client construction.
// This is part of the platform layer and contains no business logic.
package db

import (
	"context"

	"salon_leads_backend/platform/config"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"
)

// NewFirestoreClient connects to the Firestore project named in the
// configuration. When FIREBASE_PROJECT_ID is absent it returns a nil client
// and no error: the server still starts, and every gateway operation reports
// a configuration error instead of attempting a network call.
func NewFirestoreClient(ctx context.Context, cfg config.FirestoreConfig) (*firestore.Client, error) {
	projectID := cfg.GetFirebaseProjectID()
	if projectID == "" {
		return nil, nil
	}

	var opts []option.ClientOption
	if file := cfg.GetFirebaseCredentialsFile(); file != "" {
		opts = append(opts, option.WithCredentialsFile(file))
	}

	return firestore.NewClient(ctx, projectID, opts...)
}
