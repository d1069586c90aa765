package gcp

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"

	"github.com/studyspot/dataport/internal/platform/envutil"
)

// NewFirestoreClient connects to the Firestore database of the project named
// by GOOGLE_CLOUD_PROJECT using the service-account credentials from the
// environment.
func NewFirestoreClient(ctx context.Context) (*firestore.Client, error) {
	projectID, err := envutil.Require("GOOGLE_CLOUD_PROJECT")
	if err != nil {
		return nil, err
	}
	opts, err := RequireClientOptionsFromEnv()
	if err != nil {
		return nil, err
	}
	client, err := firestore.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create firestore client: %w", err)
	}
	return client, nil
}
