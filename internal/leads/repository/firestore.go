// Package repository is the persistence gateway between the typed lead model
// and the untyped Firestore document representation.
package repository

import (
	"context"
	"fmt"

	"salon_leads_backend/internal/leads/domain"
	"salon_leads_backend/platform/apperr"
	"salon_leads_backend/platform/logger"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

const leadsCollection = "leads"

// FirestoreStore persists leads in the "leads" Firestore collection.
// A nil client puts the store in a not-configured state: every operation
// fails fast with a configuration error and never dials the network.
type FirestoreStore struct {
	client *firestore.Client
	log    *logger.Logger
}

// NewFirestoreStore creates the gateway. The client may be nil when the
// Firebase project ID was never configured.
func NewFirestoreStore(client *firestore.Client, log *logger.Logger) *FirestoreStore {
	return &FirestoreStore{client: client, log: log}
}

func errNotConfigured() error {
	return apperr.Unavailable("La base de datos no está configurada (falta FIREBASE_PROJECT_ID).")
}

// Create appends one document to the leads collection, merging a
// server-assigned creation timestamp into the lead payload. There is no
// read-before-write and no idempotency key: resubmitting the same lead
// stores it twice, by design.
func (s *FirestoreStore) Create(ctx context.Context, lead domain.Lead) (string, error) {
	if s.client == nil {
		return "", errNotConfigured()
	}

	doc := leadToDoc(lead)
	doc["createdAt"] = firestore.ServerTimestamp

	ref, _, err := s.client.Collection(leadsCollection).Add(ctx, doc)
	if err != nil {
		s.log.StoreError("create lead", err)
		return "", fmt.Errorf("guardando consulta: %w", err)
	}

	return ref.ID, nil
}

// ListAll reads the whole leads collection ordered by creation time
// descending and reconstructs typed records from the stored documents.
// Documents with an unrecognized channelType (from a removed schema
// generation) are included as partially typed records with a logged warning
// rather than dropped, so totals in reports stay honest.
func (s *FirestoreStore) ListAll(ctx context.Context) ([]domain.StoredLead, error) {
	if s.client == nil {
		return nil, errNotConfigured()
	}

	iter := s.client.Collection(leadsCollection).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var leads []domain.StoredLead
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			s.log.StoreError("list leads", err)
			return nil, fmt.Errorf("leyendo consultas: %w", err)
		}

		lead, known := docToLead(doc.Ref.ID, doc.Data())
		if !known {
			s.log.Warn("lead with unrecognized channelType, keeping base fields only",
				"id", lead.ID, "channelType", string(lead.ChannelType))
		}
		leads = append(leads, lead)
	}

	return leads, nil
}

var _ Store = (*FirestoreStore)(nil)
