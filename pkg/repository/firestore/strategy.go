package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/continuum/pkg/domain/model"
	"github.com/secmon-lab/continuum/pkg/domain/types"
)

type strategyDocument struct {
	ID            string `firestore:"id"`
	ActivityID    string `firestore:"activity_id"`
	Name          string `firestore:"name"`
	Description   string `firestore:"description"`
	Cost          string `firestore:"cost"`
	Feasibility   string `firestore:"feasibility"`
	RTOAchievable string `firestore:"rto_achievable"`
	IsSelected    bool   `firestore:"is_selected"`
}

func strategyToDoc(s *model.RecoveryStrategy) *strategyDocument {
	return &strategyDocument{
		ID:            s.ID,
		ActivityID:    s.ActivityID,
		Name:          s.Name,
		Description:   s.Description,
		Cost:          s.Cost.String(),
		Feasibility:   s.Feasibility.String(),
		RTOAchievable: s.RTOAchievable.String(),
		IsSelected:    s.IsSelected,
	}
}

func docToStrategy(d *strategyDocument) *model.RecoveryStrategy {
	return &model.RecoveryStrategy{
		ID:            d.ID,
		ActivityID:    d.ActivityID,
		Name:          d.Name,
		Description:   d.Description,
		Cost:          types.Rating(d.Cost),
		Feasibility:   types.Rating(d.Feasibility),
		RTOAchievable: types.RTO(d.RTOAchievable),
		IsSelected:    d.IsSelected,
	}
}

type strategyRepository struct {
	store *Firestore
}

func (r *strategyRepository) List(ctx context.Context) ([]*model.RecoveryStrategy, error) {
	client, err := r.store.conn()
	if err != nil {
		return nil, err
	}
	return listDocuments(ctx, client, r.store.collection(CollectionStrategies), docToStrategy)
}

// ListByActivity queries by activity_id ordered by name, which needs the
// composite index created by the migrate command
func (r *strategyRepository) ListByActivity(ctx context.Context, activityID string) ([]*model.RecoveryStrategy, error) {
	client, err := r.store.conn()
	if err != nil {
		return nil, err
	}

	collection := r.store.collection(CollectionStrategies)
	query := client.Collection(collection).
		Where("activity_id", "==", activityID).
		OrderBy("name", firestore.Asc)
	return queryDocuments(ctx, query, collection, docToStrategy)
}

func (r *strategyRepository) Put(ctx context.Context, strategy *model.RecoveryStrategy) error {
	client, err := r.store.conn()
	if err != nil {
		return err
	}
	return setDocument(ctx, client, r.store.collection(CollectionStrategies), strategy.ID, strategyToDoc(strategy))
}

// PutMany writes every strategy inside one Firestore transaction
func (r *strategyRepository) PutMany(ctx context.Context, strategies []*model.RecoveryStrategy) error {
	client, err := r.store.conn()
	if err != nil {
		return err
	}

	collection := r.store.collection(CollectionStrategies)
	for _, s := range strategies {
		if s.ID == "" {
			return goerr.Wrap(model.ErrEmptyID, "cannot put strategies",
				goerr.V("collection", collection), goerr.T(model.ErrTagWriteFailed))
		}
	}

	err = client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		for _, s := range strategies {
			ref := client.Collection(collection).Doc(s.ID)
			if err := tx.Set(ref, strategyToDoc(s)); err != nil {
				return goerr.Wrap(err, "failed to set strategy in transaction", goerr.V(model.EntityIDKey, s.ID))
			}
		}
		return nil
	})
	if err != nil {
		return goerr.Wrap(err, "failed to put strategies",
			goerr.V("collection", collection), goerr.V("count", len(strategies)), goerr.T(model.ErrTagWriteFailed))
	}

	return nil
}

func (r *strategyRepository) Delete(ctx context.Context, id string) error {
	client, err := r.store.conn()
	if err != nil {
		return err
	}
	return deleteDocument(ctx, client, r.store.collection(CollectionStrategies), id)
}
