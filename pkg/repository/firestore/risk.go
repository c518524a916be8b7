package firestore

import (
	"context"
	"slices"

	"github.com/secmon-lab/continuum/pkg/domain/model"
	"github.com/secmon-lab/continuum/pkg/domain/types"
)

type riskDocument struct {
	ID                 string   `firestore:"id"`
	Description        string   `firestore:"description"`
	Category           string   `firestore:"category"`
	Likelihood         int      `firestore:"likelihood"`
	Impact             int      `firestore:"impact"`
	RelatedActivityIDs []string `firestore:"related_activity_ids"`
	ExistingControls   string   `firestore:"existing_controls"`
	Treatment          string   `firestore:"treatment"`
}

func riskToDoc(r *model.Risk) *riskDocument {
	doc := &riskDocument{
		ID:                 r.ID,
		Description:        r.Description,
		Category:           r.Category.String(),
		Likelihood:         r.Likelihood,
		Impact:             r.Impact,
		RelatedActivityIDs: slices.Clone(r.RelatedActivityIDs),
		ExistingControls:   r.ExistingControls,
		Treatment:          r.Treatment.String(),
	}
	return doc
}

func docToRisk(d *riskDocument) *model.Risk {
	r := &model.Risk{
		ID:                 d.ID,
		Description:        d.Description,
		Category:           types.RiskCategory(d.Category),
		Likelihood:         d.Likelihood,
		Impact:             d.Impact,
		RelatedActivityIDs: slices.Clone(d.RelatedActivityIDs),
		ExistingControls:   d.ExistingControls,
		Treatment:          types.Treatment(d.Treatment),
	}
	r.Normalize()
	return r
}

type riskRepository struct {
	store *Firestore
}

func (r *riskRepository) List(ctx context.Context) ([]*model.Risk, error) {
	client, err := r.store.conn()
	if err != nil {
		return nil, err
	}
	return listDocuments(ctx, client, r.store.collection(CollectionRisks), docToRisk)
}

func (r *riskRepository) Put(ctx context.Context, risk *model.Risk) error {
	client, err := r.store.conn()
	if err != nil {
		return err
	}
	return setDocument(ctx, client, r.store.collection(CollectionRisks), risk.ID, riskToDoc(risk))
}

func (r *riskRepository) Delete(ctx context.Context, id string) error {
	client, err := r.store.conn()
	if err != nil {
		return err
	}
	return deleteDocument(ctx, client, r.store.collection(CollectionRisks), id)
}
