package firestore

import (
	"context"
	"slices"

	"github.com/secmon-lab/continuum/pkg/domain/model"
	"github.com/secmon-lab/continuum/pkg/domain/types"
)

type impactDocument struct {
	Timeframe          string `firestore:"timeframe"`
	FinancialImpact    string `firestore:"financial_impact"`
	OperationalImpact  string `firestore:"operational_impact"`
	ReputationalImpact string `firestore:"reputational_impact"`
	LegalImpact        string `firestore:"legal_impact"`
	Description        string `firestore:"description"`
}

type activityDocument struct {
	ID          string           `firestore:"id"`
	Name        string           `firestore:"name"`
	Description string           `firestore:"description"`
	Department  string           `firestore:"department"`
	Priority    string           `firestore:"priority"`
	RTO         string           `firestore:"rto"`
	RPO         string           `firestore:"rpo"`
	MTPD        string           `firestore:"mtpd"`
	Resources   []string         `firestore:"resources"`
	Impacts     []impactDocument `firestore:"impacts"`
}

func activityToDoc(a *model.Activity) *activityDocument {
	doc := &activityDocument{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
		Department:  a.Department,
		Priority:    a.Priority.String(),
		RTO:         a.RTO.String(),
		RPO:         a.RPO.String(),
		MTPD:        a.MTPD,
		Resources:   slices.Clone(a.Resources),
		Impacts:     make([]impactDocument, 0, len(a.Impacts)),
	}
	for _, i := range a.Impacts {
		doc.Impacts = append(doc.Impacts, impactDocument{
			Timeframe:          i.Timeframe,
			FinancialImpact:    i.FinancialImpact.String(),
			OperationalImpact:  i.OperationalImpact.String(),
			ReputationalImpact: i.ReputationalImpact.String(),
			LegalImpact:        i.LegalImpact.String(),
			Description:        i.Description,
		})
	}
	return doc
}

func docToActivity(d *activityDocument) *model.Activity {
	a := &model.Activity{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Department:  d.Department,
		Priority:    types.Priority(d.Priority),
		RTO:         types.RTO(d.RTO),
		RPO:         types.RPO(d.RPO),
		MTPD:        d.MTPD,
		Resources:   slices.Clone(d.Resources),
		Impacts:     make([]model.ImpactAssessment, 0, len(d.Impacts)),
	}
	for _, i := range d.Impacts {
		a.Impacts = append(a.Impacts, model.ImpactAssessment{
			Timeframe:          i.Timeframe,
			FinancialImpact:    types.Priority(i.FinancialImpact),
			OperationalImpact:  types.Priority(i.OperationalImpact),
			ReputationalImpact: types.Priority(i.ReputationalImpact),
			LegalImpact:        types.Priority(i.LegalImpact),
			Description:        i.Description,
		})
	}
	// firestore decodes both null and empty arrays as nil
	a.Normalize()
	return a
}

type activityRepository struct {
	store *Firestore
}

func (r *activityRepository) List(ctx context.Context) ([]*model.Activity, error) {
	client, err := r.store.conn()
	if err != nil {
		return nil, err
	}
	return listDocuments(ctx, client, r.store.collection(CollectionActivities), docToActivity)
}

func (r *activityRepository) Put(ctx context.Context, activity *model.Activity) error {
	client, err := r.store.conn()
	if err != nil {
		return err
	}
	return setDocument(ctx, client, r.store.collection(CollectionActivities), activity.ID, activityToDoc(activity))
}

func (r *activityRepository) Delete(ctx context.Context, id string) error {
	client, err := r.store.conn()
	if err != nil {
		return err
	}
	return deleteDocument(ctx, client, r.store.collection(CollectionActivities), id)
}
