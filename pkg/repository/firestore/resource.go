package firestore

import (
	"context"

	"github.com/secmon-lab/continuum/pkg/domain/model"
	"github.com/secmon-lab/continuum/pkg/domain/types"
)

type resourceDocument struct {
	ID          string `firestore:"id"`
	Name        string `firestore:"name"`
	Type        string `firestore:"type"`
	Description string `firestore:"description"`
}

func resourceToDoc(r *model.Resource) *resourceDocument {
	return &resourceDocument{
		ID:          r.ID,
		Name:        r.Name,
		Type:        r.Type.String(),
		Description: r.Description,
	}
}

func docToResource(d *resourceDocument) *model.Resource {
	return &model.Resource{
		ID:          d.ID,
		Name:        d.Name,
		Type:        types.ResourceType(d.Type),
		Description: d.Description,
	}
}

type resourceRepository struct {
	store *Firestore
}

func (r *resourceRepository) List(ctx context.Context) ([]*model.Resource, error) {
	client, err := r.store.conn()
	if err != nil {
		return nil, err
	}
	return listDocuments(ctx, client, r.store.collection(CollectionResources), docToResource)
}

func (r *resourceRepository) Put(ctx context.Context, resource *model.Resource) error {
	client, err := r.store.conn()
	if err != nil {
		return err
	}
	return setDocument(ctx, client, r.store.collection(CollectionResources), resource.ID, resourceToDoc(resource))
}

func (r *resourceRepository) Delete(ctx context.Context, id string) error {
	client, err := r.store.conn()
	if err != nil {
		return err
	}
	return deleteDocument(ctx, client, r.store.collection(CollectionResources), id)
}
