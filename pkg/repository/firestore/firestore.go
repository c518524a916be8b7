package firestore

import (
	"context"
	"sync"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/continuum/pkg/domain/interfaces"
	"github.com/secmon-lab/continuum/pkg/domain/model"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/status"
)

// Collection names, one per record kind
const (
	CollectionResources  = "resources"
	CollectionActivities = "activities"
	CollectionRisks      = "risks"
	CollectionStrategies = "strategies"
)

type Firestore struct {
	projectID        string
	databaseID       string
	collectionPrefix string

	mu     sync.Mutex
	client *firestore.Client

	resource *resourceRepository
	activity *activityRepository
	risk     *riskRepository
	strategy *strategyRepository
}

var _ interfaces.Repository = &Firestore{}

type Option func(*Firestore)

// WithCollectionPrefix prepends prefix + "_" to every collection name
func WithCollectionPrefix(prefix string) Option {
	return func(f *Firestore) {
		f.collectionPrefix = prefix
	}
}

// WithDatabaseID selects a named database instead of the default one
func WithDatabaseID(databaseID string) Option {
	return func(f *Firestore) {
		f.databaseID = databaseID
	}
}

// WithClient uses an existing client. Open then only checks the connection.
func WithClient(client *firestore.Client) Option {
	return func(f *Firestore) {
		f.client = client
	}
}

func New(projectID string, opts ...Option) *Firestore {
	f := &Firestore{projectID: projectID}
	for _, opt := range opts {
		opt(f)
	}

	f.resource = &resourceRepository{store: f}
	f.activity = &activityRepository{store: f}
	f.risk = &riskRepository{store: f}
	f.strategy = &strategyRepository{store: f}
	return f
}

// CollectionName returns the collection name of a record kind under prefix
func CollectionName(prefix, name string) string {
	if prefix != "" {
		return prefix + "_" + name
	}
	return name
}

func (f *Firestore) collection(name string) string {
	return CollectionName(f.collectionPrefix, name)
}

// Open creates the client and checks that the resources collection can be read
func (f *Firestore) Open(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.client == nil {
		var (
			client *firestore.Client
			err    error
		)
		if f.databaseID != "" {
			client, err = firestore.NewClientWithDatabase(ctx, f.projectID, f.databaseID)
		} else {
			client, err = firestore.NewClient(ctx, f.projectID)
		}
		if err != nil {
			return goerr.Wrap(err, "failed to create firestore client",
				goerr.V("projectID", f.projectID),
				goerr.V("databaseID", f.databaseID),
				goerr.T(model.ErrTagStoreUnavailable))
		}
		f.client = client
	}

	iter := f.client.Collection(f.collection(CollectionResources)).Limit(1).Documents(ctx)
	defer iter.Stop()
	if _, err := iter.Next(); err != nil && err != iterator.Done {
		return goerr.Wrap(err, "failed to reach firestore",
			goerr.V("projectID", f.projectID),
			goerr.V("code", status.Code(err).String()),
			goerr.T(model.ErrTagStoreUnavailable))
	}

	return nil
}

func (f *Firestore) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.client == nil {
		return nil
	}
	err := f.client.Close()
	f.client = nil
	if err != nil {
		return goerr.Wrap(err, "failed to close firestore client")
	}
	return nil
}

func (f *Firestore) conn() (*firestore.Client, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.client == nil {
		return nil, goerr.Wrap(model.ErrStoreNotOpen, "firestore is not open",
			goerr.V("projectID", f.projectID), goerr.T(model.ErrTagStoreUnavailable))
	}
	return f.client, nil
}

func (f *Firestore) Resource() interfaces.ResourceRepository {
	return f.resource
}

func (f *Firestore) Activity() interfaces.ActivityRepository {
	return f.activity
}

func (f *Firestore) Risk() interfaces.RiskRepository {
	return f.risk
}

func (f *Firestore) Strategy() interfaces.StrategyRepository {
	return f.strategy
}

// listDocuments reads every document of a collection and converts it with decode
func listDocuments[D any, M any](ctx context.Context, client *firestore.Client, collection string, decode func(*D) *M) ([]*M, error) {
	return queryDocuments(ctx, client.Collection(collection).Query, collection, decode)
}

// queryDocuments reads every document matched by the query
func queryDocuments[D any, M any](ctx context.Context, query firestore.Query, collection string, decode func(*D) *M) ([]*M, error) {
	iter := query.Documents(ctx)
	defer iter.Stop()

	out := []*M{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate documents", goerr.V("collection", collection))
		}

		var d D
		if err := doc.DataTo(&d); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal document",
				goerr.V("collection", collection), goerr.V(model.EntityIDKey, doc.Ref.ID))
		}
		out = append(out, decode(&d))
	}

	return out, nil
}

func setDocument(ctx context.Context, client *firestore.Client, collection, id string, doc any) error {
	if id == "" {
		return goerr.Wrap(model.ErrEmptyID, "cannot put document",
			goerr.V("collection", collection), goerr.T(model.ErrTagWriteFailed))
	}
	if _, err := client.Collection(collection).Doc(id).Set(ctx, doc); err != nil {
		return goerr.Wrap(err, "failed to set document",
			goerr.V("collection", collection), goerr.V(model.EntityIDKey, id), goerr.T(model.ErrTagWriteFailed))
	}
	return nil
}

// deleteDocument removes a document. Firestore deletes of missing documents succeed.
func deleteDocument(ctx context.Context, client *firestore.Client, collection, id string) error {
	if _, err := client.Collection(collection).Doc(id).Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete document",
			goerr.V("collection", collection), goerr.V(model.EntityIDKey, id), goerr.T(model.ErrTagWriteFailed))
	}
	return nil
}
