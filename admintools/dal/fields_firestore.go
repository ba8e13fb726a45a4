package dal

import (
	"context"

	"cloud.google.com/go/firestore"

	"github.com/vinoterra/winery-registry/docstore"
	"github.com/vinoterra/winery-registry/docstore/iface"
	"github.com/vinoterra/winery-registry/framework/connection"
)

const batchLimit = 250

type FieldsFirestore struct {
	firestoreClientFun connection.FirestoreFromContextFun
	documentsHandler   iface.DocumentsHandler
}

func NewFieldsFirestoreWithClient(fun connection.FirestoreFromContextFun) *FieldsFirestore {
	return &FieldsFirestore{
		firestoreClientFun: fun,
		documentsHandler:   docstore.DocumentHandler{},
	}
}

// ReplaceFieldName copies oldField to newField and removes oldField on every
// document of the collection carrying it, in one batched write, and returns
// the number of documents changed. Documents without the old field are left
// untouched.
func (d *FieldsFirestore) ReplaceFieldName(ctx context.Context, collection, oldField, newField string) (int, error) {
	fs := d.firestoreClientFun(ctx)

	snaps, err := d.documentsHandler.GetAll(ctx, fs.Collection(collection).Query)
	if err != nil {
		return 0, err
	}

	batch := docstore.NewAutomaticWriteBatch(fs, batchLimit)
	replaced := 0

	for _, snap := range snaps {
		value, ok := snap.Data()[oldField]
		if !ok {
			continue
		}

		batch.Update(snap.Ref(), []firestore.Update{
			{Path: newField, Value: value},
			{Path: oldField, Value: firestore.Delete},
		})

		replaced++
	}

	if errs := batch.Commit(ctx); len(errs) > 0 {
		return 0, errs[0]
	}

	return replaced, nil
}
