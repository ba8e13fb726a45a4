package docstore

import (
	"context"

	"cloud.google.com/go/firestore"
)

// AutomaticWriteBatch allows making firestore batch requests with more than
// 500 write operations without keeping track of the batch size.
type AutomaticWriteBatch struct {
	fs      *firestore.Client
	batches []*firestore.WriteBatch
	i       int
	size    int
	limit   int
}

func NewAutomaticWriteBatch(fs *firestore.Client, limit int) *AutomaticWriteBatch {
	if limit <= 0 || limit > 500 {
		limit = 500
	}

	return &AutomaticWriteBatch{
		fs:      fs,
		batches: []*firestore.WriteBatch{fs.Batch()},
		i:       0,
		size:    0,
		limit:   limit,
	}
}

// Commit commits the accumulated batches in order and resets the batch.
func (b *AutomaticWriteBatch) Commit(ctx context.Context) []error {
	var errs []error

	for i, batch := range b.batches {
		if i == b.i && b.size == 0 {
			break
		}

		if _, err := batch.Commit(ctx); err != nil {
			errs = append(errs, err)
		}
	}

	b.i = 0
	b.size = 0
	b.batches = []*firestore.WriteBatch{b.fs.Batch()}

	return errs
}

func (b *AutomaticWriteBatch) addOperation() *AutomaticWriteBatch {
	b.size++
	if b.size >= b.limit {
		b.batches = append(b.batches, b.fs.Batch())
		b.size = 0
		b.i++
	}

	return b
}

// Set adds a Set operation to the batch. See DocumentRef.Set for details.
func (b *AutomaticWriteBatch) Set(dr *firestore.DocumentRef, data interface{}, opts ...firestore.SetOption) *AutomaticWriteBatch {
	b.batches[b.i].Set(dr, data, opts...)
	return b.addOperation()
}

// Update adds an Update operation to the batch. See DocumentRef.Update for details.
func (b *AutomaticWriteBatch) Update(dr *firestore.DocumentRef, data []firestore.Update, opts ...firestore.Precondition) *AutomaticWriteBatch {
	b.batches[b.i].Update(dr, data, opts...)
	return b.addOperation()
}

// Delete adds a Delete operation to the batch. See DocumentRef.Delete for details.
func (b *AutomaticWriteBatch) Delete(dr *firestore.DocumentRef, opts ...firestore.Precondition) *AutomaticWriteBatch {
	b.batches[b.i].Delete(dr, opts...)
	return b.addOperation()
}
