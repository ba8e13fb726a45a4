package dal

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/vinoterra/winery-registry/docstore"
	"github.com/vinoterra/winery-registry/docstore/iface"
	"github.com/vinoterra/winery-registry/framework/connection"
	"github.com/vinoterra/winery-registry/notification/domain"
)

const notificationsCollection = "notifications"

type NotificationsFirestore struct {
	firestoreClientFun connection.FirestoreFromContextFun
	documentsHandler   iface.DocumentsHandler
}

func NewNotificationsFirestoreWithClient(fun connection.FirestoreFromContextFun) *NotificationsFirestore {
	return &NotificationsFirestore{
		firestoreClientFun: fun,
		documentsHandler:   docstore.DocumentHandler{},
	}
}

func (d *NotificationsFirestore) notificationRef(ctx context.Context, key string) *firestore.DocumentRef {
	return d.firestoreClientFun(ctx).Collection(notificationsCollection).Doc(key)
}

func (d *NotificationsFirestore) Exists(ctx context.Context, key string) (bool, error) {
	_, err := d.documentsHandler.Get(ctx, d.notificationRef(ctx, key))
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

func (d *NotificationsFirestore) Set(ctx context.Context, key string, notification *domain.Notification) error {
	return d.documentsHandler.Set(ctx, d.notificationRef(ctx, key), notification)
}

func (d *NotificationsFirestore) Delete(ctx context.Context, key string) error {
	return d.documentsHandler.Delete(ctx, d.notificationRef(ctx, key))
}
