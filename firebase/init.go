package firebase

import (
	"context"
	"log"

	firebase "firebase.google.com/go/v4"

	"github.com/vinoterra/winery-registry/common"
)

// App is the shared firebase app for the hosting project. It backs both the
// identity provider calls and the ID token verification on the API surface.
var App *firebase.App

func init() {
	ctx := context.Background()

	var err error

	App, err = firebase.NewApp(ctx, &firebase.Config{ProjectID: common.ProjectID})
	if err != nil {
		log.Fatalln(err)
	}
}
