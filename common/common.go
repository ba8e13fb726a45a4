package common

import (
	"os"
)

var (
	// ProjectID is the GCP project hosting the registry.
	ProjectID string

	// ProjectNumber of the hosting GCP project, used for service account emails.
	ProjectNumber string

	// GAEService is the app engine service name.
	GAEService string

	// GAEVersion is the deployed app engine version.
	GAEVersion string

	// Production flag indicating if the app is running the production backend on appengine.
	Production bool

	// IsLocalhost flag indicating if the app is running on localhost.
	IsLocalhost bool

	// CtxKeys are the gin context keys populated by the auth middleware.
	CtxKeys struct {
		UID    string
		Email  string
		Name   string
		Claims string
	}
)

const (
	productionProject = "vinoterra-registry"

	// TestProjectID is the firestore project id used by package tests.
	TestProjectID = "vinoterra-registry-test"
)

func init() {
	initEnvVariables()

	CtxKeys.UID = "uid"
	CtxKeys.Email = "email"
	CtxKeys.Name = "name"
	CtxKeys.Claims = "claims"
}

func initEnvVariables() {
	ProjectID = GetEnv("GOOGLE_CLOUD_PROJECT", "vinoterra-registry-dev")
	ProjectNumber = GetEnv("GOOGLE_CLOUD_PROJECT_NUMBER", "")
	GAEService = GetEnv("GAE_SERVICE", "registry-api")
	GAEVersion = GetEnv("GAE_VERSION", "localhost")

	Production = ProjectID == productionProject
	IsLocalhost = GAEVersion == "localhost"
}

// GetEnv returns the value of the environment variable, or a fallback when unset.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return fallback
}
