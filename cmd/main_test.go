package main

import (
	"testing"

	"github.com/medilink/api/internal/configure"
	"github.com/medilink/api/internal/testutil"
)

func TestValidateConfigRejectsEmptySecret(t *testing.T) {
	t.Parallel()

	config := &configure.Config{}
	testutil.IsNotNil(t, validateConfig(config), "empty signing secret is fatal")

	config.Credentials.JWTSecret = "a-real-secret"
	testutil.IsNil(t, validateConfig(config), "configured secret passes")
}
