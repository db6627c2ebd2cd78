package main

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/fx"
)

func TestAppOptions_Validate(t *testing.T) {
	err := fx.ValidateApp(
		appOptions(""),
		cliOutput(io.Discard),
		fx.Invoke(func(cliDeps) {}),
	)
	assert.NoError(t, err)
}

func TestServeApp_Validate(t *testing.T) {
	assert.NoError(t, fx.ValidateApp(serveApp("")))
}

func TestRootCmd_Commands(t *testing.T) {
	root := newRootCmd()

	for _, name := range []string{"login", "logout", "whoami", "dashboard", "orders", "bill", "profile", "attendance", "report-issue", "watch", "serve"} {
		cmd, _, err := root.Find([]string{name})
		if assert.NoError(t, err, name) {
			assert.Equal(t, name, cmd.Name())
		}
	}
}
