package main

import (
	"testing"

	"go.uber.org/fx"
)

func TestAppGraphIsComplete(t *testing.T) {
	if err := fx.ValidateApp(appOptions()); err != nil {
		t.Fatalf("fx graph invalid: %v", err)
	}
}
