// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-med-keeper/models"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestViewerCtxKey(t *testing.T) {
	if ViewerCtxKey.String() != "viewer" {
		t.Errorf("expected 'viewer', got '%s'", ViewerCtxKey.String())
	}
}

func TestGetViewerFromContext_Success(t *testing.T) {
	want := models.Viewer{UserID: "u-42", Role: models.RoleDoctor}
	ctx := WithViewer(context.Background(), want)

	viewer, ok := GetViewerFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if viewer != want {
		t.Errorf("expected viewer %+v, got %+v", want, viewer)
	}
}

func TestGetViewerFromContext_Missing(t *testing.T) {
	viewer, ok := GetViewerFromContext(context.Background())

	if ok {
		t.Fatal("expected ok=false, got true")
	}
	if viewer != (models.Viewer{}) {
		t.Errorf("expected zero viewer, got %+v", viewer)
	}
}

func TestGetViewerFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), ViewerCtxKey, "u-42")

	if _, ok := GetViewerFromContext(ctx); ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}
}

func TestRequestContext(t *testing.T) {
	if rc := GetRequestContext(context.Background()); rc != (models.RequestContext{}) {
		t.Errorf("expected zero request context, got %+v", rc)
	}

	want := models.RequestContext{IPAddress: "10.0.0.1", UserAgent: "curl/8"}
	ctx := WithRequestContext(context.Background(), want)
	if rc := GetRequestContext(ctx); rc != want {
		t.Errorf("expected %+v, got %+v", want, rc)
	}
}
