// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestManagerIDCtxKey(t *testing.T) {
	if ManagerIDCtxKey.String() != "managerID" {
		t.Errorf("expected 'managerID', got '%s'", ManagerIDCtxKey.String())
	}
}

func TestGetManagerIDFromContext_Success(t *testing.T) {
	ctx := context.WithValue(context.Background(), ManagerIDCtxKey, "manager-42")

	managerID, ok := GetManagerIDFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if managerID != "manager-42" {
		t.Errorf("expected managerID='manager-42', got '%s'", managerID)
	}
}

func TestGetManagerIDFromContext_Missing(t *testing.T) {
	ctx := context.Background()

	managerID, ok := GetManagerIDFromContext(ctx)

	if ok {
		t.Fatal("expected ok=false, got true")
	}
	if managerID != "" {
		t.Errorf("expected empty managerID, got '%s'", managerID)
	}
}

func TestGetManagerIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), ManagerIDCtxKey, int64(42))

	managerID, ok := GetManagerIDFromContext(ctx)

	if ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}
	if managerID != "" {
		t.Errorf("expected empty managerID, got '%s'", managerID)
	}
}

func TestGetManagerIDFromContext_EmptyValue(t *testing.T) {
	ctx := context.WithValue(context.Background(), ManagerIDCtxKey, "")

	managerID, ok := GetManagerIDFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true for empty value, got false")
	}
	if managerID != "" {
		t.Errorf("expected empty managerID, got '%s'", managerID)
	}
}

func TestGetManagerIDFromContext_DifferentKey(t *testing.T) {
	otherKey := contextKey("otherKey")
	ctx := context.WithValue(context.Background(), otherKey, "manager-99")

	managerID, ok := GetManagerIDFromContext(ctx)

	if ok {
		t.Fatal("expected ok=false for different key, got true")
	}
	if managerID != "" {
		t.Errorf("expected empty managerID, got '%s'", managerID)
	}
}
