package service

import (
	"context"
	"testing"

	"github.com/calckit/numerics/internal/shared/types"
)

type mockProvider struct {
	id string
}

func (m *mockProvider) Definition() types.Service {
	return types.Service{
		ID:           m.id,
		Name:         "Mock Service",
		Description:  "A mock service for testing",
		Category:     types.CategoryMath,
		Capabilities: []string{"reduction", "sampling"},
		Tools: []types.Tool{
			{
				ID:          m.id + ".test",
				Name:        "Test Tool",
				Description: "A test tool",
				Returns:     "number",
			},
		},
	}
}

func (m *mockProvider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return &types.Result{
		Success: true,
		Data:    map[string]interface{}{"result": "success"},
	}, nil
}

func TestRegister(t *testing.T) {
	r := NewRegistry()
	p := &mockProvider{id: "test"}

	if err := r.Register(p); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if _, ok := r.Get("test"); !ok {
		t.Error("Service should be registered")
	}
}

func TestRegisterEmptyID(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(&mockProvider{id: ""}); err == nil {
		t.Error("Register should reject an empty service ID")
	}
}

func TestList(t *testing.T) {
	r := NewRegistry()
	r.Register(&mockProvider{id: "test1"})
	r.Register(&mockProvider{id: "test2"})

	services := r.List(nil)
	if len(services) != 2 {
		t.Errorf("Expected 2 services, got %d", len(services))
	}

	category := types.CategoryMath
	services = r.List(&category)
	if len(services) != 2 {
		t.Errorf("Expected 2 math services, got %d", len(services))
	}

	other := types.CategorySystem
	services = r.List(&other)
	if len(services) != 0 {
		t.Errorf("Expected 0 system services, got %d", len(services))
	}
}

func TestUnregister(t *testing.T) {
	r := NewRegistry()
	r.Register(&mockProvider{id: "test"})
	r.Unregister("test")

	if _, ok := r.Get("test"); ok {
		t.Error("Service should be unregistered")
	}
}

func TestExecute(t *testing.T) {
	r := NewRegistry()
	r.Register(&mockProvider{id: "test"})

	result, err := r.Execute(context.Background(), "test.test", nil, nil)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !result.Success {
		t.Error("Execute should succeed")
	}
}

func TestExecuteBadToolID(t *testing.T) {
	r := NewRegistry()

	if _, err := r.Execute(context.Background(), "noseparator", nil, nil); err == nil {
		t.Error("Execute should reject tool IDs without a service prefix")
	}

	if _, err := r.Execute(context.Background(), "missing.tool", nil, nil); err == nil {
		t.Error("Execute should fail for unknown services")
	}
}

func TestDiscover(t *testing.T) {
	r := NewRegistry()
	r.Register(&mockProvider{id: "numeric"})

	services := r.Discover("I need numeric sampling helpers", 5)
	if len(services) != 1 {
		t.Fatalf("Expected 1 discovered service, got %d", len(services))
	}
	if services[0].ID != "numeric" {
		t.Errorf("Expected numeric service, got %s", services[0].ID)
	}
}

func TestStats(t *testing.T) {
	r := NewRegistry()
	r.Register(&mockProvider{id: "test1"})
	r.Register(&mockProvider{id: "test2"})

	stats := r.Stats()
	if stats["total_services"] != 2 {
		t.Errorf("Expected 2 services, got %v", stats["total_services"])
	}
	if stats["total_tools"] != 2 {
		t.Errorf("Expected 2 tools, got %v", stats["total_tools"])
	}
}
