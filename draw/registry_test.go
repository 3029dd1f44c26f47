package draw

import (
	"strings"
	"testing"
)

// withCleanRegistry swaps in an empty registry for the duration of the test.
func withCleanRegistry(t *testing.T) {
	t.Helper()
	registryMu.Lock()
	saved := registry
	registry = make(map[string]registration)
	registryMu.Unlock()

	t.Cleanup(func() {
		registryMu.Lock()
		registry = saved
		registryMu.Unlock()
	})
}

func TestRegister(t *testing.T) {
	withCleanRegistry(t)

	Register("mock", func() Backend { return &mockBackend{} }, ".mock")

	if !IsRegistered("mock") {
		t.Fatal("mock should be registered")
	}
	b, err := NewBackend("mock")
	if err != nil {
		t.Fatalf("NewBackend() = %v", err)
	}
	if _, ok := b.(*mockBackend); !ok {
		t.Errorf("NewBackend returned %T", b)
	}
}

func TestRegisterPanics(t *testing.T) {
	withCleanRegistry(t)

	assertPanics(t, "nil factory", func() { Register("x", nil) })

	Register("dup", func() Backend { return &mockBackend{} })
	assertPanics(t, "duplicate", func() {
		Register("dup", func() Backend { return &mockBackend{} })
	})
}

func TestNewBackendUnknown(t *testing.T) {
	withCleanRegistry(t)

	_, err := NewBackend("nope")
	if err == nil || !strings.Contains(err.Error(), "forgotten import") {
		t.Errorf("NewBackend(unknown) = %v", err)
	}
}

func TestBackendsSorted(t *testing.T) {
	withCleanRegistry(t)

	Register("zeta", func() Backend { return &mockBackend{} }, ".z")
	Register("alpha", func() Backend { return &mockBackend{} }, ".a", ".aa")

	infos := Backends()
	if len(infos) != 2 || infos[0].Name != "alpha" || infos[1].Name != "zeta" {
		t.Fatalf("Backends() = %+v", infos)
	}
	if strings.Join(infos[0].Extensions, " ") != ".a .aa" {
		t.Errorf("alpha extensions = %v", infos[0].Extensions)
	}
}

func TestBackendForExtension(t *testing.T) {
	withCleanRegistry(t)

	Register("mock", func() Backend { return &mockBackend{} }, ".mock")

	if _, err := BackendForExtension(".MOCK"); err != nil {
		t.Errorf("BackendForExtension(.MOCK) = %v", err)
	}
	if _, err := BackendForExtension(".gif"); err == nil {
		t.Error("BackendForExtension(.gif) should fail")
	}
}

func assertPanics(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}
