package registry

import (
	"strings"
	"testing"
)

type fakeFrontend struct {
	id  string
	ran bool
}

func (f *fakeFrontend) ID() string    { return f.id }
func (f *fakeFrontend) Title() string { return "Fake " + f.id }
func (f *fakeFrontend) Run(Options) error {
	f.ran = true
	return nil
}

func TestRegisterAndCreate(t *testing.T) {
	Register("test_beta", func() Frontend { return &fakeFrontend{id: "test_beta"} })
	Register("test_alpha", func() Frontend { return &fakeFrontend{id: "test_alpha"} })

	if !Exists("test_alpha") || !Exists("test_beta") {
		t.Fatal("registered frontends not found")
	}
	if Exists("test_missing") {
		t.Error("Exists reported an unregistered frontend")
	}

	var ids []string
	for _, info := range List() {
		if strings.HasPrefix(info.ID, "test_") {
			ids = append(ids, info.ID)
			if info.Title != "Fake "+info.ID {
				t.Errorf("title for %s = %q", info.ID, info.Title)
			}
		}
	}
	if len(ids) != 2 || ids[0] != "test_alpha" || ids[1] != "test_beta" {
		t.Errorf("List() ids = %v, expected sorted [test_alpha test_beta]", ids)
	}

	fe, err := Create("test_alpha")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if err := fe.Run(Options{}); err != nil {
		t.Errorf("Run() error: %v", err)
	}
	if !fe.(*fakeFrontend).ran {
		t.Error("created frontend did not run")
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("test_nope")
	if err == nil || !strings.Contains(err.Error(), "test_nope") {
		t.Errorf("Create(unknown) error = %v", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test_dup", func() Frontend { return &fakeFrontend{id: "test_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register did not panic")
		}
	}()
	Register("test_dup", func() Frontend { return &fakeFrontend{id: "test_dup"} })
}
