package ipa

import (
	"errors"
	"strings"
	"testing"

	"github.com/banshee-data/ipa-control/internal/camhelper"
	"github.com/banshee-data/ipa-control/internal/monitoring"
	"github.com/banshee-data/ipa-control/internal/tuning"
)

// recordingAlgorithm records its Init inputs and Prepare calls.
type recordingAlgorithm struct {
	name      string
	initCalls int
	initValue int
	prepared  []uint32
	initErr   error
	initOrder *[]string
}

func (a *recordingAlgorithm) Init(ctx *Context, tuningData *tuning.Data) error {
	a.initCalls++
	a.initValue, _ = tuningData.Get("value").Int()
	if a.initOrder != nil {
		*a.initOrder = append(*a.initOrder, a.name)
	}
	return a.initErr
}

func (a *recordingAlgorithm) Prepare(ctx *Context, frame uint32, frameCtx *FrameContext, params *Params) {
	a.prepared = append(a.prepared, frame)
}

func newTestContext() *Context {
	return NewContext(camhelper.NewEvdmOOM1(), monitoring.New("test", nil))
}

func TestRegisterDuplicateFails(t *testing.T) {
	r := NewRegistry()
	factory := func() Algorithm { return &recordingAlgorithm{} }

	if err := r.Register("Agc", factory); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	if err := r.Register("Agc", factory); err == nil {
		t.Fatal("duplicate Register must fail")
	}
}

func TestCreateAlgorithmsInitialisesInFileOrder(t *testing.T) {
	var order []string
	r := NewRegistry()
	r.MustRegister("First", func() Algorithm { return &recordingAlgorithm{name: "First", initOrder: &order} })
	r.MustRegister("Second", func() Algorithm { return &recordingAlgorithm{name: "Second", initOrder: &order} })

	root, err := tuning.Parse([]byte(`
algorithms:
  - Second:
      value: 7
  - First: {}
`))
	if err != nil {
		t.Fatal(err)
	}

	algos, err := r.CreateAlgorithms(newTestContext(), root)
	if err != nil {
		t.Fatalf("CreateAlgorithms: %v", err)
	}
	if len(algos) != 2 {
		t.Fatalf("got %d algorithms, want 2", len(algos))
	}
	if len(order) != 2 || order[0] != "Second" || order[1] != "First" {
		t.Errorf("init order = %v, want [Second First]", order)
	}

	// Each algorithm sees only its own scoped tuning section.
	second := algos[0].(*recordingAlgorithm)
	if second.initValue != 7 {
		t.Errorf("scoped tuning value = %d, want 7", second.initValue)
	}
	if second.initCalls != 1 {
		t.Errorf("initCalls = %d, want 1", second.initCalls)
	}
}

func TestCreateAlgorithmsUnknownIdentifier(t *testing.T) {
	r := NewRegistry()

	root, err := tuning.Parse([]byte("algorithms:\n  - Mystery: {}\n"))
	if err != nil {
		t.Fatal(err)
	}

	_, err = r.CreateAlgorithms(newTestContext(), root)
	if err == nil || !strings.Contains(err.Error(), "Mystery") {
		t.Errorf("expected unknown-identifier error naming Mystery, got %v", err)
	}
}

func TestCreateAlgorithmsInitErrorAbortsWithName(t *testing.T) {
	r := NewRegistry()
	r.MustRegister("Broken", func() Algorithm {
		return &recordingAlgorithm{initErr: errInitFailed}
	})

	root, err := tuning.Parse([]byte("algorithms:\n  - Broken: {}\n"))
	if err != nil {
		t.Fatal(err)
	}

	_, err = r.CreateAlgorithms(newTestContext(), root)
	if err == nil || !strings.Contains(err.Error(), "Broken") {
		t.Errorf("expected init error naming Broken, got %v", err)
	}
	if !errors.Is(err, errInitFailed) {
		t.Errorf("init error must be wrapped, got %v", err)
	}
}

var errInitFailed = errors.New("bad tuning section")

func TestCreateAlgorithmsEmptyTuning(t *testing.T) {
	r := NewRegistry()

	algos, err := r.CreateAlgorithms(newTestContext(), tuning.Empty())
	if err != nil {
		t.Fatalf("CreateAlgorithms: %v", err)
	}
	if len(algos) != 0 {
		t.Errorf("got %d algorithms, want 0", len(algos))
	}
}

func TestNewContext(t *testing.T) {
	helper := camhelper.NewEvdmOOM1()
	ctx := NewContext(helper, nil)

	if ctx.Helper != helper {
		t.Error("context must hold the helper it was given")
	}
	if ctx.Diag == nil {
		t.Error("nil diag must be replaced with a default sink")
	}
	if ctx.CameraID == NewContext(helper, nil).CameraID {
		t.Error("each camera instance must get its own ID")
	}
}
