package ui

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/OpticalFlyer/canvasui/input"
	"github.com/OpticalFlyer/canvasui/surface"
)

// spy implements every capability and appends each call to a shared log.
type spy struct {
	name string
	log  *[]string
}

func (s *spy) record(format string, args ...any) {
	*s.log = append(*s.log, s.name+"."+fmt.Sprintf(format, args...))
}

func (s *spy) Bounds() BoundingBox                 { return NewBoundingBox() }
func (s *spy) Render(dst surface.Surface)          { s.record("Render") }
func (s *spy) Dehover()                            { s.record("Dehover") }
func (s *spy) ReceiveMouseOver(x, y float64)       { s.record("ReceiveMouseOver(%v,%v)", x, y) }
func (s *spy) ReceiveClick(x, y float64)           { s.record("ReceiveClick(%v,%v)", x, y) }
func (s *spy) Deselect()                           { s.record("Deselect") }
func (s *spy) ReceiveCursorMove(d Direction)       { s.record("ReceiveCursorMove(%v)", d) }
func (s *spy) ReceiveCharacter(ch rune)            { s.record("ReceiveCharacter(%c)", ch) }
func (s *spy) DeleteCharacter()                    { s.record("DeleteCharacter") }
func (s *spy) Update()                             { s.record("Update") }
func (s *spy) Close() error                        { s.record("Close"); return nil }

// inert has no capabilities besides Bounds.
type inert struct{}

func (*inert) Bounds() BoundingBox { return BoundingBox{} }

func newSpyManager(names ...string) (*Manager, []*spy, *[]string) {
	log := []string{}
	m := NewManager(nil, nil)
	spies := make([]*spy, len(names))
	for i, n := range names {
		spies[i] = &spy{name: n, log: &log}
		m.AddWidget(spies[i])
	}
	m.AddWidget(&inert{})
	return m, spies, &log
}

func TestMouseDownDeselectsAllBeforeClicking(t *testing.T) {
	m, _, log := newSpyManager("a", "b")
	m.OnMouseDown(input.MouseEvent{X: 1, Y: 2})

	want := []string{"a.Deselect", "b.Deselect", "a.ReceiveClick(1,2)", "b.ReceiveClick(1,2)"}
	if diff := cmp.Diff(want, *log); diff != "" {
		t.Errorf("dispatch order (-want +got):\n%s", diff)
	}
}

func TestMouseMoveDehoversAllBeforeHovering(t *testing.T) {
	m, _, log := newSpyManager("a", "b")
	m.OnMouseMove(input.MouseEvent{X: 3, Y: 4})

	want := []string{"a.Dehover", "b.Dehover", "a.ReceiveMouseOver(3,4)", "b.ReceiveMouseOver(3,4)"}
	if diff := cmp.Diff(want, *log); diff != "" {
		t.Errorf("dispatch order (-want +got):\n%s", diff)
	}
}

func TestKeyDownClassification(t *testing.T) {
	tests := []struct {
		name string
		code int
		want []string
	}{
		{"Character", input.KeyA, []string{"a.ReceiveCharacter(a)"}},
		{"Modifier", input.KeyShift, []string{}},
		{"Left", input.KeyLeft, []string{"a.ReceiveCursorMove(left)"}},
		{"Right", input.KeyRight, []string{"a.ReceiveCursorMove(right)"}},
		{"Backspace", input.KeyBackspace, []string{"a.DeleteCharacter"}},
		{"Unmapped", input.KeyEscape, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _, log := newSpyManager("a")
			m.OnKeyDown(input.KeyEvent{Code: tt.code})
			if diff := cmp.Diff(tt.want, *log); diff != "" {
				t.Errorf("dispatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestKeyDownCharacterWinsOverOtherBranches(t *testing.T) {
	// A dictionary that maps the backspace code to a character must only
	// type that character.
	chars := input.CharacterDict{input.KeyBackspace: {Unshifted: 'b', Shifted: 'B'}}
	mods := input.ModifierDict{input.KeyBackspace: "Bogus"}
	m := NewManager(chars, mods)
	log := []string{}
	m.AddWidget(&spy{name: "a", log: &log})

	m.OnKeyDown(input.KeyEvent{Code: input.KeyBackspace})
	if diff := cmp.Diff([]string{"a.ReceiveCharacter(b)"}, log); diff != "" {
		t.Errorf("dispatch (-want +got):\n%s", diff)
	}
	if m.ModifierPressed("Bogus") {
		t.Error("modifier branch also fired")
	}
}

func TestShiftSelectsShiftedCharacter(t *testing.T) {
	m, _, log := newSpyManager("a")

	m.OnKeyDown(input.KeyEvent{Code: input.KeyShift})
	if !m.ModifierPressed(input.ModShift) {
		t.Fatal("Shift not pressed after key down")
	}
	m.OnKeyDown(input.KeyEvent{Code: input.Key0 + 1})
	m.OnKeyUp(input.KeyEvent{Code: input.KeyShift})
	m.OnKeyDown(input.KeyEvent{Code: input.Key0 + 1})

	want := []string{"a.ReceiveCharacter(!)", "a.ReceiveCharacter(1)"}
	if diff := cmp.Diff(want, *log); diff != "" {
		t.Errorf("characters (-want +got):\n%s", diff)
	}
}

func TestFocusLostReleasesModifiers(t *testing.T) {
	m := NewManager(nil, nil)
	m.OnKeyDown(input.KeyEvent{Code: input.KeyShift})
	m.OnKeyDown(input.KeyEvent{Code: input.KeyControl})

	m.OnFocusLost()
	for _, name := range []string{input.ModShift, input.ModControl} {
		if m.ModifierPressed(name) {
			t.Errorf("%s still pressed after focus loss", name)
		}
	}
}

func TestOverlappingFieldsSelectOnlyTheHitOne(t *testing.T) {
	m := NewManager(nil, nil)
	a := NewTextField(0, 0, nil, TextFieldOptions{Width: 100, Height: 30})
	b := NewTextField(50, 0, nil, TextFieldOptions{Width: 100, Height: 30})
	m.AddWidget(a)
	m.AddWidget(b)
	defer m.Wipe()

	// Only a contains x=25.
	m.OnMouseDown(input.MouseEvent{X: 25, Y: 10})
	if !a.Selected() || b.Selected() {
		t.Fatalf("after first click: a=%v b=%v; want true false", a.Selected(), b.Selected())
	}

	// Only b contains x=125; a must lose selection.
	m.OnMouseDown(input.MouseEvent{X: 125, Y: 10})
	if a.Selected() || !b.Selected() {
		t.Fatalf("after second click: a=%v b=%v; want false true", a.Selected(), b.Selected())
	}

	m.OnKeyDown(input.KeyEvent{Code: input.KeyA})
	if a.Text() != "" || b.Text() != "a" {
		t.Errorf("typed into a=%q b=%q; want only b", a.Text(), b.Text())
	}
	if !m.IsInteractingWithUI() {
		t.Error("IsInteractingWithUI() = false with a selected field")
	}

	m.OnMouseDown(input.MouseEvent{X: 500, Y: 500})
	if a.Selected() || b.Selected() {
		t.Error("click on empty space left a field selected")
	}
	if m.IsInteractingWithUI() {
		t.Error("IsInteractingWithUI() = true with no selected field")
	}
}

func TestAddWidgetIsIdempotent(t *testing.T) {
	m := NewManager(nil, nil)
	b := NewButton(0, 0, "OK", nil, ButtonOptions{})
	m.AddWidget(b)
	m.AddWidget(b)
	if n := len(m.Widgets()); n != 1 {
		t.Errorf("len(Widgets()) = %d; want 1", n)
	}
}

func TestRemoveWidgetRemovesEveryOccurrenceAndCloses(t *testing.T) {
	m, spies, log := newSpyManager("a", "b")
	a := spies[0]
	// Duplicates can only arise from direct manipulation; removal still
	// has to clear all of them.
	m.widgets = append(m.widgets, a)

	m.RemoveWidget(a)
	for _, w := range m.Widgets() {
		if w == Widget(a) {
			t.Fatal("widget still present after RemoveWidget")
		}
	}
	if n := len(m.Widgets()); n != 2 {
		t.Errorf("len(Widgets()) = %d; want 2", n)
	}
	if diff := cmp.Diff([]string{"a.Close"}, *log); diff != "" {
		t.Errorf("close calls (-want +got):\n%s", diff)
	}

	*log = (*log)[:0]
	m.RemoveWidget(a)
	if len(*log) != 0 {
		t.Errorf("removing an unmanaged widget closed it: %v", *log)
	}
}

func TestRemoveWidgetStopsTextFieldTimer(t *testing.T) {
	m := NewManager(nil, nil)
	f := NewTextField(0, 0, nil, TextFieldOptions{})
	m.AddWidget(f)

	m.RemoveWidget(f)
	if f.stop != nil || f.ticks != nil {
		t.Error("blink timer still running after removal")
	}
}

func TestWipe(t *testing.T) {
	m, _, log := newSpyManager("a", "b")
	m.Wipe()
	if n := len(m.Widgets()); n != 0 {
		t.Errorf("len(Widgets()) = %d; want 0", n)
	}
	if diff := cmp.Diff([]string{"a.Close", "b.Close"}, *log); diff != "" {
		t.Errorf("close calls (-want +got):\n%s", diff)
	}
}

func TestRenderAndUpdateFollowInsertionOrder(t *testing.T) {
	m, _, log := newSpyManager("a", "b", "c")
	m.Update()
	m.Render(newRecorder())

	want := []string{"a.Update", "b.Update", "c.Update", "a.Render", "b.Render", "c.Render"}
	if diff := cmp.Diff(want, *log); diff != "" {
		t.Errorf("call order (-want +got):\n%s", diff)
	}
}

func TestRenderPaintsLaterWidgetsOnTop(t *testing.T) {
	m := NewManager(nil, nil)
	m.AddWidget(NewCheckBox(0, 0, nil, CheckBoxOptions{}))
	m.AddWidget(NewButton(0, 0, "OK", nil, ButtonOptions{}))

	r := newRecorder()
	m.Render(r)
	if diff := cmp.Diff([]string{"stroke-rect", "fill-rect", "text"}, r.ops()); diff != "" {
		t.Errorf("paint order (-want +got):\n%s", diff)
	}
}

func TestMouseUpIsIgnored(t *testing.T) {
	m, _, log := newSpyManager("a")
	m.OnMouseUp(input.MouseEvent{X: 1, Y: 1})
	if len(*log) != 0 {
		t.Errorf("OnMouseUp dispatched %v", *log)
	}
}
