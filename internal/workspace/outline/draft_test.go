package outline

import (
	"errors"
	"reflect"
	"testing"
)

func TestDraftEditing(t *testing.T) {
	d := NewDraft()

	d.AddItem("Intro")
	d.AddItem("")
	d.AddItem("Results")

	want := []string{"Intro", DefaultItemTitle, "Results"}
	if !reflect.DeepEqual(d.Items(), want) {
		t.Fatalf("items = %v, want %v", d.Items(), want)
	}

	if err := d.EditItem(1, "Methods"); err != nil {
		t.Fatalf("edit: %v", err)
	}
	if err := d.RemoveItem(0); err != nil {
		t.Fatalf("remove: %v", err)
	}
	want = []string{"Methods", "Results"}
	if !reflect.DeepEqual(d.Items(), want) {
		t.Fatalf("items = %v, want %v", d.Items(), want)
	}
}

func TestDraftIndexOutOfRange(t *testing.T) {
	d := NewDraft()
	d.AddItem("Only")

	for _, i := range []int{-1, 1} {
		if err := d.RemoveItem(i); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("RemoveItem(%d) = %v, want ErrIndexOutOfRange", i, err)
		}
		if err := d.EditItem(i, "x"); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("EditItem(%d) = %v, want ErrIndexOutOfRange", i, err)
		}
	}
	if d.Len() != 1 {
		t.Errorf("len = %d, want 1", d.Len())
	}
}

func TestDraftItemsReturnsCopy(t *testing.T) {
	d := NewDraft()
	d.AddItem("Intro")

	items := d.Items()
	items[0] = "mutated"
	if d.Items()[0] != "Intro" {
		t.Error("Items() exposed internal storage")
	}
}

func TestDraftReplace(t *testing.T) {
	d := NewDraft()
	d.AddItem("old")

	src := []string{"A", "B"}
	d.Replace(src)
	src[0] = "mutated"

	if !reflect.DeepEqual(d.Items(), []string{"A", "B"}) {
		t.Errorf("items = %v, want [A B]", d.Items())
	}
}
