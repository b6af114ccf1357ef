package classes

import (
	"testing"

	"github.com/go-json-experiment/json"
)

func TestImmutable(t *testing.T) {
	t.Parallel()

	e := newExample("abc", 5, true)
	im := e.Immutable()

	e.SetString("changed")
	if im.GetString() != "abc" || im.GetInt() != 5 || !im.GetBool() {
		t.Errorf("TestImmutable: snapshot changed with its source: %s", im)
	}

	im2 := im.SetString("x").SetInt(1).SetBool(false)
	if im.String() != "Example(abc, 5, true)" {
		t.Errorf("TestImmutable: setter modified the receiver: %s", im)
	}
	if im2.String() != "Example(x, 1, false)" {
		t.Errorf("TestImmutable: got %s, want %s", im2, "Example(x, 1, false)")
	}

	m := im.Mutable()
	m.SetInt(10)
	if im.GetInt() != 5 {
		t.Errorf("TestImmutable: Mutable() result shares state with the snapshot")
	}
	if !m.Equal(newExample("abc", 10, true)) {
		t.Errorf("TestImmutable: got %s, want %s", m, "Example(abc, 10, true)")
	}

	back := newExample("abc", 5, true).Immutable().Mutable()
	if back.Hash() != newExample("abc", 5, true).Hash() {
		t.Errorf("TestImmutable: Immutable().Mutable() changed the hash")
	}
}

func TestImExampleEqualHash(t *testing.T) {
	t.Parallel()

	a := newExample("abc", 5, true).Immutable()
	b := newExample("abc", 5, true).Immutable()

	tests := []struct {
		name  string
		other any
		want  bool
	}{
		{name: "same fields", other: b, want: true},
		{name: "different field", other: b.SetInt(6)},
		{name: "mutable Example", other: b.Mutable()},
		{name: "nil", other: nil},
	}

	for _, test := range tests {
		if got := a.Equal(test.other); got != test.want {
			t.Errorf("TestImExampleEqualHash(%s): got %v, want %v", test.name, got, test.want)
		}
	}

	if a.Hash() != b.Hash() {
		t.Errorf("TestImExampleEqualHash: equal snapshots have different hashes")
	}
	if a.Hash() != newExample("abc", 5, true).Hash() {
		t.Errorf("TestImExampleEqualHash: snapshot hash differs from its source")
	}
}

func TestImExampleJSON(t *testing.T) {
	t.Parallel()

	e := newExample("abc", 5, true)

	got, err := json.Marshal(e.Immutable())
	if err != nil {
		t.Fatalf("TestImExampleJSON: Marshal error: %s", err)
	}
	want, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("TestImExampleJSON: Marshal error: %s", err)
	}
	if string(got) != string(want) {
		t.Errorf("TestImExampleJSON: got %s, want %s", got, want)
	}
}
