package jsondoc_test

import (
	"testing"

	"github.com/dshills/rewind"
	"github.com/dshills/rewind/jsondoc"
	"github.com/dshills/rewind/policy"
)

func TestSetAndDelete(t *testing.T) {
	doc := jsondoc.Empty()
	doc = jsondoc.SetCommand{Path: "name", Value: "ada"}.Apply(doc)
	doc = jsondoc.SetCommand{Path: "tags.0", Value: "pioneer"}.Apply(doc)

	if got := doc.Get("name").String(); got != "ada" {
		t.Errorf("name = %q", got)
	}
	if got := doc.Get("tags.0").String(); got != "pioneer" {
		t.Errorf("tags.0 = %q", got)
	}

	doc = jsondoc.DeleteCommand{Path: "name"}.Apply(doc)
	if doc.Get("name").Exists() {
		t.Error("name should be deleted")
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	before := jsondoc.New(`{"a":1}`)
	jsondoc.SetCommand{Path: "a", Value: 2}.Apply(before)
	if got := before.Get("a").Int(); got != 1 {
		t.Errorf("input document mutated: a = %d", got)
	}
}

func TestUndoRedoOverDocument(t *testing.T) {
	policies := map[string]rewind.Policy{
		"always":   policy.Always(),
		"never":    policy.Never(),
		"every3":   policy.EveryN(3),
		"distance": policy.ByDistance(2),
	}

	for name, p := range policies {
		t.Run(name, func(t *testing.T) {
			cur := rewind.New[jsondoc.Document]().WithPolicy(p).Build(jsondoc.Empty())

			cur.Edit(jsondoc.SetCommand{Path: "user.name", Value: "ada"})
			cur.Edit(jsondoc.SetCommand{Path: "user.age", Value: 36})
			cur.Edit(jsondoc.SetCommand{Path: "user.name", Value: "grace"})
			cur.Edit(jsondoc.DeleteCommand{Path: "user.age"})

			want := cur.Current().Raw()

			if st, err := cur.UndoTo(0); err != nil || st.Raw() != "{}" {
				t.Fatalf("UndoTo(0) = (%q, %v)", st.Raw(), err)
			}
			st, err := cur.RedoTo(4)
			if err != nil {
				t.Fatalf("RedoTo(4): %v", err)
			}
			if st.Raw() != want {
				t.Errorf("replayed document %q, want %q", st.Raw(), want)
			}

			st, _ = cur.UndoMulti(2)
			if got := st.Get("user.name").String(); got != "ada" {
				t.Errorf("user.name at position 2 = %q, want %q", got, "ada")
			}
			if !st.Get("user.age").Exists() {
				t.Error("user.age should exist at position 2")
			}
		})
	}
}

func TestHistoryDescriptions(t *testing.T) {
	cur := rewind.New[jsondoc.Document]().Build(jsondoc.Empty())
	cur.Edit(jsondoc.SetCommand{Path: "k", Value: "v"})
	cur.Edit(jsondoc.DeleteCommand{Path: "k"})

	infos := cur.History()
	if len(infos) != 2 {
		t.Fatalf("History() len = %d", len(infos))
	}
	if infos[0].Description != "set k = v" {
		t.Errorf("infos[0].Description = %q", infos[0].Description)
	}
	if infos[1].Description != "delete k" {
		t.Errorf("infos[1].Description = %q", infos[1].Description)
	}
}
