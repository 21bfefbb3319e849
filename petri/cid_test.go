package petri

import (
	"strings"
	"testing"
)

func twoStepNet(tokens int, arcID string) *Net {
	net := NewNet()
	net.AddPlace("p1", tokens)
	net.AddPlace("p2", 0)
	net.AddTransition("t1")
	net.AddArc(arcID, "p1", "t1")
	net.AddArc("", "t1", "p2")
	net.BuildRelationships()
	return net
}

func TestCIDStable(t *testing.T) {
	a := twoStepNet(1, "a1")
	b := twoStepNet(1, "a1")

	if a.CID() == "" {
		t.Fatal("Expected non-empty CID")
	}
	if !strings.HasPrefix(a.CID(), "cid:") {
		t.Errorf("Expected cid: prefix, got %s", a.CID())
	}
	if a.CID() != b.CID() {
		t.Errorf("Expected identical nets to share a CID, got %s vs %s", a.CID(), b.CID())
	}
}

func TestCIDChangesWithMarking(t *testing.T) {
	a := twoStepNet(1, "a1")
	b := twoStepNet(2, "a1")

	if a.CID() == b.CID() {
		t.Error("Expected marking change to change the CID")
	}
	if !a.StructurallyEqual(b) {
		t.Error("Expected marking change to preserve the identity hash")
	}
}

func TestIdentityHashIgnoresArcIDs(t *testing.T) {
	a := twoStepNet(1, "a1")
	b := twoStepNet(1, "renamed")

	if a.CID() == b.CID() {
		t.Error("Expected arc id change to change the CID")
	}
	if a.IdentityHash() != b.IdentityHash() {
		t.Error("Expected arc id change to preserve the identity hash")
	}
}

func TestIdentityHashDetectsStructureChange(t *testing.T) {
	a := twoStepNet(1, "")
	b := twoStepNet(1, "")
	b.AddArc("", "p2", "t1")
	b.BuildRelationships()

	if a.StructurallyEqual(b) {
		t.Error("Expected added arc to change the identity hash")
	}
	if a.StructurallyEqual(nil) {
		t.Error("Expected nil comparison to be false")
	}
}
