package ui

import (
	"os"
	"path/filepath"
	"testing"
)

func TestHeadlessManager_Force(t *testing.T) {
	hm := NewHeadlessManager()

	hm.ForceHeadless(true)
	if !hm.IsHeadless() {
		t.Error("IsHeadless() = false after ForceHeadless(true)")
	}
	if hm.CanAnimate() {
		t.Error("CanAnimate() = true after ForceHeadless(true)")
	}

	hm.ForceHeadless(false)
	if hm.IsHeadless() {
		t.Error("IsHeadless() = true after ForceHeadless(false)")
	}
	if !hm.CanAnimate() {
		t.Error("CanAnimate() = false after ForceHeadless(false)")
	}
}

func TestHeadlessManager_RegularFileIsNotTerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "stdin"))
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = f.Close() }()

	hm := &HeadlessManager{input: f, output: f}
	if !hm.IsHeadless() {
		t.Error("IsHeadless() = false for a regular file")
	}
	if hm.CanAnimate() {
		t.Error("CanAnimate() = true for a regular file")
	}
}

func TestHeadlessManager_NilFiles(t *testing.T) {
	hm := &HeadlessManager{}
	if !hm.IsHeadless() {
		t.Error("IsHeadless() = false without input")
	}
	if hm.CanAnimate() {
		t.Error("CanAnimate() = true without output")
	}
}
