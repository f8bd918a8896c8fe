package toolchain

import (
	"testing"

	"github.com/npubuild/sitecfg/buildenv"
)

func TestSetupAarch64(t *testing.T) {
	e := buildenv.New()
	Setup(e, "aarch64")

	if e.CC != "aarch64-linux-gnu-gcc" {
		t.Errorf("CC = %q, want aarch64-linux-gnu-gcc", e.CC)
	}
	if e.CXX != "aarch64-linux-gnu-g++" || e.Link != "aarch64-linux-gnu-g++" {
		t.Errorf("CXX/LINK = %q/%q, want aarch64-linux-gnu-g++", e.CXX, e.Link)
	}
	if e.AS != "aarch64-linux-gnu-as" || e.AR != "aarch64-linux-gnu-ar" || e.Ranlib != "aarch64-linux-gnu-ranlib" {
		t.Errorf("AS/AR/RANLIB = %q/%q/%q, want the aarch64 binutils", e.AS, e.AR, e.Ranlib)
	}
}

func TestSetupArmclang(t *testing.T) {
	e := buildenv.New()
	Setup(e, "armclang")

	if e.CC != "armclang --target=arm-arm-none-eabi" {
		t.Errorf("CC = %q, want the bare-metal armclang", e.CC)
	}
	if e.Link != "armlink" {
		t.Errorf("LINK = %q, want armlink", e.Link)
	}
	if e.AR != "armar" || e.Ranlib != "armar -s" {
		t.Errorf("AR/RANLIB = %q/%q, want armar/armar -s", e.AR, e.Ranlib)
	}
}

func TestSetupLeavesUnknownUnchanged(t *testing.T) {
	for _, name := range []string{"native", "", "riscv64", "aarch64 "} {
		e := buildenv.New()
		Setup(e, name)
		if e.CC != "gcc" || e.CXX != "g++" || e.Link != "g++" ||
			e.AS != "as" || e.AR != "ar" || e.Ranlib != "ranlib" {
			t.Errorf("Setup(%q) changed the native tools", name)
		}
	}
}

func TestKnown(t *testing.T) {
	names := Known()
	if len(names) != 2 {
		t.Fatalf("Known() = %v, want two entries", names)
	}
	seen := map[string]bool{}
	for _, n := range names {
		seen[n] = true
	}
	if !seen["aarch64"] || !seen["armclang"] {
		t.Errorf("Known() = %v, want aarch64 and armclang", names)
	}
}
