// Package toolchain replaces the tool names in a construction
// environment with one of the predefined cross or vendor toolchains.
package toolchain

import "github.com/npubuild/sitecfg/buildenv"

// Tools is a named set of compiler, linker, assembler and archiver
// binaries.
type Tools struct {
	CC     string
	CXX    string
	Link   string
	AS     string
	AR     string
	Ranlib string
}

var toolchains = map[string]Tools{
	"aarch64": {
		CC:     "aarch64-linux-gnu-gcc",
		CXX:    "aarch64-linux-gnu-g++",
		Link:   "aarch64-linux-gnu-g++",
		AS:     "aarch64-linux-gnu-as",
		AR:     "aarch64-linux-gnu-ar",
		Ranlib: "aarch64-linux-gnu-ranlib",
	},
	"armclang": {
		CC:     "armclang --target=arm-arm-none-eabi",
		CXX:    "armclang --target=arm-arm-none-eabi",
		Link:   "armlink",
		AS:     "armclang --target=arm-arm-none-eabi",
		AR:     "armar",
		Ranlib: "armar -s",
	},
}

// Setup installs the tool names for the given toolchain into e.
// "native" and any unknown name leave the ambient defaults in place.
// Tool availability is not checked here; a missing binary surfaces
// when the build first invokes it.
func Setup(e *buildenv.Env, name string) {
	t, ok := toolchains[name]
	if !ok {
		return
	}
	e.CC = t.CC
	e.CXX = t.CXX
	e.Link = t.Link
	e.AS = t.AS
	e.AR = t.AR
	e.Ranlib = t.Ranlib
}

// Known returns the names with a predefined tool set.
func Known() []string {
	names := make([]string, 0, len(toolchains))
	for name := range toolchains {
		names = append(names, name)
	}
	return names
}
