package buildenv

// Warning set required by the secure development lifecycle. Applied to
// every compilation unit, with warnings promoted to errors.
var commonWarnings = []string{
	"-Werror", "-Wall", "-Wextra",
	"-Wformat=2", "-Wno-format-nonliteral",
	"-Wctor-dtor-privacy", "-Woverloaded-virtual", "-Wsign-promo",
	"-Wstrict-overflow=2", "-Wswitch-default", "-Wlogical-op",
	"-Wnoexcept", "-Wstrict-null-sentinel", "-Wconversion",
}

// SetupCommonEnv applies the fixed compiler and linker settings every
// component of the driver stack builds with. The optimization level
// follows the debug option; the coverage option adds instrumentation
// to both compile and link steps.
func SetupCommonEnv(e *Env) {
	e.AppendCPPFlags(commonWarnings...)
	e.AppendCPPFlags("-fPIC")
	e.AppendCXXFlags("-std=c++14")
	if e.Bool("debug") {
		e.AppendCXXFlags("-O0", "-g")
	} else {
		e.AppendCXXFlags("-O3")
	}
	// Project-local headers must win over injected include paths.
	e.PrependCPPPath("include")

	if e.Bool("coverage") {
		e.AppendCXXFlags("--coverage", "-O0")
		e.AppendLinkFlags("--coverage")
	}
	// RUNPATH instead of RPATH, so relocated dependent libraries are
	// still found through LD_LIBRARY_PATH.
	e.AppendLinkFlags("-Wl,--enable-new-dtags")
}
