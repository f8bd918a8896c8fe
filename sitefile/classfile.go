package sitefile

import (
	"github.com/npubuild/sitecfg/buildenv"
	"github.com/qiniu/x/gsh"
)

const GopPackage = true

// -----------------------------------------------------------------------------

// SiteF represents an extra site configuration script. Scripts are
// listed in the scons_extra option and run against the construction
// environment before the build starts.
type SiteF struct {
	gsh.App

	fOnConfigure func(env *buildenv.Env, params *Params)
}

func (p *SiteF) app() *gsh.App {
	return &p.App
}

// OnConfigure event is invoked with the construction environment and
// the parameter set the orchestrator exports to the script.
func (p *SiteF) OnConfigure(f func(env *buildenv.Env, params *Params)) {
	p.fOnConfigure = f
}

// -----------------------------------------------------------------------------

// Params carries the arbitrary parameter mapping passed to every site
// script alongside the environment.
type Params struct {
	values map[string]any
}

// NewParams wraps values as script parameters. A nil map is allowed.
func NewParams(values map[string]any) *Params {
	if values == nil {
		values = make(map[string]any)
	}
	return &Params{values: values}
}

// Get returns the parameter value and whether it is present.
func (p *Params) Get(key string) (any, bool) {
	v, ok := p.values[key]
	return v, ok
}

// Set stores a parameter value; scripts may publish results back to
// the orchestrator this way.
func (p *Params) Set(key string, value any) {
	p.values[key] = value
}

// Len returns the number of parameters.
func (p *Params) Len() int {
	return len(p.values)
}

// -----------------------------------------------------------------------------

// Gopt_SiteF_Main is main entry of this classfile.
func Gopt_SiteF_Main(this interface {
	app() *gsh.App
	MainEntry()
}) {
	this.MainEntry()
	gsh.InitApp(this.app())
}
