// Copyright 2025 The sitecfg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package extras runs the extra site scripts named by the scons_extra
// option against the construction environment.
package extras

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/goplus/ixgo"

	"github.com/npubuild/sitecfg/buildenv"
	"github.com/npubuild/sitecfg/internal/loader"
	"github.com/npubuild/sitecfg/sitefile"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "sitecfg",
})

// Load reads the scons_extra option and, when it lists site scripts,
// loads each one and invokes its OnConfigure hook with the
// environment and params. A missing or empty option is a no-op.
func Load(e *buildenv.Env, params *sitefile.Params) error {
	scripts := e.Strings("scons_extra")
	if len(scripts) == 0 {
		return nil
	}
	logger.Info("loading extra site scripts", "scripts", scripts)

	ctx := ixgo.NewContext(ixgo.SupportMultipleInterp)
	ld := loader.NewSiteLoader(ctx)
	for _, path := range scripts {
		if err := runScript(ld, path, e, params); err != nil {
			return err
		}
	}
	return nil
}

func runScript(ld loader.Loader, path string, e *buildenv.Env, params *sitefile.Params) error {
	st, err := ld.Load(path)
	if err != nil {
		return fmt.Errorf("load site script %s: %w", path, err)
	}
	onConfigure, ok := st.Value("fOnConfigure").(func(*buildenv.Env, *sitefile.Params))
	if !ok || onConfigure == nil {
		logger.Debug("site script declares no onConfigure hook", "script", path)
		return nil
	}
	onConfigure(e, params)
	return nil
}
