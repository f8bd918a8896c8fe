// Copyright 2025 The sitecfg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ixgo

import (
	"github.com/goplus/ixgo/xgobuild"
	"github.com/goplus/mod/modfile"

	_ "github.com/npubuild/sitecfg/internal/ixgo/pkg/github.com/npubuild/sitecfg/buildenv"
	_ "github.com/npubuild/sitecfg/internal/ixgo/pkg/github.com/npubuild/sitecfg/sitefile"
	_ "github.com/npubuild/sitecfg/internal/ixgo/pkg/github.com/npubuild/sitecfg/toolchain"
	_ "github.com/npubuild/sitecfg/internal/ixgo/pkg/github.com/qiniu/x/gsh"
)

func init() {
	xgobuild.RegisterProject(&modfile.Project{
		Ext:   "_site.gox",
		Class: "SiteF",
		PkgPaths: []string{
			"github.com/npubuild/sitecfg/sitefile",
		},
		Import: []*modfile.Import{
			{
				Name: "semver",
				Path: "golang.org/x/mod/semver",
			},
			{
				Name: "toolchain",
				Path: "github.com/npubuild/sitecfg/toolchain",
			},
		},
	})
}
