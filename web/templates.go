// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package web carries the server-rendered HTML pages, embedded into the
// binary so that deployment is a single file.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses every embedded page template. Each page is addressed by
// its file name, e.g. "register.html".
func Templates() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/*.html")
}
