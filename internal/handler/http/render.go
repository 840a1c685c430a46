// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	viewLogin   = "login"
	viewIndex   = "index"
	viewProduct = "product"
	viewMyPage  = "mypage"
)

// layoutViews are rendered inside templates/layout.html.
var layoutViews = []string{viewIndex, viewProduct, viewMyPage}

type views struct {
	pages map[string]*template.Template
}

func parseViews() (*views, error) {
	v := &views{pages: make(map[string]*template.Template, len(layoutViews)+1)}

	login, err := template.ParseFS(templateFS, "templates/login.html")
	if err != nil {
		return nil, fmt.Errorf("template %s: %w", viewLogin, err)
	}
	v.pages[viewLogin] = login

	for _, name := range layoutViews {
		page, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("template %s: %w", name, err)
		}
		v.pages[name] = page
	}

	return v, nil
}

// render executes the view into a buffer first so a failing template never
// leaves a half-written page behind.
func (v *views) render(w http.ResponseWriter, name string, data any, statusCode int) error {
	page, ok := v.pages[name]
	if !ok {
		return fmt.Errorf("%w: unknown view %q", ErrRenderingView, name)
	}

	entry := "layout"
	if name == viewLogin {
		entry = viewLogin
	}

	var buf bytes.Buffer
	if err := page.ExecuteTemplate(&buf, entry, data); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrRenderingView, name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, err := buf.WriteTo(w)
	return err
}
