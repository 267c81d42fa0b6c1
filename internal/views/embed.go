package views

import "embed"

//go:embed templates/*.html static/*
var viewsFS embed.FS
