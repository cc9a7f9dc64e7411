// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/MKhiriev/go-time-diary/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	rows := [][2]string{
		{"Приложение", "TimeDiary"},
		{"Версия", valueOrNA(info.BuildVersion())},
		{"Дата сборки", valueOrNA(info.BuildDate())},
		{"Коммит", valueOrNA(info.BuildCommit())},
	}

	labelWidth := 0
	for _, row := range rows {
		labelWidth = max(labelWidth, runewidth.StringWidth(row[0]))
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, fmt.Sprintf("%s  %s", runewidth.FillRight(row[0], labelWidth), row[1]))
	}

	return renderPage("О ПРОГРАММЕ", strings.Join(lines, "\n"), "v / esc: назад")
}

func valueOrNA(v string) string {
	if v = strings.TrimSpace(v); v == "" {
		return "N/A"
	}
	return v
}
