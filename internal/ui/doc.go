package ui

// Package ui contains the Fyne-based form front end: one window collecting
// the run inputs, a history dropdown that repopulates the form, and a clip
// preview link. Each submit runs one orchestrator run to completion before
// the window becomes responsive again.
