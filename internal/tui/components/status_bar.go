package components

import (
	"reseq/internal/tui/styles"
)

// StatusKind picks the color of the status text
type StatusKind int

const (
	StatusInfo StatusKind = iota
	StatusSuccess
	StatusWarning
	StatusError
)

type StatusBar struct {
	text string
	kind StatusKind
}

func NewStatusBar() *StatusBar {
	return &StatusBar{}
}

func (s *StatusBar) SetText(text string) {
	s.Set(StatusInfo, text)
}

// Set replaces the status text
func (s *StatusBar) Set(kind StatusKind, text string) {
	s.kind = kind
	s.text = text
}

func (s *StatusBar) Clear() {
	s.text = ""
	s.kind = StatusInfo
}

func (s *StatusBar) Text() string {
	return s.text
}

func (s *StatusBar) Kind() StatusKind {
	return s.kind
}

func (s *StatusBar) View(st styles.Styles) string {
	if s.text == "" {
		return ""
	}

	switch s.kind {
	case StatusSuccess:
		return st.Success.Render(s.text)
	case StatusWarning:
		return st.Warning.Render(s.text)
	case StatusError:
		return st.Error.Render(s.text)
	}
	return st.Info.Render(s.text)
}
