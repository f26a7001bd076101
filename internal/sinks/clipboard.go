package sinks

import "github.com/atotto/clipboard"

// ClipboardSink writes formatted text to the system clipboard. When the
// clipboard is unavailable (no display, missing helper binary, permission
// denied) the configured fallback receives the full text so the user can
// copy it manually. Success and failure are both terminal; there is no
// retry.
type ClipboardSink struct {
	// Fallback is invoked with the text when the clipboard write fails.
	// Optional.
	Fallback func(text string)

	// write is swappable for tests.
	write func(text string) error
}

func NewClipboardSink(fallback func(text string)) *ClipboardSink {
	return &ClipboardSink{
		Fallback: fallback,
		write:    clipboard.WriteAll,
	}
}

// Copy attempts the clipboard write and reports whether it succeeded.
func (s *ClipboardSink) Copy(text string) bool {
	if err := s.write(text); err != nil {
		if s.Fallback != nil {
			s.Fallback(text)
		}
		return false
	}
	return true
}
