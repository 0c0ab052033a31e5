package apitype

// Voice is a synthesizer voice. File identifies the voice to the
// synthesizer, Name and Lang are for display.
type Voice struct {
	Name    string
	Lang    string
	File    string
	Default bool
}

func (s *Voice) Label() string {
	label := s.Name + " (" + s.Lang + ")"
	if s.Default {
		label += " -- DEFAULT"
	}
	return label
}

func (s *Voice) String() string {
	if s == nil {
		return "Voice<nil>"
	}
	return "Voice{" + s.Label() + "}"
}

// FindVoice returns the voice with the given name or nil
func FindVoice(voices []*Voice, name string) *Voice {
	for _, voice := range voices {
		if voice.Name == name {
			return voice
		}
	}
	return nil
}

// DefaultVoice returns the voice flagged as default, the first one if none
// is flagged and nil for an empty list.
func DefaultVoice(voices []*Voice) *Voice {
	for _, voice := range voices {
		if voice.Default {
			return voice
		}
	}
	if len(voices) > 0 {
		return voices[0]
	}
	return nil
}
