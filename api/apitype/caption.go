package apitype

type Caption struct {
	Top    string
	Bottom string
}

func (s Caption) IsEmpty() bool {
	return s.Top == "" && s.Bottom == ""
}

// SpeechText is the text read aloud: top and bottom joined with a space.
func (s Caption) SpeechText() string {
	return s.Top + " " + s.Bottom
}
