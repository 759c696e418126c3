package speech

import "log"

// Speaker is the host platform's speech-output surface.
type Speaker interface {
	Speak(text string)
}

// LogSpeaker stands in for a real text-to-speech binding and writes the
// utterance to the process log.
type LogSpeaker struct{}

func (LogSpeaker) Speak(text string) {
	log.Printf("speech: %s", text)
}

// SpeakerFunc adapts a function to the Speaker interface.
type SpeakerFunc func(text string)

func (f SpeakerFunc) Speak(text string) { f(text) }
