package core

import "time"

// Greeting picks the salutation for the home report from the hour of day.
func Greeting(t time.Time) string {
	switch h := t.Hour(); {
	case h < 6:
		return "Good night"
	case h < 12:
		return "Good morning"
	case h < 18:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}
