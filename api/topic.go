package api

type Topic string

const (
	ImageSelected     Topic = "image-selected"
	ImageDecoded      Topic = "image-decoded"
	ImageDecodeFailed Topic = "image-decode-failed"

	MemeGenerate  Topic = "meme-generate"
	MemeReset     Topic = "meme-reset"
	MemeReadAloud Topic = "meme-read-aloud"

	VolumeChanged Topic = "volume-changed"

	VoicesRequestRefresh Topic = "voices-request-refresh"
	VoiceSelected        Topic = "voice-selected"

	CanvasUpdated   Topic = "gui-canvas-updated"
	ControlsUpdated Topic = "gui-controls-updated"
	VolumeUpdated   Topic = "gui-volume-updated"
	VoicesUpdated   Topic = "gui-voices-updated"
	ShowError       Topic = "gui-show-error"
)
