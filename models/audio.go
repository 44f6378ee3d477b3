package models

type AudioClip struct {
	MediaFile
}

func (a *AudioClip) File() *MediaFile {
	return &a.MediaFile
}

func (a *AudioClip) GetPath() string {
	return a.pathIn("audio")
}
