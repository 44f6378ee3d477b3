package models

type Sprite struct {
	MediaFile
}

func (s *Sprite) File() *MediaFile {
	return &s.MediaFile
}

func (s *Sprite) GetPath() string {
	return s.pathIn("sprite")
}
