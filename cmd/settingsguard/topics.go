package main

import (
	"embed"
	"io/fs"
)

//go:embed topics
var topicsFS embed.FS

// helpTopics returns the embedded help topics rooted at the topics dir
func helpTopics() fs.FS {
	sub, err := fs.Sub(topicsFS, "topics")
	if err != nil {
		panic("settingsguard: embedded help topics missing: " + err.Error())
	}
	return sub
}
