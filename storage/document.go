package storage

import (
	"encoding/json"
	"os"

	log "github.com/sirupsen/logrus"
)

// loadDocument reads a whole JSON document into out. A missing, unreadable or
// unparseable file degrades to the zero value so a storage failure never takes
// the process down.
func loadDocument(path string, out any) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.WithFields(log.Fields{"path": path, "error": err}).Error("Failed to read document, using empty default")
		}
		return
	}
	if err := json.Unmarshal(data, out); err != nil {
		log.WithFields(log.Fields{"path": path, "error": err}).Error("Failed to parse document, using empty default")
	}
}

// saveDocument replaces a whole JSON document on disk. Write failures are
// logged and swallowed; the in-memory state stays authoritative for the
// lifetime of the process.
func saveDocument(path string, v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.WithFields(log.Fields{"path": path, "error": err}).Error("Failed to marshal document")
		return
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.WithFields(log.Fields{"path": path, "error": err}).Error("Failed to save document")
	}
}
