// internal/models/draft.go
package models

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// DraftItem is one pending entry of an unpublished admin upload batch.
// The JSON names are the persisted draft contract: the image travels as
// a base64 data URL so an uploadable binary can be reconstructed
// losslessly after a reload.
type DraftItem struct {
	EncodedImage string `json:"encodedImage"`
	Title        string `json:"title"`
	Price        string `json:"price"`
	Category     string `json:"category"`
	Gender       string `json:"gender"`
	Description  string `json:"description"`
	FileName     string `json:"fileName"`
}

// EncodeImage packs raw image bytes into the data-URL form DraftItem
// persists. An empty contentType falls back to image/jpeg.
func EncodeImage(data []byte, contentType string) string {
	if contentType == "" {
		contentType = "image/jpeg"
	}
	return fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data))
}

// ImageBytes reverses EncodeImage, returning the original bytes and the
// declared content type.
func (d *DraftItem) ImageBytes() ([]byte, string, error) {
	header, payload, ok := strings.Cut(d.EncodedImage, ",")
	if !ok {
		return nil, "", fmt.Errorf("encoded image is not a data URL")
	}

	contentType := "image/jpeg"
	if rest, found := strings.CutPrefix(header, "data:"); found {
		if mime, _, hasParams := strings.Cut(rest, ";"); hasParams && mime != "" {
			contentType = mime
		}
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image payload: %w", err)
	}

	return data, contentType, nil
}

// TitleFromFileName derives the default draft title from a selected
// file: extension stripped, dashes and underscores become spaces.
func TitleFromFileName(fileName string) string {
	name := fileName
	if idx := strings.LastIndex(name, "."); idx > 0 {
		name = name[:idx]
	}
	name = strings.ReplaceAll(name, "-", " ")
	name = strings.ReplaceAll(name, "_", " ")
	return strings.TrimSpace(name)
}
