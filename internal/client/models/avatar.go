package models

import (
	"encoding/base64"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// MaxAvatarSize bounds the file accepted by AvatarFromFile.
const MaxAvatarSize = 2 << 20

var (
	ErrAvatarTooLarge = errors.New("avatar file is too large")
	ErrNotAnImage     = errors.New("avatar file is not an image")
)

// AvatarFromFile reads an image file and encodes it as a data: URL suitable
// for User.ProfilePic.
func AvatarFromFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("error reading file: %w", err)
	}
	if len(data) > MaxAvatarSize {
		return "", ErrAvatarTooLarge
	}

	mt := mime.TypeByExtension(strings.ToLower(filepath.Ext(path)))
	if mt == "" {
		mt = http.DetectContentType(data)
	}
	if i := strings.IndexByte(mt, ';'); i >= 0 {
		mt = mt[:i]
	}
	if !strings.HasPrefix(mt, "image/") {
		return "", ErrNotAnImage
	}

	return "data:" + mt + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
