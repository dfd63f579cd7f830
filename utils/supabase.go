package utils

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"

	storage "github.com/supabase-community/storage-go"

	"github.com/parladach/parladach-api/config"
)

// PhotoStorage sube fotos de perfil a Supabase Storage.
type PhotoStorage struct {
	baseURL string
	apiKey  string
}

func NewPhotoStorage(s config.Settings) *PhotoStorage {
	return &PhotoStorage{baseURL: s.SupabaseURL, apiKey: s.SupabaseKey}
}

// UploadProfilePhoto sube una imagen al bucket 'uploads' bajo teachers/<fileID>.<ext>
// y retorna la URL pública.
func (p *PhotoStorage) UploadProfilePhoto(fileHeader *multipart.FileHeader, fileID string) (string, error) {
	storageClient := storage.NewClient(p.baseURL+"/storage/v1", p.apiKey, nil)

	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	ext := filepath.Ext(fileHeader.Filename)
	objectPath := fmt.Sprintf("teachers/%s%s", fileID, ext)

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, file); err != nil {
		return "", err
	}

	contentType := fileHeader.Header.Get("Content-Type")
	options := storage.FileOptions{
		ContentType: &contentType,
	}

	if _, err := storageClient.UploadFile("uploads", objectPath, &buf, options); err != nil {
		return "", err
	}

	publicURL := fmt.Sprintf("%s/storage/v1/object/public/uploads/%s", p.baseURL, objectPath)
	return publicURL, nil
}
