package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"adminpanel/models"
)

// UploadService 엑셀/CSV 일괄 업로드
type UploadService struct {
	c *Client
}

// Upload 파일을 multipart/form-data 로 /{target}/importar 에 전송한다.
func (s *UploadService) Upload(ctx context.Context, target, filename string, r io.Reader) (models.UploadResult, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return models.UploadResult{}, err
	}
	if _, err := io.Copy(part, r); err != nil {
		return models.UploadResult{}, fmt.Errorf("read upload %s: %w", filename, err)
	}
	if err := mw.Close(); err != nil {
		return models.UploadResult{}, err
	}

	var result models.UploadResult
	err = s.c.do(ctx, "uploads", http.MethodPost, fmt.Sprintf("/%s/importar", target), &buf, mw.FormDataContentType(), &result)
	return result, err
}
