package services

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"slices"

	"adminpanel/models"
)

// DefaultUploadMaxBytes 10 MiB
const DefaultUploadMaxBytes int64 = 10 << 20

// UploadTargets 일괄 등록을 받는 백엔드 리소스
var UploadTargets = []string{
	"usuarios",
	"clientes",
	"choperas",
	"empleados",
	"mercaderistas",
	"rutas",
	"mantenimientos",
}

var uploadExtensions = []string{".xlsx", ".xls", ".csv"}

// Uploader sends one file to an import endpoint.
type Uploader interface {
	Upload(ctx context.Context, target, filename string, r io.Reader) (models.UploadResult, error)
}

// UploadFile 업로드할 파일 정보
type UploadFile struct {
	Name   string
	Size   int64
	Reader io.Reader
}

// UploadForm 파일 업로드 모달
type UploadForm struct {
	formGate

	api       Uploader
	activity  ActivityRecorder
	maxBytes  int64
	onSuccess func(models.UploadResult)
}

// NewUploadForm maxBytes 가 0 이하이면 DefaultUploadMaxBytes 를 사용한다.
func NewUploadForm(api Uploader, activity ActivityRecorder, maxBytes int64, onSuccess func(models.UploadResult)) *UploadForm {
	if activity == nil {
		activity = NoopActivityRecorder{}
	}
	if maxBytes <= 0 {
		maxBytes = DefaultUploadMaxBytes
	}
	return &UploadForm{api: api, activity: activity, maxBytes: maxBytes, onSuccess: onSuccess}
}

// IsUploadTarget reports whether target accepts bulk imports.
func IsUploadTarget(target string) bool {
	return slices.Contains(UploadTargets, target)
}

// uploadInput 업로드 검증 규칙. 최대 크기는 폼마다 달라서 Validate 에서 따로 검사한다.
type uploadInput struct {
	Target string `field:"target" validate:"uploadtarget"`
	Name   string `field:"file" validate:"required,uploadext"`
	Size   int64  `field:"file" validate:"gt=0"`
}

var uploadMessages = fieldMessages{
	"target":         "Destino de carga no válido",
	"file.required":  "Seleccione un archivo",
	"file.uploadext": "Solo se permiten archivos .xlsx, .xls o .csv",
	"file.gt":        "El archivo está vacío",
}

func (f *UploadForm) Validate(target string, file UploadFile) error {
	in := uploadInput{Target: target, Name: file.Name, Size: file.Size}
	if file.Reader == nil {
		in.Name = ""
	}
	errs := checkStruct(in, uploadMessages)
	if file.Size > f.maxBytes {
		errs.add("file", fmt.Sprintf("El archivo supera el tamaño máximo de %d MB", f.maxBytes>>20))
	}
	return errs.orNil()
}

// Submit 검증 후 multipart 로 전송한다.
func (f *UploadForm) Submit(ctx context.Context, actor, target string, file UploadFile) (result models.UploadResult, err error) {
	if err := f.enter(); err != nil {
		return models.UploadResult{}, err
	}
	defer func() { f.leave(err) }()

	if err := f.Validate(target, file); err != nil {
		return models.UploadResult{}, err
	}

	result, err = f.api.Upload(ctx, target, filepath.Base(file.Name), io.LimitReader(file.Reader, f.maxBytes))
	if err != nil {
		return models.UploadResult{}, err
	}

	f.activity.Record(ctx, actor, models.ActionUploadFile,
		fmt.Sprintf("target=%s file=%s processed=%d failed=%d", target, file.Name, result.Processed, result.Failed))
	if f.onSuccess != nil {
		f.onSuccess(result)
	}
	return result, nil
}
