package services

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"testing"
)

func multipartFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("resume", filename)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatal(err)
	}
	if err := writer.Close(); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest("POST", "/", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if err := req.ParseMultipartForm(1 << 20); err != nil {
		t.Fatal(err)
	}

	return req.MultipartForm.File["resume"][0]
}

func TestSaveFileRejectsNonPDF(t *testing.T) {
	storage := NewStorageService(t.TempDir())

	header := multipartFileHeader(t, "resume.txt", []byte("plain text"))
	if _, _, err := storage.SaveFile(header); err == nil {
		t.Errorf("expected an error for a non-pdf extension")
	}
}

func TestSaveAndDeleteFile(t *testing.T) {
	dir := t.TempDir()
	storage := NewStorageService(dir)

	header := multipartFileHeader(t, "resume.pdf", []byte("%PDF-1.4 fake"))
	filename, filePath, err := storage.SaveFile(header)
	if err != nil {
		t.Fatalf("SaveFile failed: %v", err)
	}

	if _, err := os.Stat(filePath); err != nil {
		t.Fatalf("saved file not on disk: %v", err)
	}

	// Generated names must not echo the client-supplied filename
	if filename == "resume.pdf" {
		t.Errorf("stored filename should be generated, got %q", filename)
	}

	if err := storage.DeleteFile(filename); err != nil {
		t.Fatalf("DeleteFile failed: %v", err)
	}
	if _, err := os.Stat(filePath); !os.IsNotExist(err) {
		t.Errorf("file still exists after deletion")
	}
}

func TestSaveFileUniqueNames(t *testing.T) {
	storage := NewStorageService(t.TempDir())

	first := multipartFileHeader(t, "resume.pdf", []byte("a"))
	second := multipartFileHeader(t, "resume.pdf", []byte("b"))

	nameA, _, err := storage.SaveFile(first)
	if err != nil {
		t.Fatal(err)
	}
	nameB, _, err := storage.SaveFile(second)
	if err != nil {
		t.Fatal(err)
	}

	if nameA == nameB {
		t.Errorf("two uploads of the same filename stored under the same name: %q", nameA)
	}
}
