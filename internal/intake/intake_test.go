package intake

import (
	"errors"
	"strings"
	"testing"

	"github.com/DRSN-tech/inventory-backend/pkg/e"
)

func TestValidateNilFile(t *testing.T) {
	if err := Validate(nil); err != nil {
		t.Errorf("nil file must be valid, got %v", err)
	}
}

func TestValidateExtension(t *testing.T) {
	f := NewFile("photo.gif", "image/gif", 100, nil)

	err := Validate(f)
	if !errors.Is(err, e.ErrBadFileExtension) {
		t.Fatalf("expected extension violation, got %v", err)
	}
	if !strings.Contains(err.Error(), "photo.gif") {
		t.Errorf("error must name the offending file: %v", err)
	}
}

func TestValidateRenamedFilePasses(t *testing.T) {
	f := NewFile("photo.png", "image/png", 100, nil)

	if err := Validate(f); err != nil {
		t.Errorf("expected valid file, got %v", err)
	}
}

func TestValidateMimeType(t *testing.T) {
	f := NewFile("photo.png", "image/gif", 100, nil)

	if err := Validate(f); !errors.Is(err, e.ErrBadFileMimeType) {
		t.Errorf("expected mime type violation, got %v", err)
	}
}

func TestValidateSizeLimit(t *testing.T) {
	tests := []struct {
		name string
		size int64
		ok   bool
	}{
		{"at limit", MaxFileSize, true},
		{"over limit", MaxFileSize + 1, false},
	}

	for _, tt := range tests {
		f := NewFile("photo.jpg", "image/jpeg", tt.size, nil)
		err := Validate(f)
		if tt.ok && err != nil {
			t.Errorf("%s: unexpected error %v", tt.name, err)
		}
		if !tt.ok && !errors.Is(err, e.ErrFileTooLarge) {
			t.Errorf("%s: expected size violation, got %v", tt.name, err)
		}
	}
}

func TestValidateExtensionCaseSensitive(t *testing.T) {
	f := NewFile("photo.PNG", "image/png", 100, nil)

	if err := Validate(f); !errors.Is(err, e.ErrBadFileExtension) {
		t.Errorf("extension check is case-sensitive, got %v", err)
	}
}

func TestValidateNoExtension(t *testing.T) {
	f := NewFile("photo", "image/png", 100, nil)

	if err := Validate(f); !errors.Is(err, e.ErrBadFileExtension) {
		t.Errorf("expected extension violation for bare name, got %v", err)
	}
}
