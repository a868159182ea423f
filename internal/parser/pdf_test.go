package parser

import (
	"errors"
	"strings"
	"testing"
)

func TestIsPDF_MagicBytes(t *testing.T) {
	if !IsPDF([]byte("%PDF-1.7\n%âãÏÓ\n1 0 obj\n")) {
		t.Error("expected %PDF magic to be detected as a PDF")
	}
}

func TestIsPDF_RejectsOtherContent(t *testing.T) {
	inputs := [][]byte{
		[]byte("hello world"),
		[]byte("<html><body>not a pdf</body></html>"),
		{},
	}
	for _, in := range inputs {
		if IsPDF(in) {
			t.Errorf("expected %q not to be detected as a PDF", in)
		}
	}
}

func TestValidate_GarbageIsInvalid(t *testing.T) {
	_, err := Validate([]byte("%PDF-1.7 but then nothing sensible follows"))
	if err == nil {
		t.Fatal("expected error for garbage input")
	}
	if !errors.Is(err, ErrInvalidPDF) {
		t.Errorf("expected ErrInvalidPDF, got %v", err)
	}
}

func TestExtractPages_NonPDFRejected(t *testing.T) {
	_, _, err := ExtractPages([]byte("plain text masquerading as a book"))
	if !errors.Is(err, ErrNotPDF) {
		t.Errorf("expected ErrNotPDF, got %v", err)
	}
}

func TestClassifyPDFError(t *testing.T) {
	cases := []struct {
		name string
		in   error
		want error
	}{
		{"password", errors.New("pdfcpu: please provide the correct password"), ErrPasswordProtected},
		{"encrypted", errors.New("file is encrypted"), ErrPasswordProtected},
		{"structure", errors.New("xref table corrupt"), ErrInvalidPDF},
	}
	for _, tc := range cases {
		got := classifyPDFError(tc.in)
		if !errors.Is(got, tc.want) {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
		if !strings.Contains(got.Error(), tc.in.Error()) {
			t.Errorf("%s: expected original cause in %q", tc.name, got.Error())
		}
	}
}
