package fonts

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestLoadDefaults(t *testing.T) {
	if err := LoadDefaults(); err != nil {
		t.Fatalf("LoadDefaults() error = %v", err)
	}
	for _, name := range []FontName{GoRegular, GoBold, GoTitle, GoSmall} {
		if name.Get() == nil {
			t.Errorf("%s.Get() = nil", name)
		}
	}

	// Larger faces report taller line metrics.
	if GoTitle.Get().Metrics().Height <= GoSmall.Get().Metrics().Height {
		t.Error("title face is not taller than small face")
	}
}

func TestLoadFont_RejectsGarbage(t *testing.T) {
	if err := LoadFont("broken", []byte("not a font")); err == nil {
		t.Error("LoadFont() with invalid data returned nil error")
	}
	if err := LoadFont("regular", goregular.TTF); err != nil {
		t.Errorf("LoadFont() error = %v", err)
	}
}

func TestGet_UnknownPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Get() on an unknown font did not panic")
		}
	}()
	FontName("missing").Get()
}
