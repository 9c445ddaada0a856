package domain

import (
	"fmt"
	"strings"

	apperrors "mihrab/internal/platform/errors"
)

const (
	LanguageEnglish = "en"
	LanguageArabic  = "ar"

	// DefaultCalculationMethod is Aladhan method 2, Islamic Society of North America.
	DefaultCalculationMethod = 2
)

type Settings struct {
	Language             string
	CalculationMethod    int
	NotificationsEnabled bool
	AdhanSoundID         string
}

func Defaults() Settings {
	return Settings{Language: LanguageEnglish, CalculationMethod: DefaultCalculationMethod}
}

func NormalizeLanguage(raw string) (string, error) {
	lang := strings.ToLower(strings.TrimSpace(raw))
	switch lang {
	case LanguageEnglish, LanguageArabic:
		return lang, nil
	default:
		return "", fmt.Errorf("%w: unsupported language %q", apperrors.ErrInvalidInput, raw)
	}
}

func ValidateMethod(method int) error {
	if method < 0 {
		return fmt.Errorf("%w: calculation method must not be negative, got %d", apperrors.ErrInvalidInput, method)
	}
	return nil
}

// Patch is a partial update; nil fields are left as they are.
type Patch struct {
	Language             *string
	CalculationMethod    *int
	NotificationsEnabled *bool
	AdhanSoundID         *string
}

func (s Settings) Apply(p Patch) (Settings, error) {
	if p.Language != nil {
		lang, err := NormalizeLanguage(*p.Language)
		if err != nil {
			return s, err
		}
		s.Language = lang
	}
	if p.CalculationMethod != nil {
		if err := ValidateMethod(*p.CalculationMethod); err != nil {
			return s, err
		}
		s.CalculationMethod = *p.CalculationMethod
	}
	if p.NotificationsEnabled != nil {
		s.NotificationsEnabled = *p.NotificationsEnabled
	}
	if p.AdhanSoundID != nil {
		s.AdhanSoundID = strings.TrimSpace(*p.AdhanSoundID)
	}
	return s, nil
}

// Sanitize replaces stored values that no longer validate with defaults.
func (s Settings) Sanitize() Settings {
	def := Defaults()
	if lang, err := NormalizeLanguage(s.Language); err == nil {
		s.Language = lang
	} else {
		s.Language = def.Language
	}
	if ValidateMethod(s.CalculationMethod) != nil {
		s.CalculationMethod = def.CalculationMethod
	}
	return s
}
